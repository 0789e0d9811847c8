// Package jpgeo provides a coarse distance stub keyed off a fixed handful
// of prefecture centroids. It is not a geospatial engine: anything beyond
// "roughly how far apart are these areas" is out of scope.
package jpgeo

import "math"

type centroid struct {
	lat float64
	lon float64
}

// centroids covers the major metropolitan prefectures only. A prefecture
// missing from this table simply has no distance available.
var centroids = map[string]centroid{
	"北海道":  {43.064, 141.347},
	"宮城県":  {38.269, 140.872},
	"東京都":  {35.690, 139.692},
	"神奈川県": {35.448, 139.643},
	"愛知県":  {35.180, 136.907},
	"京都府":  {35.021, 135.756},
	"大阪府":  {34.686, 135.520},
	"兵庫県":  {34.691, 135.183},
	"広島県":  {34.397, 132.460},
	"福岡県":  {33.607, 130.418},
	"沖縄県":  {26.212, 127.681},
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two prefecture
// centroids. The second return is false when either prefecture has no
// centroid in the table.
func DistanceKm(prefectureA, prefectureB string) (float64, bool) {
	a, ok := centroids[prefectureA]
	if !ok {
		return 0, false
	}
	b, ok := centroids[prefectureB]
	if !ok {
		return 0, false
	}
	return haversine(a, b), true
}

// HasCentroid reports whether a centroid is available for the prefecture.
func HasCentroid(prefecture string) bool {
	_, ok := centroids[prefecture]
	return ok
}

func haversine(a, b centroid) float64 {
	lat1 := a.lat * math.Pi / 180
	lat2 := b.lat * math.Pi / 180
	dLat := (b.lat - a.lat) * math.Pi / 180
	dLon := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
