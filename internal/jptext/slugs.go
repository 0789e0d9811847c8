package jptext

// Static slug tables. Built once at package init, shared by reference,
// never mutated afterwards. A name missing from the curated municipality
// or station tables is not an error: callers render the entity without a
// link.

// prefectureSlugs covers all 47 canonical prefecture names with no
// duplicates and no gaps. TestPrefectureTableComplete enforces this.
var prefectureSlugs = map[string]string{
	"北海道": "hokkaido",
	"青森県": "aomori", "岩手県": "iwate", "宮城県": "miyagi", "秋田県": "akita",
	"山形県": "yamagata", "福島県": "fukushima",
	"茨城県": "ibaraki", "栃木県": "tochigi", "群馬県": "gunma", "埼玉県": "saitama",
	"千葉県": "chiba", "東京都": "tokyo", "神奈川県": "kanagawa",
	"新潟県": "niigata", "富山県": "toyama", "石川県": "ishikawa", "福井県": "fukui",
	"山梨県": "yamanashi", "長野県": "nagano", "岐阜県": "gifu", "静岡県": "shizuoka",
	"愛知県": "aichi",
	"三重県": "mie", "滋賀県": "shiga", "京都府": "kyoto", "大阪府": "osaka",
	"兵庫県": "hyogo", "奈良県": "nara", "和歌山県": "wakayama",
	"鳥取県": "tottori", "島根県": "shimane", "岡山県": "okayama", "広島県": "hiroshima",
	"山口県": "yamaguchi",
	"徳島県": "tokushima", "香川県": "kagawa", "愛媛県": "ehime", "高知県": "kochi",
	"福岡県": "fukuoka", "佐賀県": "saga", "長崎県": "nagasaki", "熊本県": "kumamoto",
	"大分県": "oita", "宮崎県": "miyazaki", "鹿児島県": "kagoshima", "沖縄県": "okinawa",
}

// prefectureOrder is the canonical JIS X 0401 display order.
var prefectureOrder = []string{
	"北海道",
	"青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県", "静岡県", "愛知県",
	"三重県", "滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県",
	"鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県",
	"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

// Region groups prefectures for region-level navigation.
type Region struct {
	Name        string
	Slug        string
	Prefectures []string
}

// regions are the eight standard groupings. Together they cover every
// prefecture exactly once.
var regions = []Region{
	{Name: "北海道", Slug: "hokkaido", Prefectures: []string{"北海道"}},
	{Name: "東北", Slug: "tohoku", Prefectures: []string{"青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県"}},
	{Name: "関東", Slug: "kanto", Prefectures: []string{"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県"}},
	{Name: "中部", Slug: "chubu", Prefectures: []string{"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県", "静岡県", "愛知県"}},
	{Name: "近畿", Slug: "kinki", Prefectures: []string{"三重県", "滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県"}},
	{Name: "中国", Slug: "chugoku", Prefectures: []string{"鳥取県", "島根県", "岡山県", "広島県", "山口県"}},
	{Name: "四国", Slug: "shikoku", Prefectures: []string{"徳島県", "香川県", "愛媛県", "高知県"}},
	{Name: "九州・沖縄", Slug: "kyushu-okinawa", Prefectures: []string{"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県"}},
}

// municipalitySlugs is a curated allowlist, not a complete gazetteer.
var municipalitySlugs = map[string]string{
	"千代田区": "chiyoda", "中央区": "chuo", "港区": "minato", "新宿区": "shinjuku",
	"文京区": "bunkyo", "台東区": "taito", "墨田区": "sumida", "江東区": "koto",
	"品川区": "shinagawa", "目黒区": "meguro", "大田区": "ota", "世田谷区": "setagaya",
	"渋谷区": "shibuya", "中野区": "nakano", "杉並区": "suginami", "豊島区": "toshima",
	"練馬区": "nerima", "板橋区": "itabashi",
	"横浜市": "yokohama", "川崎市": "kawasaki", "さいたま市": "saitama-shi",
	"千葉市": "chiba-shi", "札幌市": "sapporo", "仙台市": "sendai",
	"名古屋市": "nagoya", "京都市": "kyoto-shi", "大阪市": "osaka-shi",
	"神戸市": "kobe", "広島市": "hiroshima-shi", "福岡市": "fukuoka-shi",
}

// stationSlugs is a curated allowlist of major stations.
var stationSlugs = map[string]string{
	"東京": "tokyo", "新宿": "shinjuku", "渋谷": "shibuya", "池袋": "ikebukuro",
	"品川": "shinagawa", "上野": "ueno", "秋葉原": "akihabara", "表参道": "omotesando",
	"恵比寿": "ebisu", "目黒": "meguro", "中目黒": "nakameguro", "自由が丘": "jiyugaoka",
	"吉祥寺": "kichijoji", "立川": "tachikawa", "町田": "machida",
	"横浜": "yokohama", "川崎": "kawasaki", "大宮": "omiya", "船橋": "funabashi",
	"名古屋": "nagoya", "梅田": "umeda", "難波": "namba", "天王寺": "tennoji",
	"三宮": "sannomiya", "京都": "kyoto", "札幌": "sapporo", "仙台": "sendai",
	"広島": "hiroshima", "博多": "hakata", "天神": "tenjin",
}

// Reverse tables, built once in init.
var (
	prefectureNames   map[string]string
	municipalityNames map[string]string
	stationNames      map[string]string
	regionByPref      map[string]string
)

func init() {
	prefectureNames = invert(prefectureSlugs)
	municipalityNames = invert(municipalitySlugs)
	stationNames = invert(stationSlugs)
	regionByPref = make(map[string]string, len(prefectureSlugs))
	for _, r := range regions {
		for _, p := range r.Prefectures {
			regionByPref[p] = r.Name
		}
	}
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for name, slug := range m {
		out[slug] = name
	}
	return out
}

// Prefectures returns the 47 canonical prefecture names in display order.
func Prefectures() []string {
	out := make([]string, len(prefectureOrder))
	copy(out, prefectureOrder)
	return out
}

// Regions returns the region groupings in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// PrefectureSlug returns the URL slug for a canonical prefecture name.
func PrefectureSlug(name string) (string, bool) {
	slug, ok := prefectureSlugs[Fold(name)]
	return slug, ok
}

// PrefectureName is the inverse of PrefectureSlug.
func PrefectureName(slug string) (string, bool) {
	name, ok := prefectureNames[slug]
	return name, ok
}

// RegionOf returns the region a prefecture belongs to.
func RegionOf(prefecture string) (string, bool) {
	region, ok := regionByPref[Fold(prefecture)]
	return region, ok
}

// MunicipalitySlug returns the slug for a municipality display name.
// The second return is false when the name is not in the curated table.
func MunicipalitySlug(name string) (string, bool) {
	slug, ok := municipalitySlugs[Fold(name)]
	return slug, ok
}

// MunicipalityName is the inverse of MunicipalitySlug.
func MunicipalityName(slug string) (string, bool) {
	name, ok := municipalityNames[slug]
	return name, ok
}

// StationSlug returns the slug for a station display name.
func StationSlug(name string) (string, bool) {
	slug, ok := stationSlugs[Fold(name)]
	return slug, ok
}

// StationName is the inverse of StationSlug.
func StationName(slug string) (string, bool) {
	name, ok := stationNames[slug]
	return name, ok
}
