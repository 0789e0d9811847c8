package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/clients/postgres"
	"github.com/yoyakulabs/clinic-navi/pkg/config"
)

const createClinicsTable = `
CREATE TABLE IF NOT EXISTS clinics (
	id            UUID PRIMARY KEY,
	slug          TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	prefecture    TEXT NOT NULL DEFAULT '',
	municipality  TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	stations      TEXT NOT NULL DEFAULT '',
	specialties   TEXT NOT NULL DEFAULT '',
	features      TEXT NOT NULL DEFAULT '',
	hours_mon     TEXT,
	hours_tue     TEXT,
	hours_wed     TEXT,
	hours_thu     TEXT,
	hours_fri     TEXT,
	hours_sat     TEXT,
	hours_sun     TEXT,
	rating        DOUBLE PRECISION,
	review_count  INTEGER,
	phone         TEXT,
	website       TEXT,
	director_name TEXT,
	notes         TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_clinics_prefecture ON clinics (prefecture);
CREATE INDEX IF NOT EXISTS idx_clinics_municipality ON clinics (prefecture, municipality);
CREATE INDEX IF NOT EXISTS idx_clinics_rating ON clinics (rating DESC NULLS LAST, created_at DESC);
`

type seedClinic struct {
	slug         string
	name         string
	prefecture   string
	municipality string
	address      string
	stations     string
	specialties  string
	features     string
	hours        [7]*string
	rating       *float64
	reviewCount  *int
	directorName *string
}

func str(s string) *string   { return &s }
func f64(f float64) *float64 { return &f }
func intp(i int) *int        { return &i }

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := pgClient.DB()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping clinics table before seeding")
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS clinics`); err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	if _, err := db.ExecContext(ctx, createClinicsTable); err != nil {
		log.Fatalf("Failed to create clinics table: %v", err)
	}

	weekday := str("9:00-12:30 / 14:00-18:00")
	lateWeekday := str("10:00-13:00 / 15:00-20:00")
	saturday := str("9:00-13:00")

	clinics := []seedClinic{
		{
			slug:         "shibuya-naika-clinic",
			name:         "渋谷内科クリニック",
			prefecture:   "東京都",
			municipality: "渋谷区",
			address:      "東京都渋谷区道玄坂1-2-3",
			stations:     "JR渋谷駅から徒歩5分、東京メトロ表参道駅B1出口から徒歩12分",
			specialties:  "内科、消化器内科",
			features:     "オンライン、駐車場あり",
			hours:        [7]*string{weekday, weekday, weekday, nil, weekday, saturday, nil},
			rating:       f64(4.2),
			reviewCount:  intp(120),
			directorName: str("佐藤 健一"),
		},
		{
			slug:         "shinjuku-hifuka",
			name:         "新宿ひふ科",
			prefecture:   "東京都",
			municipality: "新宿区",
			address:      "東京都新宿区西新宿2-4-1",
			stations:     "ＪＲ新宿駅西口から徒歩3分",
			specialties:  "皮膚科、美容皮膚科",
			features:     "土日診療",
			hours:        [7]*string{lateWeekday, lateWeekday, lateWeekday, lateWeekday, lateWeekday, saturday, saturday},
			rating:       f64(3.8),
			reviewCount:  intp(64),
		},
		{
			slug:         "yokohama-kodomo-clinic",
			name:         "横浜こどもクリニック",
			prefecture:   "神奈川県",
			municipality: "横浜市",
			address:      "神奈川県横浜市西区みなとみらい3-5-1",
			stations:     "みなとみらい駅から徒歩2分、JR桜木町駅から徒歩10分",
			specialties:  "小児科、アレルギー科",
			features:     "キッズスペース、オンライン",
			hours:        [7]*string{weekday, weekday, weekday, weekday, weekday, nil, nil},
			rating:       f64(4.6),
			reviewCount:  intp(210),
			directorName: str("山本 直子"),
		},
		{
			slug:         "umeda-seikeigeka",
			name:         "梅田整形外科",
			prefecture:   "大阪府",
			municipality: "大阪市",
			address:      "大阪府大阪市北区梅田1-8-17",
			stations:     "阪急大阪梅田駅から徒歩4分",
			specialties:  "整形外科、リハビリテーション科",
			features:     "-",
			hours:        [7]*string{weekday, weekday, nil, weekday, weekday, saturday, nil},
		},
		{
			slug:         "sapporo-ganka",
			name:         "さっぽろ眼科",
			prefecture:   "北海道",
			municipality: "札幌市",
			address:      "北海道札幌市中央区北4条西3丁目",
			stations:     "JR札幌駅南口から徒歩1分",
			specialties:  "眼科",
			features:     "バリアフリー",
			hours:        [7]*string{weekday, weekday, weekday, weekday, lateWeekday, nil, nil},
			rating:       f64(4.0),
			reviewCount:  intp(45),
			directorName: str("高橋 誠"),
		},
	}

	for _, c := range clinics {
		_, err := db.ExecContext(
			ctx,
			`INSERT INTO clinics (
				id, slug, name, prefecture, municipality, address,
				stations, specialties, features,
				hours_mon, hours_tue, hours_wed, hours_thu, hours_fri, hours_sat, hours_sun,
				rating, review_count, director_name, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9,
				$10, $11, $12, $13, $14, $15, $16,
				$17, $18, $19, NOW()
			) ON CONFLICT (slug) DO NOTHING`,
			uuid.New().String(), c.slug, c.name, c.prefecture, c.municipality, c.address,
			c.stations, c.specialties, c.features,
			c.hours[0], c.hours[1], c.hours[2], c.hours[3], c.hours[4], c.hours[5], c.hours[6],
			c.rating, c.reviewCount, c.directorName,
		)
		if err != nil {
			log.Printf("Failed to seed clinic %s: %v", c.name, err)
		}
	}

	log.Printf("Seeding completed: %d clinics", len(clinics))
}
