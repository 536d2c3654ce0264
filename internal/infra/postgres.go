package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

const bootstrapSQL = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS destinations (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255),
    description TEXT,
    latitude DECIMAL(9,6),
    longitude DECIMAL(9,6),
    best_climate VARCHAR(255),
    ideal_temp_min DECIMAL(5,2),
    ideal_temp_max DECIMAL(5,2),
    ideal_weather TEXT
);

CREATE TABLE IF NOT EXISTS attractions (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255),
    description TEXT,
    category VARCHAR(100),
    latitude DECIMAL(9,6),
    longitude DECIMAL(9,6),
    destination_id INT REFERENCES destinations(id),
    best_climate VARCHAR(255),
    ideal_temp_min DECIMAL(5,2),
    ideal_temp_max DECIMAL(5,2),
    ideal_weather TEXT,
    location GEOGRAPHY(Point, 4326)
);

CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(100),
    email VARCHAR(255) UNIQUE,
    password_hash TEXT,
    full_name VARCHAR(255),
    bio TEXT,
    created_at TIMESTAMPTZ DEFAULT now(),
    updated_at TIMESTAMPTZ DEFAULT now()
);
`

// BootstrapSchema creates the PostGIS extension and the tables if they
// do not exist yet.
func BootstrapSchema(db *gorm.DB) error {
	if err := db.Exec(bootstrapSQL).Error; err != nil {
		log.Printf("Error creating tables: %v", err)
		return err
	}
	log.Println("Schema bootstrap complete")
	return nil
}
