package main

import (
	"context"
	"log"
	"time"

	"eventhub-seeder/shared/config"
	"eventhub-seeder/shared/database"
	"eventhub-seeder/shared/utils/fake"
)

func main() {
	log.Println("🌱 Starting event data seeding...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	seed := time.Now().UnixNano()
	log.Printf("🎲 Random seed: %d", seed)

	seeder := database.NewSeeder(db, fake.New(seed))
	if _, err := seeder.Run(context.Background()); err != nil {
		database.Close(db)
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	log.Println("✅ Event data seeding completed successfully!")
}
