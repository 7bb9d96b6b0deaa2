// Command main runs the database seeder for TitikTemu.
package main

import (
	"flag"
	"log"

	"titiktemu/internal/config"
	"titiktemu/internal/database"
	"titiktemu/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numLaporan := flag.Int("laporan", 100, "Number of laporan to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d laporan, clean=%v\n", *numUsers, *numLaporan, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumLaporan:  *numLaporan,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Test users have the password: password123")
}
