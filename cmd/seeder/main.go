package main

import (
	"log"

	"github.com/trademomentumllc/ihep-application-sub007/internal/config"
	"github.com/trademomentumllc/ihep-application-sub007/internal/database"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"github.com/trademomentumllc/ihep-application-sub007/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.Activity{},
		&models.UserActivity{},
		&models.PointsAccount{},
		&models.PointsTransaction{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Reward{},
		&models.UserReward{},
	); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	seeds.SeedActivities()
	seeds.SeedAchievements()
	seeds.SeedRewards()

	log.Println("Seeding complete")
}
