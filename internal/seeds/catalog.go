package seeds

import (
	"log"

	"github.com/trademomentumllc/ihep-application-sub007/internal/database"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
)

func intPtr(v int) *int {
	return &v
}

// SeedActivities populates the health activity catalog.
func SeedActivities() {
	log.Println("Seeding activity catalog...")

	activities := []models.Activity{
		{
			Name:        "30-Minute Walk",
			Description: "Take a brisk walk for at least 30 minutes.",
			Category:    models.CategoryPhysical,
			PointsValue: 15,
			Frequency:   models.FrequencyDaily,
			IsActive:    true,
		},
		{
			Name:        "Morning Stretch",
			Description: "Complete a 10-minute stretching routine.",
			Category:    models.CategoryPhysical,
			PointsValue: 10,
			Frequency:   models.FrequencyDaily,
			IsActive:    true,
		},
		{
			Name:        "Meditation Session",
			Description: "Meditate for at least 10 minutes.",
			Category:    models.CategoryMental,
			PointsValue: 10,
			Frequency:   models.FrequencyDaily,
			IsActive:    true,
		},
		{
			Name:        "Gratitude Journal",
			Description: "Write down three things you are grateful for.",
			Category:    models.CategoryMental,
			PointsValue: 5,
			Frequency:   models.FrequencyDaily,
			IsActive:    true,
		},
		{
			Name:        "Take Daily Medication",
			Description: "Confirm you took your prescribed medication.",
			Category:    models.CategoryMedication,
			PointsValue: 20,
			Frequency:   models.FrequencyDaily,
			IsActive:    true,
		},
		{
			Name:        "Attend Checkup",
			Description: "Attend a scheduled medical appointment.",
			Category:    models.CategoryAppointment,
			PointsValue: 50,
			Frequency:   models.FrequencyMonthly,
			IsActive:    true,
		},
		{
			Name:        "Health Education Module",
			Description: "Complete a health literacy lesson.",
			Category:    models.CategoryEducation,
			PointsValue: 25,
			Frequency:   models.FrequencyWeekly,
			IsActive:    true,
		},
		{
			Name:        "Community Group Session",
			Description: "Join a peer support group meeting.",
			Category:    models.CategorySocial,
			PointsValue: 30,
			Frequency:   models.FrequencyWeekly,
			IsActive:    true,
		},
		{
			Name:        "Complete Health Profile",
			Description: "Fill out your full health profile.",
			Category:    models.CategoryEducation,
			PointsValue: 40,
			Frequency:   models.FrequencyOnce,
			IsActive:    true,
		},
	}

	for _, activity := range activities {
		var existing models.Activity
		if err := database.DB.Where("name = ?", activity.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&activity).Error; err != nil {
			log.Printf("Failed to seed activity %q: %v", activity.Name, err)
		}
	}
}

// SeedAchievements populates the achievement tiers.
func SeedAchievements() {
	log.Println("Seeding achievements...")

	achievements := []models.Achievement{
		{Name: "First Steps", Description: "Earn your first points.", Level: 1, PointsRequired: 1, Category: "milestone", Icon: "footprints", IsActive: true},
		{Name: "Getting Going", Description: "Reach 100 lifetime points.", Level: 1, PointsRequired: 100, Category: "milestone", Icon: "flame", IsActive: true},
		{Name: "Committed", Description: "Reach 500 lifetime points.", Level: 2, PointsRequired: 500, Category: "milestone", Icon: "medal", IsActive: true},
		{Name: "Dedicated", Description: "Reach 1,000 lifetime points.", Level: 3, PointsRequired: 1000, Category: "milestone", Icon: "trophy", IsActive: true},
		{Name: "Health Champion", Description: "Reach 5,000 lifetime points.", Level: 4, PointsRequired: 5000, Category: "milestone", Icon: "crown", IsActive: true},
		{Name: "Wellness Legend", Description: "Reach 10,000 lifetime points.", Level: 5, PointsRequired: 10000, Category: "milestone", Icon: "star", IsActive: true},
	}

	for _, achievement := range achievements {
		var existing models.Achievement
		if err := database.DB.Where("name = ?", achievement.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&achievement).Error; err != nil {
			log.Printf("Failed to seed achievement %q: %v", achievement.Name, err)
		}
	}
}

// SeedRewards populates the redemption catalog.
func SeedRewards() {
	log.Println("Seeding rewards...")

	rewards := []models.Reward{
		{Name: "10% Pharmacy Discount", Description: "One-time discount on pharmacy purchases.", Category: models.RewardDiscount, PointsCost: 100, IsActive: true},
		{Name: "$10 Grocery Gift Card", Description: "Gift card for healthy groceries.", Category: models.RewardGiftCard, PointsCost: 250, Inventory: intPtr(100), IsActive: true},
		{Name: "Water Bottle", Description: "Branded insulated water bottle.", Category: models.RewardMerchandise, PointsCost: 150, Inventory: intPtr(50), IsActive: true},
		{Name: "Fitness Class Pass", Description: "One free class at a partner gym.", Category: models.RewardExperience, PointsCost: 300, Inventory: intPtr(25), IsActive: true},
		{Name: "Donate to Community Health Fund", Description: "Convert points into a donation.", Category: models.RewardDonation, PointsCost: 50, IsActive: true},
	}

	for _, reward := range rewards {
		var existing models.Reward
		if err := database.DB.Where("name = ?", reward.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&reward).Error; err != nil {
			log.Printf("Failed to seed reward %q: %v", reward.Name, err)
		}
	}
}
