package database

import (
	"fmt"
	"log"
	"os"

	"feedback-app/internal/domain/billing"
	"feedback-app/internal/domain/crm"
	"feedback-app/internal/domain/messaging"
	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/subscriptions"
	"feedback-app/internal/domain/surveys"
	"feedback-app/internal/domain/tenants"
	"feedback-app/internal/domain/users"
	"feedback-app/internal/domain/vouchers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&tenants.Tenant{},
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&subscriptions.Subscription{},
		&billing.Payment{},

		// feedback
		&surveys.Survey{},
		&surveys.SurveyResponse{},
		&crm.FollowUpTask{},
		&vouchers.Voucher{},

		// messaging
		&messaging.MessageLog{},
		&messaging.MonthlyConsumption{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
