package database

import (
	"fmt"
	"time"

	"github.com/matchahub/matcha_hub/internal/config"
	"github.com/matchahub/matcha_hub/internal/models"
	"github.com/matchahub/matcha_hub/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true, // Skip wrapping every operation in a transaction
		PrepareStmt:            true, // Cache prepared statements
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(200)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.ForumThread{},
		&models.ForumComment{},
		&models.FeedPost{},
		&models.FeedLike{},
		&models.DirectMessage{},
		&models.Listing{},
		&models.UserAchievement{},
		&models.PointTransaction{},
		&models.Border{},
		&models.BorderUnlock{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedBorders upserts the border catalog. Achievement borders are not
// purchasable; shop borders carry a point price.
func SeedBorders(db *gorm.DB) error {
	logger.Info("Seeding border catalog...")

	borders := []models.Border{
		{ID: models.BorderBronzeWhisk, Name: "Bronze Whisk", Description: "Awarded for your first forum thread", ImageURL: "/borders/bronze_whisk.png"},
		{ID: models.BorderSilverWhisk, Name: "Silver Whisk", Description: "Awarded to seasoned discussion starters", ImageURL: "/borders/silver_whisk.png"},
		{ID: models.BorderGoldenWhisk, Name: "Golden Whisk", Description: "Awarded to true social butterflies", ImageURL: "/borders/golden_whisk.png"},
		{ID: models.BorderJadeLeaf, Name: "Jade Leaf", Description: "Awarded for connecting with fellow tea lovers", ImageURL: "/borders/jade_leaf.png"},
		{ID: models.BorderMerchantSeal, Name: "Merchant Seal", Description: "Awarded to prolific marketplace sellers", ImageURL: "/borders/merchant_seal.png"},
		{ID: models.BorderSakuraBloom, Name: "Sakura Bloom", Description: "A springtime frame for your profile", ImageURL: "/borders/sakura_bloom.png", PricePoints: 100, Purchasable: true},
		{ID: models.BorderKyotoSunset, Name: "Kyoto Sunset", Description: "Warm tones from the old capital", ImageURL: "/borders/kyoto_sunset.png", PricePoints: 250, Purchasable: true},
		{ID: models.BorderCeremonial, Name: "Ceremonial", Description: "Reserved for the most dedicated members", ImageURL: "/borders/ceremonial.png", PricePoints: 500, Purchasable: true},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "image_url", "price_points", "purchasable"}),
	}).Create(&borders).Error
}
