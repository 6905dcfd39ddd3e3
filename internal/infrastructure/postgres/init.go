package postgres

import (
	"log"

	"github.com/LavaJover/shvark-flashdeal-service/internal/config"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.FlashDealConfig) *gorm.DB {
	dsn := cfg.DealDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	// schema is owned by the SQL migrations when they are enabled
	if !cfg.Migrations.Enabled {
		if err := db.AutoMigrate(
			&models.DealModel{},
			&models.ClaimModel{},
			&logger.DealEventRecord{},
			&models.ShopModel{},
			&models.CustomerModel{},
			&models.ShopFollowerModel{},
		); err != nil {
			log.Fatalf("failed to migrate db: %v\n", err.Error())
		}
	}

	return db
}
