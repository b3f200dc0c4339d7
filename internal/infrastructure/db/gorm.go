package db

import (
	"log"
	"time"

	loanDomain "peerlend-backend/internal/domain/loan"
	messageDomain "peerlend-backend/internal/domain/message"
	offerDomain "peerlend-backend/internal/domain/offer"
	paymentDomain "peerlend-backend/internal/domain/payment"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector is the seam tests use to inject a mocked connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the four engine tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&offerDomain.LoanOffer{},
		&loanDomain.Loan{},
		&paymentDomain.Payment{},
		&messageDomain.Message{},
	)
}
