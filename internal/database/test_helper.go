package database

import (
	"fmt"
	"testing"

	"granazap/internal/config"
	"granazap/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestProfile(t *testing.T, db *DB, fullName, phone string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		ID:       uuid.New(),
		FullName: fullName,
		Phone:    phone,
		Plan:     "mensal",
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}

func CreateTestLimit(t *testing.T, db *DB, userID uuid.UUID, category string, amount string) *models.CategoryLimit {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("failed to parse test limit amount: %v", err)
	}

	limit := &models.CategoryLimit{
		UserID:   userID,
		Category: category,
		Amount:   amt,
	}

	if err := db.Create(limit).Error; err != nil {
		t.Fatalf("failed to create test limit: %v", err)
	}

	return limit
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"category_limits",
		"subscriptions",
		"profiles",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
