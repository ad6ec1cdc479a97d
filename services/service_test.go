package services

import (
	"invest/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.InvestmentPackage{},
		&models.Investment{},
		&models.Transaction{},
		&models.SupportTicket{},
		&models.LoginAttempt{},
		&models.RememberToken{},
		&models.AccessLog{},
		&models.Notification{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, balance float64) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test Client",
		Username: "testclient",
		Email:    "client@example.com",
		Password: "irrelevant",
		Role:     models.RoleClient,
		Status:   models.UserStatusActive,
		Balance:  balance,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedPackage(t *testing.T, db *gorm.DB, min, max, rate float64, days int) *models.InvestmentPackage {
	t.Helper()
	pkg := models.InvestmentPackage{
		Name:       "Starter",
		MinAmount:  min,
		MaxAmount:  max,
		ReturnRate: rate,
		PeriodDays: days,
		Status:     models.PackageStatusActive,
	}
	require.NoError(t, db.Create(&pkg).Error)
	return &pkg
}

func currentBalance(t *testing.T, db *gorm.DB, userID uint) float64 {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	return user.Balance
}
