package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh sqlite database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Food{},
		&models.Exposure{},
		&models.DailyFoodCheck{},
		&models.Recipe{},
		&models.Feeding{},
		&models.VitaminD{},
		&models.Weight{},
		&models.Appointment{},
	))
	config.DB = db
	return db
}

func createTestFood(t *testing.T, name, category string, allergen bool) models.Food {
	t.Helper()
	food := models.Food{Name: name, Category: category, Allergen: allergen}
	require.NoError(t, config.DB.Create(&food).Error)
	return food
}

// day returns today shifted by offset calendar days, as YYYY-MM-DD.
func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(dateLayout)
}

func strptr(s string) *string { return &s }
