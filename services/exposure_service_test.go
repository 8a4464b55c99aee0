package services

import (
	"testing"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterExposureValidation(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Pera", "fruta", false)

	_, _, err := RegisterExposure("", food.ID, nil)
	var validation *utils.ValidationError
	require.ErrorAs(t, err, &validation)

	_, _, err = RegisterExposure("2025-03-01", 0, nil)
	require.ErrorAs(t, err, &validation)

	_, _, err = RegisterExposure("01/03/2025", food.ID, nil)
	require.ErrorAs(t, err, &validation)
}

func TestRegisterExposureUnknownFood(t *testing.T) {
	setupTestDB(t)

	_, _, err := RegisterExposure("2025-03-01", 999, nil)
	var notFound *utils.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRegisterExposureWindowExactness(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Huevo", "proteina", true)

	// D and D+2: not yet the 3rd exposure
	_, needs, err := RegisterExposure("2025-03-01", food.ID, nil)
	require.NoError(t, err)
	assert.False(t, needs)

	_, needs, err = RegisterExposure("2025-03-03", food.ID, nil)
	require.NoError(t, err)
	assert.False(t, needs)

	// D+5 is exactly the 3rd inside [D-1, D+5]
	_, needs, err = RegisterExposure("2025-03-06", food.ID, nil)
	require.NoError(t, err)
	assert.True(t, needs)

	// D+6 is the 4th: the trigger is exact-match, not a threshold
	_, needs, err = RegisterExposure("2025-03-07", food.ID, nil)
	require.NoError(t, err)
	assert.False(t, needs)
}

func TestRegisterExposureWindowIsAnchoredAtOwnDate(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Pollo", "proteina", false)

	// two exposures long past, then a backfilled one in between
	for _, d := range []string{"2025-01-01", "2025-01-05"} {
		_, _, err := RegisterExposure(d, food.ID, nil)
		require.NoError(t, err)
	}
	_, needs, err := RegisterExposure("2025-01-06", food.ID, nil)
	require.NoError(t, err)
	assert.True(t, needs, "backfilled exposure counts its own trailing window")
}

func TestRegisterExposureDateReadsBackAsCalendarDay(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Boniato", "verdura", false)

	// the date must survive the store round trip in YYYY-MM-DD form,
	// not as a timestamp rendering of midnight
	exposure, _, err := RegisterExposure("2025-03-05", food.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", exposure.Date)

	var reloaded models.Exposure
	require.NoError(t, config.DB.First(&reloaded, exposure.ID).Error)
	assert.Equal(t, "2025-03-05", reloaded.Date)

	rows, err := ListExposures("", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-03-05", rows[0].Date)
}

func TestRegisterExposureIdempotentUpsert(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Mango", "fruta", false)

	first, _, err := RegisterExposure("2025-03-01", food.ID, strptr("bien"))
	require.NoError(t, err)

	// simulate a finished cycle so we can see the repeat not touch it
	require.NoError(t, config.DB.Model(&models.Exposure{}).
		Where("id = ?", first.ID).
		Update("outcome", models.OutcomeOK).Error)

	second, _, err := RegisterExposure("2025-03-01", food.ID, strptr("repite sin problema"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Notes)
	assert.Equal(t, "repite sin problema", *second.Notes)
	require.NotNil(t, second.Outcome)
	assert.Equal(t, models.OutcomeOK, *second.Outcome)

	var count int64
	require.NoError(t, config.DB.Model(&models.Exposure{}).
		Where("food_id = ?", food.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitOutcomeValidation(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Pan", "cereal", true)

	var validation *utils.ValidationError
	require.ErrorAs(t, SubmitOutcome(food.ID, "unsure"), &validation)
	require.ErrorAs(t, SubmitOutcome(0, models.OutcomeOK), &validation)
}

func TestSubmitOutcomePrecondition(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Merluza", "proteina", true)

	var invalidState *utils.InvalidStateError

	// 2 exposures in the trailing week: too early
	for _, d := range []string{day(0), day(-1)} {
		_, _, err := RegisterExposure(d, food.ID, nil)
		require.NoError(t, err)
	}
	require.ErrorAs(t, SubmitOutcome(food.ID, models.OutcomeOK), &invalidState)

	// exactly 3: accepted
	_, _, err := RegisterExposure(day(-2), food.ID, nil)
	require.NoError(t, err)
	require.NoError(t, SubmitOutcome(food.ID, models.OutcomeOK))

	// 4: the window has rolled past
	_, _, err = RegisterExposure(day(-3), food.ID, nil)
	require.NoError(t, err)
	require.ErrorAs(t, SubmitOutcome(food.ID, models.OutcomeOK), &invalidState)
}

func TestSubmitOutcomeFanOut(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Avena", "cereal", false)

	// one exposure far outside the window, three inside
	_, _, err := RegisterExposure(day(-30), food.ID, nil)
	require.NoError(t, err)
	for _, d := range []string{day(0), day(-1), day(-2)} {
		_, _, err := RegisterExposure(d, food.ID, nil)
		require.NoError(t, err)
	}

	require.NoError(t, SubmitOutcome(food.ID, models.OutcomeOK))

	var rows []models.Exposure
	require.NoError(t, config.DB.Where("food_id = ?", food.ID).Find(&rows).Error)
	require.Len(t, rows, 4)
	for _, row := range rows {
		require.NotNil(t, row.Tolerated, "tolerated is global across the food's history")
		assert.True(t, *row.Tolerated)
		if row.Date == day(-30) {
			assert.Nil(t, row.Outcome, "verdict only lands on in-window rows")
		} else {
			require.NotNil(t, row.Outcome)
			assert.Equal(t, models.OutcomeOK, *row.Outcome)
		}
	}
}

func TestSubmitOutcomeOverwritesPreviousVerdict(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Ternera", "proteina", false)

	for _, d := range []string{day(0), day(-1), day(-2)} {
		_, _, err := RegisterExposure(d, food.ID, nil)
		require.NoError(t, err)
	}
	require.NoError(t, SubmitOutcome(food.ID, models.OutcomeOK))

	// still exactly 3 in the window: a second verdict replaces the first
	require.NoError(t, SubmitOutcome(food.ID, models.OutcomeBad))

	var rows []models.Exposure
	require.NoError(t, config.DB.Where("food_id = ?", food.ID).Find(&rows).Error)
	for _, row := range rows {
		require.NotNil(t, row.Tolerated)
		assert.False(t, *row.Tolerated)
	}
}

func TestListExposuresRoundTrip(t *testing.T) {
	setupTestDB(t)
	apple := createTestFood(t, "Manzana", "fruta", false)
	egg := createTestFood(t, "Huevo", "proteina", true)

	_, _, err := RegisterExposure("2025-03-02", egg.ID, strptr("primer intento"))
	require.NoError(t, err)
	_, _, err = RegisterExposure("2025-03-02", apple.ID, nil)
	require.NoError(t, err)
	_, _, err = RegisterExposure("2025-03-05", apple.ID, nil)
	require.NoError(t, err)
	_, _, err = RegisterExposure("2025-02-01", apple.ID, nil) // outside the range below
	require.NoError(t, err)

	rows, err := ListExposures("2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// most recent date first, then food name
	assert.Equal(t, "2025-03-05", rows[0].Date)
	assert.Equal(t, "Manzana", rows[0].FoodName)
	assert.Equal(t, "Huevo", rows[1].FoodName)
	assert.Equal(t, "Manzana", rows[2].FoodName)

	assert.Equal(t, "proteina", rows[1].Category)
	assert.True(t, rows[1].Allergen)
	require.NotNil(t, rows[1].Notes)
	assert.Equal(t, "primer intento", *rows[1].Notes)
}

func TestListExposuresUnbounded(t *testing.T) {
	setupTestDB(t)
	food := createTestFood(t, "Arroz", "cereal", false)
	_, _, err := RegisterExposure("2025-03-01", food.ID, nil)
	require.NoError(t, err)

	rows, err := ListExposures("", "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
