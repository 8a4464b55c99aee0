package services

import (
	"testing"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeValidation(t *testing.T) {
	setupTestDB(t)

	var validation *utils.ValidationError
	_, err := CreateRecipe("", 6, "cocer y triturar", true, nil)
	require.ErrorAs(t, err, &validation)
	_, err = CreateRecipe("Puré", 0, "cocer y triturar", true, nil)
	require.ErrorAs(t, err, &validation)
	_, err = CreateRecipe("Puré", 6, "", true, nil)
	require.ErrorAs(t, err, &validation)
}

func TestCreateRecipeLinksFoods(t *testing.T) {
	setupTestDB(t)
	potato := createTestFood(t, "Patata", "verdura", false)
	zucchini := createTestFood(t, "Calabacín", "verdura", false)

	id, err := CreateRecipe("Calabacín + Patata (6m)", 6,
		"Cocer al vapor y triturar fino.", true, []uint{potato.ID, zucchini.ID})
	require.NoError(t, err)
	require.NotZero(t, id)

	var recipe models.Recipe
	require.NoError(t, config.DB.Preload("Foods").First(&recipe, id).Error)
	assert.Len(t, recipe.Foods, 2)
}

func TestCreateRecipeRejectsUnknownFood(t *testing.T) {
	setupTestDB(t)
	potato := createTestFood(t, "Patata", "verdura", false)

	_, err := CreateRecipe("Puré de patata", 6, "Cocer y triturar.", true,
		[]uint{potato.ID, 999})
	var notFound *utils.NotFoundError
	require.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, config.DB.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count, "nothing commits when a linked food is missing")
}

func TestListRecipesFilters(t *testing.T) {
	setupTestDB(t)
	potato := createTestFood(t, "Patata", "verdura", false)
	chicken := createTestFood(t, "Pollo", "proteina", false)

	_, err := CreateRecipe("Puré de patata", 6, "Cocer y triturar.", true, []uint{potato.ID})
	require.NoError(t, err)
	_, err = CreateRecipe("Pollo con patata", 8, "Cocer, desmenuzar, triturar.", true,
		[]uint{potato.ID, chicken.ID})
	require.NoError(t, err)

	all, err := ListRecipes(0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Puré de patata", all[0].Title) // suitable_from asc

	young, err := ListRecipes(6, 0)
	require.NoError(t, err)
	require.Len(t, young, 1)
	assert.Equal(t, "Puré de patata", young[0].Title)

	withChicken, err := ListRecipes(0, chicken.ID)
	require.NoError(t, err)
	require.Len(t, withChicken, 1)
	assert.Equal(t, "Pollo con patata", withChicken[0].Title)

	both, err := ListRecipes(6, chicken.ID)
	require.NoError(t, err)
	assert.Empty(t, both)
}
