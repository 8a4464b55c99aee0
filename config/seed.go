package config

import (
	"github.com/juanjoserusa/LactaDunaBack/models"

	"gorm.io/gorm"
)

// Starter catalog for months 6-12. Green leafy vegetables stay out
// before 12 months; fish, egg and gluten are marked as allergens.
var seedFoods = []models.Food{
	// frutas
	{Name: "Plátano", Category: "fruta"},
	{Name: "Manzana", Category: "fruta"},
	{Name: "Pera", Category: "fruta"},
	{Name: "Melocotón", Category: "fruta"},
	{Name: "Mandarina", Category: "fruta"},
	{Name: "Uva", Category: "fruta"},
	{Name: "Mango", Category: "fruta"},
	// verduras
	{Name: "Patata", Category: "verdura"},
	{Name: "Zanahoria", Category: "verdura"},
	{Name: "Calabacín", Category: "verdura"},
	{Name: "Calabaza", Category: "verdura"},
	{Name: "Brócoli", Category: "verdura"},
	{Name: "Judías verdes", Category: "verdura"},
	{Name: "Boniato", Category: "verdura"},
	// proteínas
	{Name: "Pollo", Category: "proteina"},
	{Name: "Pavo", Category: "proteina"},
	{Name: "Ternera", Category: "proteina"},
	{Name: "Merluza", Category: "proteina", Allergen: true},
	{Name: "Huevo", Category: "proteina", Allergen: true},
	// cereales
	{Name: "Galleta maría (sin azúcar)", Category: "cereal", Allergen: true},
	{Name: "Pan", Category: "cereal", Allergen: true},
	{Name: "Arroz", Category: "cereal"},
	{Name: "Avena", Category: "cereal"},
}

// SeedCatalog inserts the starter foods and example recipes, but only
// when the food table is still empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		foods := make([]models.Food, len(seedFoods))
		copy(foods, seedFoods)
		if err := tx.Create(&foods).Error; err != nil {
			return err
		}

		recipes := []struct {
			recipe    models.Recipe
			foodNames []string
		}{
			{
				recipe: models.Recipe{
					Title:        "Calabacín + Patata (6m)",
					SuitableFrom: 6,
					Steps:        "Cocer al vapor ½ calabacín y ½ patata (10–12 min). Triturar fino. Añadir 1 cdita AOVE.",
					FreezeOK:     true,
				},
				foodNames: []string{"Calabacín", "Patata"},
			},
			{
				recipe: models.Recipe{
					Title:        "Pollo + Calabacín + Patata (6m)",
					SuitableFrom: 6,
					Steps:        "Cocer 20–25 g de pechuga con calabacín y patata. Triturar muy fino.",
					FreezeOK:     true,
				},
				foodNames: []string{"Pollo", "Calabacín", "Patata"},
			},
		}

		for _, r := range recipes {
			var foods []models.Food
			if err := tx.Where("name IN ?", r.foodNames).Find(&foods).Error; err != nil {
				return err
			}
			r.recipe.Foods = foods
			if err := tx.Create(&r.recipe).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
