package catalog

// Seed data written on first boot when no snapshot exists. Image paths point
// at bundled assets outside the managed upload directory, so deleting a seed
// product never removes a file.

func SeedProducts() []Product {
	return []Product{
		{
			ID:          "p_9e1c2a4b",
			Name:        LocalizedText{"en": "Glazed Salad Bowl", "it": "Insalatiera Smaltata"},
			Description: LocalizedText{"en": "Hand-thrown stoneware bowl with a cobalt glaze.", "it": "Ciotola in gres fatta a mano con smalto cobalto."},
			Category:    "bowls",
			Image:       "/assets/salad-bowl.jpg",
			Dimensions:  "26 x 26 x 11 cm",
			Material:    "stoneware",
			CreatedAt:   "2024-03-01T09:00:00Z",
		},
		{
			ID:          "p_4f7d8c21",
			Name:        LocalizedText{"en": "Rustic Dinner Plate", "it": "Piatto Rustico"},
			Description: LocalizedText{"en": "Matte terracotta plate, food safe.", "it": "Piatto in terracotta opaca, adatto agli alimenti."},
			Category:    "plates",
			Image:       "/assets/dinner-plate.jpg",
			Dimensions:  "28 x 28 x 2 cm",
			Material:    "terracotta",
			CreatedAt:   "2024-03-01T09:05:00Z",
		},
		{
			ID:          "p_b03a65ef",
			Name:        LocalizedText{"en": "Tall Amphora Vase", "it": "Vaso Anfora Alto"},
			Description: LocalizedText{"en": "Two-handled vase inspired by classical amphorae.", "it": "Vaso a due manici ispirato alle anfore classiche."},
			Category:    "vases",
			Image:       "/assets/amphora-vase.jpg",
			Dimensions:  "18 x 18 x 42 cm",
			Material:    "earthenware",
			CreatedAt:   "2024-03-01T09:10:00Z",
		},
	}
}

func SeedCategories() []Category {
	return []Category{
		{ID: "c_1d9f3b72", Name: LocalizedText{"en": "Salad Bowls", "it": "Insalatiere"}, Slug: "bowls"},
		{ID: "c_88c4e0a5", Name: LocalizedText{"en": "Plates", "it": "Piatti"}, Slug: "plates"},
		{ID: "c_527ab9d0", Name: LocalizedText{"en": "Vases", "it": "Vasi"}, Slug: "vases"},
	}
}
