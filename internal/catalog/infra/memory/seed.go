package memory

import (
	"github.com/shopspring/decimal"

	"github.com/tanvirfarhan/krishibazar/internal/catalog/domain"
)

// Seed is the built-in product dataset used when no catalog database is
// configured.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Fresh Aromatic Rice (Chinigura)",
			Description: "Premium quality Chinigura rice, known for its distinctive aroma and fine grains. Grown organically in the fertile fields of Dinajpur.",
			Price:       decimal.RequireFromString("120.00"),
			Category:    "rice",
			District:    "dinajpur",
			Seller:      "Abdul Karim",
			SellerID:    101,
			Rating:      5,
			Stock:       150,
			Image:       "Images/products/chinigura-rice.jpg",
			Organic:     true,
		},
		{
			ID:          2,
			Name:        "Mango (Himsagar)",
			Description: "Sweet and juicy Himsagar mangoes from Rajshahi. Each mango is hand-picked at perfect ripeness.",
			Price:       decimal.RequireFromString("250.00"),
			Category:    "fruits",
			District:    "rajshahi",
			Seller:      "Rahima Begum",
			SellerID:    102,
			Rating:      4,
			Stock:       75,
			Image:       "Images/products/himsagar-mango.jpg",
		},
		{
			ID:          3,
			Name:        "Hilsa Fish (Ilish)",
			Description: "Fresh Padma river Hilsa, caught same morning. Perfect for traditional Bengali dishes.",
			Price:       decimal.RequireFromString("1500.00"),
			Category:    "fish",
			District:    "chandpur",
			Seller:      "Fisherman's Cooperative",
			SellerID:    103,
			Rating:      5,
			Stock:       20,
			Image:       "Images/products/hilsa-fish.jpg",
		},
		{
			ID:          4,
			Name:        "Red Lentils (Masoor Dal)",
			Description: "High protein red lentils grown in the northern regions of Bangladesh. Perfect for dal preparations.",
			Price:       decimal.RequireFromString("95.00"),
			Category:    "rice",
			District:    "rangpur",
			Seller:      "Northern Farmers Group",
			SellerID:    104,
			Rating:      4,
			Stock:       200,
			Image:       "Images/products/red-lentils.jpg",
			Organic:     true,
		},
	}
}
