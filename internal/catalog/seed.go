package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/novamart/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "electronics", Name: "Electronics"},
		{ID: "clothing", Name: "Clothing"},
		{ID: "home", Name: "Home & Kitchen"},
		{ID: "accessories", Name: "Accessories"},
	}
}

func seedProducts() []domain.Product {
	sizes := domain.ProductVariant{ID: "size", Name: "Size", Options: []string{"S", "M", "L", "XL"}}
	colors := domain.ProductVariant{ID: "color", Name: "Color", Options: []string{"Black", "White", "Navy"}}

	return []domain.Product{
		{
			ID: "1", Name: "Wireless Headphones", Price: usd("129.99"),
			Image:       "/images/products/headphones.jpg",
			Description: "Over-ear wireless headphones with active noise cancellation and 30-hour battery life.",
			CategoryID:  "electronics", Rating: 4.7, Stock: 12,
			Variants: []domain.ProductVariant{colors},
			Reviews: []domain.Review{
				review("6f1a2b3c-0001-4b1a-9c3d-1a2b3c4d5e01", "Sarah J.", 5,
					"The sound quality exceeded my expectations.", date(2025, time.March, 14)),
				review("6f1a2b3c-0002-4b1a-9c3d-1a2b3c4d5e02", "Michael T.", 4.5,
					"Comfortable for long sessions, battery lasts forever.", date(2025, time.April, 2)),
			},
		},
		{
			ID: "2", Name: "Smart Watch", Price: usd("199.99"),
			Image:       "/images/products/smartwatch.jpg",
			Description: "Fitness tracking, heart-rate monitoring and a week of battery on a single charge.",
			CategoryID:  "electronics", Rating: 4.4, Stock: 8,
			Variants: []domain.ProductVariant{colors},
		},
		{
			ID: "3", Name: "Bluetooth Speaker", Price: usd("59.99"),
			Image:       "/images/products/speaker.jpg",
			Description: "Portable waterproof speaker with 360-degree sound.",
			CategoryID:  "electronics", Rating: 4.2, Stock: 25,
		},
		{
			ID: "4", Name: "Classic Cotton T-Shirt", Price: usd("24.99"),
			Image:       "/images/products/tshirt.jpg",
			Description: "Soft 100% organic cotton tee in a relaxed fit.",
			CategoryID:  "clothing", Rating: 4.6, Stock: 40,
			Variants: []domain.ProductVariant{sizes, colors},
			Reviews: []domain.Review{
				review("6f1a2b3c-0003-4b1a-9c3d-1a2b3c4d5e03", "Emily R.", 5,
					"Fits perfectly and washes well.", date(2025, time.February, 20)),
			},
		},
		{
			ID: "5", Name: "Denim Jacket", Price: usd("89.99"),
			Image:       "/images/products/jacket.jpg",
			Description: "Mid-weight denim jacket with a vintage wash.",
			CategoryID:  "clothing", Rating: 4.3, Stock: 15,
			Variants: []domain.ProductVariant{sizes},
		},
		{
			ID: "6", Name: "Ceramic Coffee Mug Set", Price: usd("34.99"),
			Image:       "/images/products/mugs.jpg",
			Description: "Set of four hand-glazed ceramic mugs, dishwasher safe.",
			CategoryID:  "home", Rating: 4.8, Stock: 30,
		},
		{
			ID: "7", Name: "Leather Wallet", Price: usd("49.99"),
			Image:       "/images/products/wallet.jpg",
			Description: "Slim full-grain leather wallet with RFID blocking.",
			CategoryID:  "accessories", Rating: 4.5, Stock: 22,
			Variants: []domain.ProductVariant{colors},
		},
		{
			ID: "8", Name: "Stainless Steel Water Bottle", Price: usd("29.99"),
			Image:       "/images/products/bottle.jpg",
			Description: "Double-walled insulated bottle keeps drinks cold for 24 hours.",
			CategoryID:  "accessories", Rating: 4.4, Stock: 50,
		},
		{
			ID: "9", Name: "4K Action Camera", Price: usd("249.99"),
			Image:       "/images/products/camera.jpg",
			Description: "Waterproof action camera with image stabilization and voice control.",
			CategoryID:  "electronics", Rating: 4.1, Stock: 6,
		},
		{
			ID: "10", Name: "Linen Flannel Shirt", Price: usd("44.99"),
			Image:       "/images/products/flannel.jpg",
			Description: "Breathable linen-blend shirt for all seasons.",
			CategoryID:  "clothing", Rating: 4.0, Stock: 18,
			Variants: []domain.ProductVariant{sizes},
		},
		{
			ID: "11", Name: "Scented Soy Candle", Price: usd("19.99"),
			Image:       "/images/products/candle.jpg",
			Description: "Hand-poured soy candle with cedar and amber notes, 45-hour burn.",
			CategoryID:  "home", Rating: 4.7, Stock: 35,
		},
		{
			ID: "12", Name: "Canvas Tote Bag", Price: usd("22.99"),
			Image:       "/images/products/tote.jpg",
			Description: "Heavy-duty canvas tote with interior zip pocket.",
			CategoryID:  "accessories", Rating: 4.2, Stock: 45,
		},
		{
			ID: "13", Name: "Mechanical Keyboard", Price: usd("119.99"),
			Image:       "/images/products/keyboard.jpg",
			Description: "Hot-swappable mechanical keyboard with PBT keycaps.",
			CategoryID:  "electronics", Rating: 4.6, Stock: 10,
		},
		{
			ID: "14", Name: "Wool Beanie", Price: usd("18.99"),
			Image:       "/images/products/beanie.jpg",
			Description: "Ribbed merino wool beanie, one size fits most.",
			CategoryID:  "accessories", Rating: 4.3, Stock: 28,
			Variants: []domain.ProductVariant{colors},
		},
		{
			ID: "15", Name: "Cast Iron Skillet", Price: usd("54.99"),
			Image:       "/images/products/skillet.jpg",
			Description: "Pre-seasoned 12-inch cast iron skillet, oven safe.",
			CategoryID:  "home", Rating: 4.9, Stock: 14,
		},
		{
			ID: "16", Name: "Running Sneakers", Price: usd("109.99"),
			Image:       "/images/products/sneakers.jpg",
			Description: "Lightweight trainers with responsive foam cushioning.",
			CategoryID:  "clothing", Rating: 4.5, Stock: 20,
			Variants: []domain.ProductVariant{sizes},
		},
		{
			ID: "17", Name: "Desk Lamp", Price: usd("39.99"),
			Image:       "/images/products/lamp.jpg",
			Description: "Adjustable LED desk lamp with three color temperatures.",
			CategoryID:  "home", Rating: 4.1, Stock: 16,
		},
		{
			ID: "18", Name: "Polarized Sunglasses", Price: usd("74.99"),
			Image:       "/images/products/sunglasses.jpg",
			Description: "UV400 polarized lenses in a matte acetate frame.",
			CategoryID:  "accessories", Rating: 4.0, Stock: 12,
		},
		{
			ID: "19", Name: "French Press", Price: usd("42.99"),
			Image:       "/images/products/frenchpress.jpg",
			Description: "Borosilicate glass french press with a steel filter, 1 liter.",
			CategoryID:  "home", Rating: 4.4, Stock: 19,
		},
		{
			ID: "20", Name: "Portable Charger", Price: usd("45.99"),
			Image:       "/images/products/charger.jpg",
			Description: "20,000 mAh power bank with fast charging for two devices.",
			CategoryID:  "electronics", Rating: 4.3, Stock: 32,
		},
	}
}

func usd(amount string) domain.Money {
	return domain.Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency.USD,
	}
}

func review(id, author string, rating float64, comment string, d time.Time) domain.Review {
	return domain.Review{
		ID:      uuid.MustParse(id),
		Author:  author,
		Rating:  rating,
		Comment: comment,
		Date:    d,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
