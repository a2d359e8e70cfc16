package catalogsrc

import (
	"context"

	"github.com/nadira/tripstylist/internal/domain/catalog"
)

// MemoryProvider serves a fixed catalog from memory. It backs local
// development and is the last rung of the provider waterfall.
type MemoryProvider struct {
	products []catalog.Product
}

// NewMemoryProvider seeds the provider. A nil seed loads the default
// demo catalog.
func NewMemoryProvider(seed []catalog.Product) *MemoryProvider {
	if seed == nil {
		seed = defaultCatalog()
	}
	return &MemoryProvider{products: seed}
}

func (p *MemoryProvider) Products(_ context.Context, query catalog.Query) ([]catalog.Product, error) {
	return catalog.FilterLocal(p.products, query), nil
}

func usd(units int64, nanos int32) catalog.Price {
	return catalog.Price{CurrencyCode: "USD", Units: units, Nanos: nanos}
}

// defaultCatalog mixes climate-suited, festival and deliberately
// taboo-sensitive items so every filter stage has work to do.
func defaultCatalog() []catalog.Product {
	return []catalog.Product{
		{
			ID:          "cotton-shirt",
			Name:        "Lightweight Cotton Shirt",
			Description: "Breathable long-sleeve shirt for hot days",
			Picture:     "/static/img/products/cotton-shirt.jpg",
			Price:       usd(24, 990000000),
			Categories:  []string{"clothing", "summer", "hot"},
		},
		{
			ID:          "sun-hat",
			Name:        "Wide Brim Sun Hat",
			Description: "Packable straw hat with UPF 50 protection",
			Picture:     "/static/img/products/sun-hat.jpg",
			Price:       usd(18, 0),
			Categories:  []string{"accessories", "summer"},
		},
		{
			ID:          "wool-sweater",
			Name:        "Merino Wool Sweater",
			Description: "Thick knit sweater for cold climates",
			Picture:     "/static/img/products/wool-sweater.jpg",
			Price:       usd(79, 500000000),
			Categories:  []string{"clothing", "winter", "cold"},
		},
		{
			ID:          "thermal-set",
			Name:        "Thermal Base Layer Set",
			Description: "Warm layers for sub-zero treks",
			Picture:     "/static/img/products/thermal-set.jpg",
			Price:       usd(45, 0),
			Categories:  []string{"clothing", "winter", "outerwear"},
		},
		{
			ID:          "rain-jacket",
			Name:        "Packable Rain Jacket",
			Description: "Light jacket for changeable mild weather",
			Picture:     "/static/img/products/rain-jacket.jpg",
			Price:       usd(59, 990000000),
			Categories:  []string{"clothing", "all-weather"},
		},
		{
			ID:          "trad-kurta",
			Name:        "Traditional Embroidered Kurta",
			Description: "Handwoven festive outfit with intricate embroidery",
			Picture:     "/static/img/products/trad-kurta.jpg",
			Price:       usd(64, 0),
			Categories:  []string{"clothing", "traditional", "gifts"},
		},
		{
			ID:          "silk-scarf",
			Name:        "Elegant Silk Headscarf",
			Description: "Modest cover-up suitable for religious sites",
			Picture:     "/static/img/products/silk-scarf.jpg",
			Price:       usd(29, 0),
			Categories:  []string{"accessories", "modest"},
		},
		{
			ID:          "gold-bangles",
			Name:        "Gold Plated Bangle Set",
			Description: "Festive jewelry for weddings and celebrations",
			Picture:     "/static/img/products/gold-bangles.jpg",
			Price:       usd(120, 0),
			Categories:  []string{"jewelry", "gifts"},
		},
		{
			ID:          "travel-adapter",
			Name:        "Universal Travel Adapter",
			Description: "Works in 150 countries, dual USB ports",
			Picture:     "/static/img/products/travel-adapter.jpg",
			Price:       usd(15, 500000000),
			Categories:  []string{"electronics", "all-weather"},
		},
		{
			ID:          "string-bikini",
			Name:        "String Bikini",
			Description: "Two piece swimwear in bright prints",
			Picture:     "/static/img/products/string-bikini.jpg",
			Price:       usd(34, 0),
			Categories:  []string{"clothing", "swimwear", "inappropriate-conservative"},
		},
		{
			ID:          "wine-set",
			Name:        "Vintage Wine Gift Set",
			Description: "Two bottles of red with an alcohol content card",
			Picture:     "/static/img/products/wine-set.jpg",
			Price:       usd(89, 0),
			Categories:  []string{"gifts", "alcohol"},
		},
		{
			ID:          "leather-wallet",
			Name:        "Classic Leather Wallet",
			Description: "Full-grain leather products line, slim profile",
			Picture:     "/static/img/products/leather-wallet.jpg",
			Price:       usd(42, 0),
			Categories:  []string{"accessories", "leather"},
		},
	}
}
