package intent

// Season names the part of the year the traveler asked about.
type Season string

const (
	SeasonWinter      Season = "winter"
	SeasonSpring      Season = "spring"
	SeasonSummer      Season = "summer"
	SeasonAutumn      Season = "autumn"
	SeasonUnspecified Season = "unspecified"
)

// Category is the product category the traveler is shopping for.
type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryGifts       Category = "gifts"
	CategoryElectronics Category = "electronics"
	CategoryBeauty      Category = "beauty"
	CategoryHome        Category = "home"
)

// TravelIntent is the structured travel query handed to the recommendation
// pipeline. Immutable once constructed.
type TravelIntent struct {
	Destination   string   `json:"destination"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country,omitempty"`
	Season        Season   `json:"season"`
	Month         int      `json:"month,omitempty"` // 1-12, 0 when unset
	Category      Category `json:"category"`
	CulturalEvent string   `json:"culturalEvent,omitempty"`
	Activity      string   `json:"activity,omitempty"`
}

// SeasonForMonth maps a month number to the northern-hemisphere season.
func SeasonForMonth(month int) Season {
	switch month {
	case 12, 1, 2:
		return SeasonWinter
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	case 9, 10, 11:
		return SeasonAutumn
	default:
		return SeasonUnspecified
	}
}
