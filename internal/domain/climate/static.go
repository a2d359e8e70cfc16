package climate

// Seasonal temperature templates per climate classification, used both to
// seed the static city table and to synthesize records from a text lookup
// that only revealed a classification keyword.
type seasonRange struct {
	min, max float64
}

var classificationSeasons = map[Classification]map[string]seasonRange{
	ClassTropical: {
		"winter": {20, 27},
		"spring": {24, 30},
		"summer": {26, 33},
		"autumn": {23, 30},
	},
	ClassDesert: {
		"winter": {12, 24},
		"spring": {22, 35},
		"summer": {30, 45},
		"autumn": {20, 33},
	},
	ClassTemperate: {
		"winter": {0, 8},
		"spring": {8, 18},
		"summer": {18, 28},
		"autumn": {8, 18},
	},
	ClassContinental: {
		"winter": {-10, 0},
		"spring": {5, 15},
		"summer": {18, 30},
		"autumn": {5, 15},
	},
}

// SynthesizeRecord builds a full 12-month table for a city from its
// classification templates. Description and clothing strings derive from the
// bucket ladder over each month's midpoint.
func SynthesizeRecord(city, region string, class Classification, source string) *Record {
	seasons, ok := classificationSeasons[class]
	if !ok {
		return nil
	}
	months := make(map[string]MonthWeather, 12)
	for m := 1; m <= 12; m++ {
		r := seasons[SeasonForMonth(m)]
		avg := (r.min + r.max) / 2
		months[MonthName(m)] = MonthWeather{
			TempRange:   FormatTempRange(r.min, r.max),
			Description: Describe(avg),
			Clothing:    ClothingAdvice(avg),
		}
	}
	return &Record{
		City:           city,
		Region:         region,
		Classification: class,
		Months:         months,
		Source:         source,
	}
}

type staticCity struct {
	region string
	class  Classification
}

// Statically known cities, keyed by normalized country then lowercase city.
var staticCities = map[string]map[string]staticCity{
	"pakistan": {
		"karachi":   {"Sindh coast", ClassDesert},
		"lahore":    {"Punjab plains", ClassDesert},
		"islamabad": {"Pothohar plateau", ClassTemperate},
		"skardu":    {"Karakoram", ClassContinental},
	},
	"turkey": {
		"istanbul": {"Marmara", ClassTemperate},
		"ankara":   {"Central Anatolia", ClassContinental},
	},
	"japan": {
		"tokyo": {"Kanto", ClassTemperate},
		"kyoto": {"Kansai", ClassTemperate},
	},
	"dubai": {
		"dubai": {"Persian Gulf coast", ClassDesert},
	},
	"india": {
		"mumbai": {"Konkan coast", ClassTropical},
		"delhi":  {"Indo-Gangetic plain", ClassDesert},
	},
}

// staticLookup returns the statically known record for a (country, city)
// pair, or nil. An empty city falls back to the country key itself, which
// covers city-states like dubai.
func staticLookup(countryKey, city string) *Record {
	cities, ok := staticCities[countryKey]
	if !ok {
		return nil
	}
	if city == "" {
		city = countryKey
	}
	entry, ok := cities[city]
	if !ok {
		return nil
	}
	return SynthesizeRecord(city, entry.region, entry.class, "static")
}
