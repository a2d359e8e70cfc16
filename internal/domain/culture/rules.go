package culture

// Festival describes a recurring cultural event relevant to shopping.
type Festival struct {
	Name              string `json:"name"`
	Date              string `json:"date"`
	Significance      string `json:"significance"`
	ShoppingRelevance string `json:"shoppingRelevance"`
}

// Rules bundles the static cultural knowledge for one country or region.
// Taboo phrases are ordered: the head of the list holds the general clothing
// taboos surfaced when no activity narrows the selection.
type Rules struct {
	Key                     string
	Taboos                  []string
	Mandatory               []string
	Priorities              []string
	BeachAppropriate        []string
	ReligiousConsiderations []string
	GiftCulture             string
	ClothingNorms           map[string]string
	Festivals               []Festival
}

func countryRules() map[string]Rules {
	return map[string]Rules{
		"turkey": {
			Key:    "turkey",
			Taboos: []string{"revealing", "leather products during religious festivals", "alcohol", "crop"},
			Mandatory: []string{
				"head covering for mosque visits",
				"layers for evening temperature drops",
			},
			Priorities: []string{
				"conservative styling in religious areas",
				"smart casual for tourist districts",
				"formal business attire",
			},
			BeachAppropriate: []string{"modest swimwear", "cover-up", "rashguard"},
			ReligiousConsiderations: []string{
				"cover shoulders and legs",
				"head covering for mosques",
			},
			GiftCulture: "Hospitality gifts appreciated, avoid alcohol unless certain of recipient",
			ClothingNorms: map[string]string{
				"general":         "Conservative dress recommended, especially in religious areas",
				"religious_sites": "Cover shoulders and legs, bring head covering for mosques",
				"business":        "Formal attire expected, conservative styling",
				"casual":          "Smart casual acceptable in tourist areas",
			},
			Festivals: []Festival{
				{Name: "Republic Day", Date: "October 29", Significance: "National holiday celebrating Turkish Republic", ShoppingRelevance: "Turkish flag themed items, patriotic gifts"},
				{Name: "Ramadan", Date: "Variable lunar calendar", Significance: "Holy month of fasting", ShoppingRelevance: "Modest clothing, dates, traditional sweets"},
			},
		},
		"dubai": {
			Key:    "dubai",
			Taboos: []string{"revealing", "pork", "alcohol", "inappropriate-conservative", "bikini"},
			Mandatory: []string{
				"modest coverage in public spaces",
				"appropriate attire for religious sites",
			},
			Priorities: []string{
				"modest formal wear",
				"long sleeves for business settings",
				"resort wear within modest limits",
			},
			BeachAppropriate: []string{"burkini", "modest swimwear", "swim shirt", "cover-up"},
			ReligiousConsiderations: []string{
				"full coverage required",
				"bring appropriate attire",
			},
			GiftCulture: "Gold jewelry popular, luxury items appreciated, halal food items",
			ClothingNorms: map[string]string{
				"general":         "Modest dress code, respect for Islamic customs",
				"religious_sites": "Full coverage advised, bring appropriate attire",
				"business":        "Conservative formal wear, long sleeves recommended",
				"casual":          "Resort areas more relaxed, but still modest",
			},
			Festivals: []Festival{
				{Name: "Eid al-Fitr", Date: "Variable lunar calendar", Significance: "End of Ramadan celebrations", ShoppingRelevance: "Festive clothing, gold jewelry, dates, traditional sweets"},
				{Name: "Dubai Shopping Festival", Date: "January-February", Significance: "Annual shopping and entertainment festival", ShoppingRelevance: "Discounts, special promotions, cultural events"},
			},
		},
		"japan": {
			Key:    "japan",
			Taboos: []string{"loud colors in business settings", "shoes indoors", "overly casual business wear"},
			Mandatory: []string{
				"easy-remove shoes for temples and homes",
				"neat coordinated outfits",
			},
			Priorities: []string{
				"neat conservative appearance",
				"formal dark suits for business",
				"clean well-coordinated casual wear",
			},
			ReligiousConsiderations: []string{
				"remove shoes",
				"modest dress",
			},
			GiftCulture: "Omiyage (souvenir gifts) expected, presentation important",
			ClothingNorms: map[string]string{
				"general":         "Neat, conservative appearance valued",
				"religious_sites": "Remove shoes, modest dress",
				"business":        "Formal dark suits, attention to detail important",
				"casual":          "Clean, well-coordinated outfits preferred",
			},
			Festivals: []Festival{
				{Name: "Cherry Blossom Season", Date: "March-May", Significance: "Traditional hanami flower viewing", ShoppingRelevance: "Picnic supplies, traditional clothing, photography gear"},
				{Name: "Golden Week", Date: "Late April-Early May", Significance: "Collection of national holidays", ShoppingRelevance: "Travel gear, traditional crafts, souvenirs"},
			},
		},
		"pakistan": {
			Key:    "pakistan",
			Taboos: []string{"revealing", "inappropriate-conservative", "alcohol", "non-halal", "leather during religious periods"},
			Mandatory: []string{
				"modest coverage",
				"head covering for religious sites",
			},
			Priorities: []string{
				"traditional shalwar kameez",
				"conservative formal attire",
				"modest casual wear",
			},
			BeachAppropriate: []string{"modest swimwear", "swim shirt", "full coverage"},
			ReligiousConsiderations: []string{
				"modest coverage required",
				"head covering for women",
			},
			GiftCulture: "Hospitality important, traditional crafts valued",
			ClothingNorms: map[string]string{
				"general":         "Conservative dress, traditional clothing appreciated",
				"religious_sites": "Modest coverage advised, head covering for women",
				"business":        "Formal attire, cultural sensitivity important",
				"casual":          "Traditional shalwar kameez widely worn and appreciated",
			},
			Festivals: []Festival{
				{Name: "Eid al-Fitr", Date: "Variable lunar calendar", Significance: "End of Ramadan celebrations", ShoppingRelevance: "New clothes tradition, sweets, henna, jewelry"},
				{Name: "Wedding Season", Date: "November-February", Significance: "Peak wedding season", ShoppingRelevance: "Formal wear, jewelry, traditional outfits, gifts"},
			},
		},
		"india": {
			Key:    "india",
			Taboos: []string{"leather products for Hindu temples", "beef", "revealing"},
			Mandatory: []string{
				"modest dress for temples",
				"easy-remove footwear",
			},
			Priorities: []string{
				"traditional festive wear",
				"modest regional styles",
				"formal wear with cultural awareness",
			},
			ReligiousConsiderations: []string{
				"modest dress required",
				"remove shoes",
			},
			GiftCulture: "Sweets popular, traditional items appreciated",
			ClothingNorms: map[string]string{
				"general":         "Varies by region, generally conservative",
				"religious_sites": "Modest dress advised, remove shoes",
				"business":        "Formal wear, cultural awareness appreciated",
				"casual":          "Traditional and western both acceptable",
			},
			Festivals: []Festival{
				{Name: "Diwali", Date: "October-November", Significance: "Festival of lights", ShoppingRelevance: "Traditional clothing, jewelry, sweets, decorative items"},
				{Name: "Holi", Date: "March", Significance: "Festival of colors", ShoppingRelevance: "White clothing, colors, water guns, sweets"},
			},
		},
	}
}

// genericRules is the fallback for destinations without curated data.
func genericRules(key string) Rules {
	return Rules{
		Key: key,
		Priorities: []string{
			"respectful modest dress",
			"smart casual outfits",
			"formal attire for business",
		},
		GiftCulture: "Research local customs for gift-giving",
		ClothingNorms: map[string]string{
			"general":         "Respectful, modest dress recommended",
			"religious_sites": "Conservative clothing advised",
			"business":        "Formal attire appropriate",
			"casual":          "Smart casual recommended",
		},
	}
}
