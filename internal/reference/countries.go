// internal/reference/countries.go
// Static reference data. Tiers are coarse income bands, not rankings;
// size categories only drive default search radii.

package reference

// Cultural group names referenced by countryData and culturalAffinity.
const (
	GroupNordic            = "Nordic"
	GroupWesternEuropean   = "Western European"
	GroupAnglosphere       = "Anglosphere"
	GroupMediterranean     = "Mediterranean"
	GroupEasternEuropean   = "Eastern European"
	GroupLatinAmerican     = "Latin American"
	GroupEastAsian         = "East Asian"
	GroupSoutheastAsian    = "Southeast Asian"
	GroupSouthAsian        = "South Asian"
	GroupMiddleEastern     = "Middle Eastern"
	GroupSubSaharanAfrican = "Sub-Saharan African"
)

var countryData = []Country{
	// Northern Europe
	{Code: "SE", Name: "Sweden", CulturalGroup: GroupNordic, PrimaryLanguage: "sv", EconomicTier: 1, Region: "Northern Europe", Size: SizeMedium},
	{Code: "NO", Name: "Norway", CulturalGroup: GroupNordic, PrimaryLanguage: "no", EconomicTier: 1, Region: "Northern Europe", Size: SizeMedium},
	{Code: "DK", Name: "Denmark", CulturalGroup: GroupNordic, PrimaryLanguage: "da", EconomicTier: 1, Region: "Northern Europe", Size: SizeSmall},
	{Code: "FI", Name: "Finland", CulturalGroup: GroupNordic, PrimaryLanguage: "fi", EconomicTier: 1, Region: "Northern Europe", Size: SizeMedium},
	{Code: "IS", Name: "Iceland", CulturalGroup: GroupNordic, PrimaryLanguage: "is", EconomicTier: 1, Region: "Northern Europe", Size: SizeSmall},

	// Western Europe
	{Code: "DE", Name: "Germany", CulturalGroup: GroupWesternEuropean, PrimaryLanguage: "de", EconomicTier: 1, Region: "Western Europe", Size: SizeMedium},
	{Code: "FR", Name: "France", CulturalGroup: GroupWesternEuropean, PrimaryLanguage: "fr", EconomicTier: 1, Region: "Western Europe", Size: SizeMedium},
	{Code: "NL", Name: "Netherlands", CulturalGroup: GroupWesternEuropean, PrimaryLanguage: "nl", EconomicTier: 1, Region: "Western Europe", Size: SizeSmall},
	{Code: "BE", Name: "Belgium", CulturalGroup: GroupWesternEuropean, PrimaryLanguage: "nl", EconomicTier: 1, Region: "Western Europe", Size: SizeSmall},
	{Code: "AT", Name: "Austria", CulturalGroup: GroupWesternEuropean, PrimaryLanguage: "de", EconomicTier: 1, Region: "Western Europe", Size: SizeSmall},
	{Code: "CH", Name: "Switzerland", CulturalGroup: GroupWesternEuropean, PrimaryLanguage: "de", EconomicTier: 1, Region: "Western Europe", Size: SizeSmall},
	{Code: "GB", Name: "United Kingdom", CulturalGroup: GroupAnglosphere, PrimaryLanguage: "en", EconomicTier: 1, Region: "Western Europe", Size: SizeMedium},
	{Code: "IE", Name: "Ireland", CulturalGroup: GroupAnglosphere, PrimaryLanguage: "en", EconomicTier: 1, Region: "Western Europe", Size: SizeSmall},

	// Southern Europe
	{Code: "IT", Name: "Italy", CulturalGroup: GroupMediterranean, PrimaryLanguage: "it", EconomicTier: 1, Region: "Southern Europe", Size: SizeMedium},
	{Code: "ES", Name: "Spain", CulturalGroup: GroupMediterranean, PrimaryLanguage: "es", EconomicTier: 1, Region: "Southern Europe", Size: SizeMedium},
	{Code: "PT", Name: "Portugal", CulturalGroup: GroupMediterranean, PrimaryLanguage: "pt", EconomicTier: 2, Region: "Southern Europe", Size: SizeSmall},
	{Code: "GR", Name: "Greece", CulturalGroup: GroupMediterranean, PrimaryLanguage: "el", EconomicTier: 2, Region: "Southern Europe", Size: SizeSmall},

	// Eastern Europe
	{Code: "PL", Name: "Poland", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "pl", EconomicTier: 2, Region: "Eastern Europe", Size: SizeMedium},
	{Code: "CZ", Name: "Czechia", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "cs", EconomicTier: 2, Region: "Eastern Europe", Size: SizeSmall},
	{Code: "SK", Name: "Slovakia", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "sk", EconomicTier: 2, Region: "Eastern Europe", Size: SizeSmall},
	{Code: "HU", Name: "Hungary", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "hu", EconomicTier: 2, Region: "Eastern Europe", Size: SizeSmall},
	{Code: "RO", Name: "Romania", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "ro", EconomicTier: 2, Region: "Eastern Europe", Size: SizeMedium},
	{Code: "BG", Name: "Bulgaria", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "bg", EconomicTier: 2, Region: "Eastern Europe", Size: SizeSmall},
	{Code: "HR", Name: "Croatia", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "hr", EconomicTier: 2, Region: "Eastern Europe", Size: SizeSmall},
	{Code: "RS", Name: "Serbia", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "sr", EconomicTier: 3, Region: "Eastern Europe", Size: SizeSmall},
	{Code: "UA", Name: "Ukraine", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "uk", EconomicTier: 3, Region: "Eastern Europe", Size: SizeLarge},
	{Code: "RU", Name: "Russia", CulturalGroup: GroupEasternEuropean, PrimaryLanguage: "ru", EconomicTier: 2, Region: "Eastern Europe", Size: SizeLarge},

	// North America
	{Code: "US", Name: "United States", CulturalGroup: GroupAnglosphere, PrimaryLanguage: "en", EconomicTier: 1, Region: "North America", Size: SizeLarge},
	{Code: "CA", Name: "Canada", CulturalGroup: GroupAnglosphere, PrimaryLanguage: "en", EconomicTier: 1, Region: "North America", Size: SizeLarge},
	{Code: "MX", Name: "Mexico", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "North America", Size: SizeLarge},

	// Central America
	{Code: "CR", Name: "Costa Rica", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "Central America", Size: SizeSmall},
	{Code: "PA", Name: "Panama", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "Central America", Size: SizeSmall},

	// South America
	{Code: "BR", Name: "Brazil", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "pt", EconomicTier: 3, Region: "South America", Size: SizeLarge},
	{Code: "AR", Name: "Argentina", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "South America", Size: SizeLarge},
	{Code: "CL", Name: "Chile", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 2, Region: "South America", Size: SizeMedium},
	{Code: "CO", Name: "Colombia", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "South America", Size: SizeMedium},
	{Code: "PE", Name: "Peru", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "South America", Size: SizeMedium},
	{Code: "UY", Name: "Uruguay", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 2, Region: "South America", Size: SizeSmall},
	{Code: "EC", Name: "Ecuador", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 3, Region: "South America", Size: SizeSmall},
	{Code: "VE", Name: "Venezuela", CulturalGroup: GroupLatinAmerican, PrimaryLanguage: "es", EconomicTier: 4, Region: "South America", Size: SizeMedium},

	// East Asia
	{Code: "JP", Name: "Japan", CulturalGroup: GroupEastAsian, PrimaryLanguage: "ja", EconomicTier: 1, Region: "East Asia", Size: SizeMedium},
	{Code: "KR", Name: "South Korea", CulturalGroup: GroupEastAsian, PrimaryLanguage: "ko", EconomicTier: 1, Region: "East Asia", Size: SizeSmall},
	{Code: "CN", Name: "China", CulturalGroup: GroupEastAsian, PrimaryLanguage: "zh", EconomicTier: 2, Region: "East Asia", Size: SizeLarge},
	{Code: "TW", Name: "Taiwan", CulturalGroup: GroupEastAsian, PrimaryLanguage: "zh", EconomicTier: 1, Region: "East Asia", Size: SizeSmall},

	// Southeast Asia
	{Code: "TH", Name: "Thailand", CulturalGroup: GroupSoutheastAsian, PrimaryLanguage: "th", EconomicTier: 3, Region: "Southeast Asia", Size: SizeMedium},
	{Code: "VN", Name: "Vietnam", CulturalGroup: GroupSoutheastAsian, PrimaryLanguage: "vi", EconomicTier: 3, Region: "Southeast Asia", Size: SizeMedium},
	{Code: "PH", Name: "Philippines", CulturalGroup: GroupSoutheastAsian, PrimaryLanguage: "tl", EconomicTier: 3, Region: "Southeast Asia", Size: SizeMedium},
	{Code: "ID", Name: "Indonesia", CulturalGroup: GroupSoutheastAsian, PrimaryLanguage: "id", EconomicTier: 3, Region: "Southeast Asia", Size: SizeLarge},
	{Code: "MY", Name: "Malaysia", CulturalGroup: GroupSoutheastAsian, PrimaryLanguage: "ms", EconomicTier: 2, Region: "Southeast Asia", Size: SizeMedium},
	{Code: "SG", Name: "Singapore", CulturalGroup: GroupSoutheastAsian, PrimaryLanguage: "en", EconomicTier: 1, Region: "Southeast Asia", Size: SizeSmall},

	// South Asia
	{Code: "IN", Name: "India", CulturalGroup: GroupSouthAsian, PrimaryLanguage: "hi", EconomicTier: 3, Region: "South Asia", Size: SizeLarge},
	{Code: "PK", Name: "Pakistan", CulturalGroup: GroupSouthAsian, PrimaryLanguage: "ur", EconomicTier: 4, Region: "South Asia", Size: SizeLarge},
	{Code: "BD", Name: "Bangladesh", CulturalGroup: GroupSouthAsian, PrimaryLanguage: "bn", EconomicTier: 4, Region: "South Asia", Size: SizeMedium},
	{Code: "LK", Name: "Sri Lanka", CulturalGroup: GroupSouthAsian, PrimaryLanguage: "si", EconomicTier: 3, Region: "South Asia", Size: SizeSmall},
	{Code: "NP", Name: "Nepal", CulturalGroup: GroupSouthAsian, PrimaryLanguage: "ne", EconomicTier: 4, Region: "South Asia", Size: SizeSmall},

	// Middle East
	{Code: "AE", Name: "United Arab Emirates", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "ar", EconomicTier: 1, Region: "Middle East", Size: SizeSmall},
	{Code: "SA", Name: "Saudi Arabia", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "ar", EconomicTier: 2, Region: "Middle East", Size: SizeLarge},
	{Code: "JO", Name: "Jordan", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "ar", EconomicTier: 3, Region: "Middle East", Size: SizeSmall},
	{Code: "IL", Name: "Israel", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "he", EconomicTier: 1, Region: "Middle East", Size: SizeSmall},
	{Code: "TR", Name: "Turkey", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "tr", EconomicTier: 2, Region: "Middle East", Size: SizeLarge},

	// North Africa
	{Code: "EG", Name: "Egypt", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "ar", EconomicTier: 4, Region: "North Africa", Size: SizeLarge},
	{Code: "MA", Name: "Morocco", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "ar", EconomicTier: 4, Region: "North Africa", Size: SizeMedium},
	{Code: "TN", Name: "Tunisia", CulturalGroup: GroupMiddleEastern, PrimaryLanguage: "ar", EconomicTier: 3, Region: "North Africa", Size: SizeSmall},

	// West Africa
	{Code: "NG", Name: "Nigeria", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "en", EconomicTier: 4, Region: "West Africa", Size: SizeLarge},
	{Code: "GH", Name: "Ghana", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "en", EconomicTier: 4, Region: "West Africa", Size: SizeMedium},
	{Code: "SN", Name: "Senegal", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "fr", EconomicTier: 4, Region: "West Africa", Size: SizeSmall},

	// East Africa
	{Code: "KE", Name: "Kenya", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "en", EconomicTier: 4, Region: "East Africa", Size: SizeMedium},
	{Code: "ET", Name: "Ethiopia", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "am", EconomicTier: 4, Region: "East Africa", Size: SizeLarge},
	{Code: "TZ", Name: "Tanzania", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "sw", EconomicTier: 4, Region: "East Africa", Size: SizeLarge},
	{Code: "UG", Name: "Uganda", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "sw", EconomicTier: 4, Region: "East Africa", Size: SizeMedium},

	// Southern Africa
	{Code: "ZA", Name: "South Africa", CulturalGroup: GroupSubSaharanAfrican, PrimaryLanguage: "en", EconomicTier: 3, Region: "Southern Africa", Size: SizeLarge},

	// Oceania
	{Code: "AU", Name: "Australia", CulturalGroup: GroupAnglosphere, PrimaryLanguage: "en", EconomicTier: 1, Region: "Oceania", Size: SizeLarge},
	{Code: "NZ", Name: "New Zealand", CulturalGroup: GroupAnglosphere, PrimaryLanguage: "en", EconomicTier: 1, Region: "Oceania", Size: SizeMedium},
}

// regionAdjacency is symmetric: if A lists B, B lists A.
var regionAdjacency = map[string][]string{
	"Northern Europe": {"Western Europe", "Eastern Europe"},
	"Western Europe":  {"Northern Europe", "Southern Europe", "Eastern Europe"},
	"Southern Europe": {"Western Europe", "Eastern Europe", "North Africa", "Middle East"},
	"Eastern Europe":  {"Northern Europe", "Western Europe", "Southern Europe", "Middle East"},
	"North America":   {"Central America"},
	"Central America": {"North America", "South America"},
	"South America":   {"Central America"},
	"East Asia":       {"Southeast Asia"},
	"Southeast Asia":  {"East Asia", "South Asia", "Oceania"},
	"South Asia":      {"Southeast Asia", "Middle East"},
	"Middle East":     {"Southern Europe", "Eastern Europe", "South Asia", "North Africa"},
	"North Africa":    {"Middle East", "Southern Europe", "West Africa", "East Africa"},
	"West Africa":     {"North Africa", "East Africa"},
	"East Africa":     {"North Africa", "West Africa", "Southern Africa"},
	"Southern Africa": {"East Africa"},
	"Oceania":         {"Southeast Asia"},
}

// culturalAffinity maps a group to the groups it is declared affine
// with; membership is directional by design (affinity is about who a
// group's users historically match with, not mutual closeness).
var culturalAffinity = map[string][]string{
	GroupNordic:            {GroupWesternEuropean, GroupAnglosphere},
	GroupWesternEuropean:   {GroupNordic, GroupAnglosphere, GroupMediterranean},
	GroupAnglosphere:       {GroupWesternEuropean, GroupNordic},
	GroupMediterranean:     {GroupWesternEuropean, GroupLatinAmerican, GroupEasternEuropean},
	GroupEasternEuropean:   {GroupMediterranean, GroupWesternEuropean},
	GroupLatinAmerican:     {GroupMediterranean},
	GroupEastAsian:         {GroupSoutheastAsian},
	GroupSoutheastAsian:    {GroupEastAsian, GroupSouthAsian},
	GroupSouthAsian:        {GroupSoutheastAsian, GroupMiddleEastern},
	GroupMiddleEastern:     {GroupSouthAsian, GroupMediterranean},
	GroupSubSaharanAfrican: {GroupMiddleEastern, GroupAnglosphere},
}
