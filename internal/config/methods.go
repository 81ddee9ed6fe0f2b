package config

import "strings"

// CalcMethod identifies an Al Adhan prayer-time calculation method.
type CalcMethod struct {
	ID    int
	Label string
}

// CalcMethods lists the supported calculation methods, most widely
// applicable first.
var CalcMethods = []CalcMethod{
	{15, "Moonsighting Committee Worldwide"},
	{2, "ISNA (North America)"},
	{3, "Muslim World League"},
	{1, "University of Islamic Sciences, Karachi"},
	{4, "Umm Al-Qura University, Makkah"},
	{5, "Egyptian General Authority"},
	{7, "Institute of Geophysics, Tehran"},
	{8, "Gulf Region"},
	{9, "Ministry of Awqaf, Kuwait"},
	{10, "Qatar"},
	{11, "Majlis Ugama Islam Singapura"},
	{12, "UOIF (France)"},
	{13, "Diyanet (Turkey)"},
	{14, "Spiritual Administration of Muslims, Russia"},
}

// countryMethodMap maps lowercased country names to the calculation method
// local mosques and Islamic organizations commonly use.
var countryMethodMap = map[string]int{
	// North America
	"united states": 2, "usa": 2, "us": 2, "canada": 2, "mexico": 2,

	// UK & Ireland
	"united kingdom": 15, "uk": 15, "england": 15, "scotland": 15,
	"wales": 15, "northern ireland": 15, "ireland": 15,

	// Saudi Arabia & nearby
	"saudi arabia": 4, "ksa": 4, "yemen": 4,

	// Gulf states
	"uae": 8, "united arab emirates": 8, "bahrain": 8, "oman": 8,
	"kuwait": 9, "qatar": 10,

	// Egypt & North Africa
	"egypt": 5, "libya": 5, "sudan": 5, "south sudan": 5,

	// Maghreb
	"morocco": 3, "algeria": 3, "tunisia": 3,

	// South Asia
	"pakistan": 1, "india": 1, "bangladesh": 1, "afghanistan": 1,
	"sri lanka": 1, "nepal": 1, "maldives": 1,

	// Southeast Asia
	"singapore": 11, "malaysia": 11, "indonesia": 11, "brunei": 11,
	"thailand": 11, "philippines": 11, "myanmar": 11, "cambodia": 11,

	// Turkey
	"turkey": 13, "turkiye": 13, "türkiye": 13,

	// Iran
	"iran": 7,

	// France
	"france": 12,

	// Russia & Central Asia
	"russia": 14, "kazakhstan": 14, "uzbekistan": 14, "tajikistan": 14,
	"kyrgyzstan": 14, "turkmenistan": 14, "azerbaijan": 14,

	// Europe (non-UK/France)
	"germany": 3, "netherlands": 3, "belgium": 3, "spain": 3, "italy": 3,
	"sweden": 3, "norway": 3, "denmark": 3, "finland": 3, "switzerland": 3,
	"austria": 3, "greece": 3, "portugal": 3, "poland": 3, "romania": 3,
	"hungary": 3, "czech republic": 3, "bosnia": 3,
	"bosnia and herzegovina": 3, "albania": 3, "kosovo": 3,
	"north macedonia": 3, "croatia": 3, "serbia": 3, "bulgaria": 3,

	// Levant & Iraq
	"iraq": 3, "jordan": 3, "palestine": 3, "lebanon": 3, "syria": 3,

	// Africa (Sub-Saharan)
	"nigeria": 5, "somalia": 5, "kenya": 5, "ethiopia": 5, "tanzania": 5,
	"south africa": 3, "ghana": 5, "senegal": 3, "mali": 3, "niger": 3,
	"chad": 5,

	// Australia & NZ
	"australia": 2, "new zealand": 2,

	// East Asia
	"china": 3, "japan": 3, "south korea": 3,
}

// MethodForCountry returns the recommended calculation method for a country.
// Falls back to Muslim World League (3) as the most internationally
// recognized standard.
func MethodForCountry(country string) int {
	if id, ok := countryMethodMap[strings.TrimSpace(strings.ToLower(country))]; ok {
		return id
	}
	return 3
}

// MethodLabel returns the display label for a calculation method id.
func MethodLabel(id int) string {
	for _, m := range CalcMethods {
		if m.ID == id {
			return m.Label
		}
	}
	return "Unknown"
}
