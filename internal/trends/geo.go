package trends

import "strings"

var regions = map[string]string{
	"":   "Worldwide",
	"ID": "Indonesia",
	"MY": "Malaysia",
	"SG": "Singapore",
	"TH": "Thailand",
	"PH": "Philippines",
	"VN": "Vietnam",
	"IN": "India",
	"JP": "Japan",
	"KR": "South Korea",
	"AU": "Australia",
	"US": "United States",
	"GB": "United Kingdom",
	"DE": "Germany",
	"FR": "France",
	"BR": "Brazil",
}

// Region names a geo code for display, falling back to the code itself.
func Region(geo string) string {
	if name, ok := regions[strings.ToUpper(geo)]; ok {
		return name
	}
	return geo
}
