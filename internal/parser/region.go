package parser

import "strings"

// UnknownValue is the default for any unresolved dimension.
const UnknownValue = "Unknown"

// regionCodeMap maps short region codes and state-named region values
// to one of the five canonical regions.
var regionCodeMap = map[string]string{
	"MAH":         "West",
	"KAR":         "South",
	"GMU":         "North",
	"DELHI":       "North",
	"GUJ":         "West",
	"RAJ":         "North",
	"TN":          "South",
	"MAHARASHTRA": "West",
	"KARNATAKA":   "South",
	"GUJARAT":     "West",
	"RAJASTHAN":   "North",
	"TAMIL NADU":  "South",
	"WEST BENGAL": "East",
}

// stateRegionMap maps an uppercased Indian state or union territory to
// its canonical region.
var stateRegionMap = map[string]string{
	// North
	"DELHI":             "North",
	"HARYANA":           "North",
	"PUNJAB":            "North",
	"HIMACHAL PRADESH":  "North",
	"UTTARAKHAND":       "North",
	"UTTAR PRADESH":     "North",
	"JAMMU AND KASHMIR": "North",
	"LADAKH":            "North",
	"CHANDIGARH":        "North",

	// South
	"KARNATAKA":           "South",
	"TAMIL NADU":          "South",
	"KERALA":              "South",
	"ANDHRA PRADESH":      "South",
	"TELANGANA":           "South",
	"PUDUCHERRY":          "South",
	"LAKSHADWEEP":         "South",
	"ANDAMAN AND NICOBAR": "South",

	// East
	"WEST BENGAL":       "East",
	"ODISHA":            "East",
	"BIHAR":             "East",
	"JHARKHAND":         "East",
	"SIKKIM":            "East",
	"ASSAM":             "East",
	"ARUNACHAL PRADESH": "East",
	"MANIPUR":           "East",
	"MEGHALAYA":         "East",
	"MIZORAM":           "East",
	"NAGALAND":          "East",
	"TRIPURA":           "East",

	// West
	"MAHARASHTRA":            "West",
	"GUJARAT":                "West",
	"RAJASTHAN":              "West",
	"GOA":                    "West",
	"DAMAN AND DIU":          "West",
	"DADRA AND NAGAR HAVELI": "West",

	// Central
	"MADHYA PRADESH": "Central",
	"CHHATTISGARH":   "Central",
}

// CanonicalRegion maps a raw region value and/or state to one of the
// five canonical regions (North, South, East, West, Central). Lookup
// order: region code map, then state map, then the literal region
// string, then "Unknown".
func CanonicalRegion(region, state string) string {
	if r := strings.TrimSpace(region); r != "" {
		if mapped, ok := regionCodeMap[strings.ToUpper(r)]; ok {
			return mapped
		}
	}
	if s := strings.TrimSpace(state); s != "" {
		if mapped, ok := stateRegionMap[strings.ToUpper(s)]; ok {
			return mapped
		}
	}
	if r := strings.TrimSpace(region); r != "" {
		return r
	}
	return UnknownValue
}
