// Package mains infers the local electrical grid frequency, used as the
// default target for interference notch filtering.
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Grid frequencies in Hz.
const (
	Hz50 = 50.0
	Hz60 = 60.0
)

// Frequency returns the mains frequency for the host's timezone, falling
// back to 50 Hz when the timezone cannot be determined. 50 Hz is the
// globally more common grid frequency.
func Frequency() float64 {
	zone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return Hz50
	}
	return FrequencyForTimezone(zone)
}

// FrequencyForTimezone returns the mains frequency for an IANA timezone
// name. Zones with no country association (UTC, GMT, Etc/*) and unknown
// zones map to 50 Hz.
func FrequencyForTimezone(zone string) float64 {
	if zone == "UTC" || zone == "GMT" || strings.HasPrefix(zone, "Etc/") {
		return Hz50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return Hz50
	}

	country, err := tzMap.GetCountry(zone)
	if err != nil {
		return Hz50
	}
	if sixtyHertz[country] {
		return Hz60
	}
	// Japan is split between 50 Hz and 60 Hz regions; the more populous
	// eastern grid runs at 50 Hz, which the fallthrough already covers.
	return Hz50
}

// sixtyHertz holds the countries whose grids run at 60 Hz. Everything else
// uses 50 Hz. Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var sixtyHertz = map[string]bool{
	// Americas
	"United States":       true,
	"Canada":              true,
	"Mexico":              true,
	"Belize":              true,
	"Costa Rica":          true,
	"El Salvador":         true,
	"Guatemala":           true,
	"Honduras":            true,
	"Nicaragua":           true,
	"Panama":              true,
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,
	"Brazil":              true,
	"Colombia":            true,
	"Ecuador":             true,
	"Guyana":              true,
	"Peru":                true,
	"Suriname":            true,
	"Venezuela":           true,

	// Asia
	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	// Pacific
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
