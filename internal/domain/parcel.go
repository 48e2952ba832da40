package domain

import "regexp"

// folioMunicipalities maps the first two digits of a Miami-Dade assessor
// folio number to the municipality they encode. Code 30 is the
// unincorporated county. The table is fixed by the county's numbering
// convention; codes outside it resolve to unknown.
var folioMunicipalities = map[string]string{
	"01": "Miami",
	"02": "Miami Beach",
	"03": "Coral Gables",
	"04": "Hialeah",
	"05": "Miami Shores",
	"06": "Miami Springs",
	"07": "North Miami",
	"08": "North Miami Beach",
	"09": "Opa-Locka",
	"10": "South Miami",
	"11": "Homestead",
	"12": "Surfside",
	"13": "Bal Harbour",
	"14": "Biscayne Park",
	"15": "El Portal",
	"16": "Florida City",
	"17": "Golden Beach",
	"18": "Medley",
	"19": "North Bay Village",
	"20": "Key Biscayne",
	"21": "Indian Creek",
	"22": "Virginia Gardens",
	"23": "West Miami",
	"24": "Islandia",
	"25": "Sweetwater",
	"26": "Hialeah Gardens",
	"27": "Aventura",
	"28": "Sunny Isles Beach",
	"29": "Pinecrest",
	"30": "Unincorporated",
	"31": "Miami Lakes",
	"32": "Palmetto Bay",
	"33": "Miami Gardens",
	"34": "Doral",
	"35": "Cutler Bay",
	"36": "Bay Harbor Islands",
}

var nonDigitRe = regexp.MustCompile(`\D`)

// miamiDadeKeys are the normalized county keys accepted as Miami-Dade.
// The county appears hyphenated, spaced, concatenated, and as bare "dade"
// in the wild.
var miamiDadeKeys = map[string]bool{
	"miami-dade": true,
	"miami dade": true,
	"miamidade":  true,
	"dade":       true,
}

// IsMiamiDade reports whether a raw county string names Miami-Dade County
// under any of its common spellings.
func IsMiamiDade(county string) bool {
	return miamiDadeKeys[NormalizeCounty(county)]
}

// ExpectedCity decodes the municipality implied by a Miami-Dade folio
// number's two-digit prefix. Non-digit characters are stripped first, so
// "01-2345-678-9012" and "0123456789012" decode alike. Returns ok=false
// when fewer than two digits are present or the prefix is not in the table.
func ExpectedCity(parcelID string) (city string, ok bool) {
	digits := nonDigitRe.ReplaceAllString(parcelID, "")
	if len(digits) < 2 {
		return "", false
	}
	city, ok = folioMunicipalities[digits[:2]]
	return city, ok
}

// ParcelAdvisory reports a disagreement between the municipality a parcel
// number implies and the city the query resolved to. Advisory only — it
// never blocks or alters a match result.
type ParcelAdvisory struct {
	ParcelID     string `json:"parcel_id"`
	ExpectedCity string `json:"expected_city"`
	ResolvedCity string `json:"resolved_city"`
}

// CheckParcel runs the Miami-Dade folio-prefix consistency check. It returns
// nil unless all of the following hold: the county is Miami-Dade, the parcel
// prefix decodes to a known municipality, the resolved city is non-empty,
// and the two disagree after normalization. An "Unincorporated" expectation
// is consistent only with a city that itself normalizes to "unincorporated".
func CheckParcel(county, city, parcelID string) *ParcelAdvisory {
	if !IsMiamiDade(county) {
		return nil
	}
	expected, ok := ExpectedCity(parcelID)
	if !ok {
		return nil
	}
	cityKey := NormalizeCity(city)
	if cityKey == "" {
		return nil
	}
	if NormalizeCity(expected) == cityKey {
		return nil
	}
	return &ParcelAdvisory{
		ParcelID:     parcelID,
		ExpectedCity: expected,
		ResolvedCity: city,
	}
}
