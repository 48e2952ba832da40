package domain

// WildcardCity is the directory city token meaning "applies to every city
// in this county".
const WildcardCity = "*"

// unincorporatedKey is the normalized form of the county catch-all city.
const unincorporatedKey = "unincorporated"

// MatchTier names the fallback tier that produced a match result,
// used for logging and metrics labels.
type MatchTier string

const (
	TierExact          MatchTier = "exact"
	TierUnincorporated MatchTier = "unincorporated"
	TierWildcard       MatchTier = "wildcard"
	TierNone           MatchTier = "none"
	TierNoCounty       MatchTier = "no_county"
)

// MatchResult holds the directory rows applicable to one jurisdiction query.
type MatchResult struct {
	Rows             []ContactRow `json:"rows"`
	ExactCityMatched bool         `json:"exact_city_matched"`
	Tier             MatchTier    `json:"tier"`
}

// Match selects the directory rows that apply to (county, city).
//
// County is always required: an empty county key yields an empty result.
// Within the county the city match is tiered — exact city, then the
// "unincorporated" catch-all, then wildcard-only. Wildcard rows are appended
// to the first non-empty tier as county-wide contacts. An exact-city match
// suppresses unincorporated rows entirely; that mirrors how the directories
// are curated today and is kept as-is.
//
// Rows surviving tier selection keep directory insertion order; duplicates
// are removed by full-row equality, not key equality, so two distinct
// contacts at the same city/department both survive.
func Match(rows []ContactRow, county, city string) MatchResult {
	countyKey := NormalizeCounty(county)
	if countyKey == "" {
		return MatchResult{Tier: TierNoCounty}
	}
	cityKey := NormalizeCity(city)

	var exact, uninc, wildcard []ContactRow
	for _, r := range rows {
		if r.CountyKey != countyKey {
			continue
		}
		switch {
		case r.City == WildcardCity:
			wildcard = append(wildcard, r)
		case r.CityKey == unincorporatedKey:
			uninc = append(uninc, r)
		case cityKey != "" && r.CityKey == cityKey:
			exact = append(exact, r)
		}
	}

	switch {
	case len(exact) > 0:
		return MatchResult{
			Rows:             dedupeRows(append(exact, wildcard...)),
			ExactCityMatched: true,
			Tier:             TierExact,
		}
	case len(uninc) > 0:
		return MatchResult{
			Rows: dedupeRows(append(uninc, wildcard...)),
			Tier: TierUnincorporated,
		}
	case len(wildcard) > 0:
		return MatchResult{
			Rows: dedupeRows(wildcard),
			Tier: TierWildcard,
		}
	default:
		return MatchResult{Tier: TierNone}
	}
}

// SplitByDept groups matched rows by department type, preserving order.
func SplitByDept(rows []ContactRow) map[DeptType][]ContactRow {
	byDept := make(map[DeptType][]ContactRow)
	for _, r := range rows {
		byDept[r.DeptType] = append(byDept[r.DeptType], r)
	}
	return byDept
}

// dedupeRows removes duplicates by full-row equality, keeping first
// occurrence order.
func dedupeRows(rows []ContactRow) []ContactRow {
	seen := make(map[ContactRow]struct{}, len(rows))
	out := rows[:0:0]
	for _, r := range rows {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
