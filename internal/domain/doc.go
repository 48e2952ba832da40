// Package domain models jurisdiction contact directories and the resolution
// pipeline that turns a street address into a set of public-records contacts.
//
// # Jurisdiction conventions
//
// County is the primary partition key: no match ever crosses a county
// boundary. Within a county, the directory distinguishes three kinds of city
// values:
//
//	"Fort Myers"       →  an exact municipality entry
//	"Unincorporated"   →  the county's catch-all for areas outside any city
//	"*"                →  a wildcard entry that applies to every city county-wide
//
// Many rural counties only publish county-level contacts, so the matcher
// falls back in tiers: exact city, then unincorporated, then wildcard-only.
// Wildcard rows are appended to whichever tier matched first; they are never
// the sole signal when a more specific tier already matched. See [Match].
//
// # Normalized keys
//
// County and city strings are compared through derived lowercase keys:
// trimmed, periods stripped, "saint" collapsed to "st", and for counties a
// trailing " county" suffix (and anything after it) removed, so
// "Lee County, FL" and "lee" compare equal. Keys are derived values — they
// are precomputed on directory rows at load time and never persisted apart
// from their source strings. See [NormalizeCounty] and [NormalizeCity].
//
// # Miami-Dade folio prefixes
//
// Miami-Dade County assessor folio numbers encode the municipality in their
// first two digits ("01" = Miami, "30" = unincorporated county). The
// [ExpectedCity] lookup decodes that prefix so a resolved city can be checked
// against the parcel the user supplied. The check is advisory only: a
// disagreement surfaces a notice and never alters the match result. No other
// county's parcel scheme is interpreted.
//
// # Error posture
//
// Every function in this package is pure and total: malformed, empty, or
// otherwise hostile input maps to a defined output (empty key, empty match,
// unknown municipality), never to an error. Failures belong to the
// boundaries — the spreadsheet loader and the geocoder client — which
// translate them into explicit result states before they reach this package.
package domain
