package domain

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Query is one user-initiated jurisdiction lookup. Transient — it exists
// only for the duration of one resolution.
type Query struct {
	Address        string `json:"address"`
	CountyOverride string `json:"county,omitempty"`
	CityOverride   string `json:"city,omitempty"`
	ParcelID       string `json:"parcel_id,omitempty"`
	ProjectNumber  string `json:"project_number,omitempty"`
}

// GeocodeStatus records how the jurisdiction fields were obtained.
type GeocodeStatus string

const (
	GeocodeOK         GeocodeStatus = "ok"         // geocoder match used
	GeocodeOverridden GeocodeStatus = "overridden" // both overrides set, call skipped
	GeocodeNoMatch    GeocodeStatus = "no_match"   // service found no candidate
	GeocodeError      GeocodeStatus = "error"      // transport or service failure
	GeocodeSkipped    GeocodeStatus = "skipped"    // no geocoder or no address
)

// MatchStatus distinguishes the expected "no contacts configured" outcome
// from an actual match.
type MatchStatus string

const (
	MatchFound      MatchStatus = "matched"
	MatchNoContacts MatchStatus = "no_contacts"
	MatchNoCounty   MatchStatus = "no_county"
)

// Resolution is the outcome of one query against one directory snapshot.
type Resolution struct {
	Query         Query                     `json:"query"`
	Geocode       GeocodeResult             `json:"geocode,omitempty"`
	GeocodeStatus GeocodeStatus             `json:"geocode_status"`
	County        string                    `json:"county"`
	City          string                    `json:"city"`
	Match         MatchResult               `json:"match"`
	MatchStatus   MatchStatus               `json:"match_status"`
	ByDept        map[DeptType][]ContactRow `json:"by_dept,omitempty"`
	Advisory      *ParcelAdvisory           `json:"parcel_advisory,omitempty"`
	ResolvedAt    time.Time                 `json:"resolved_at"`
}

// Resolve runs the jurisdiction pipeline for one query: geocode the address
// (unless both overrides make the call unnecessary), normalize and match
// against the directory rows, and run the folio-prefix advisory check.
//
// User overrides always beat geocoder output. A geocoder failure degrades
// gracefully: the failure is recorded and resolution continues with whatever
// county/city the overrides supply. The advisory never alters the match.
func Resolve(ctx context.Context, q Query, rows []ContactRow, geocoder Geocoder, logger *slog.Logger) Resolution {
	res := Resolution{Query: q, GeocodeStatus: GeocodeSkipped}

	county := strings.TrimSpace(q.CountyOverride)
	city := strings.TrimSpace(q.CityOverride)

	switch {
	case county != "" && city != "":
		res.GeocodeStatus = GeocodeOverridden
	case geocoder != nil && strings.TrimSpace(q.Address) != "":
		geo, err := geocoder.Geocode(ctx, q.Address)
		switch {
		case errors.Is(err, ErrNoMatch):
			logger.Warn("geocoder found no match", "address", q.Address)
			res.GeocodeStatus = GeocodeNoMatch
		case err != nil:
			logger.Warn("geocoding failed", "address", q.Address, "error", err)
			res.GeocodeStatus = GeocodeError
		default:
			res.Geocode = geo
			res.GeocodeStatus = GeocodeOK
			if county == "" {
				county = geo.County
			}
			if city == "" {
				city = geo.City
			}
		}
	}

	res.County = county
	res.City = city
	res.Match = Match(rows, county, city)

	switch {
	case len(res.Match.Rows) > 0:
		res.MatchStatus = MatchFound
	case res.Match.Tier == TierNoCounty:
		res.MatchStatus = MatchNoCounty
	default:
		res.MatchStatus = MatchNoContacts
	}

	if len(res.Match.Rows) > 0 {
		res.ByDept = SplitByDept(res.Match.Rows)
	}

	res.Advisory = CheckParcel(county, city, q.ParcelID)
	if res.Advisory != nil {
		logger.Info("parcel prefix disagrees with resolved city",
			"parcel_id", res.Advisory.ParcelID,
			"expected_city", res.Advisory.ExpectedCity,
			"resolved_city", res.Advisory.ResolvedCity,
		)
	}

	res.ResolvedAt = clock.Now()
	return res
}
