package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	result GeocodeResult
	err    error
	calls  int
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (GeocodeResult, error) {
	s.calls++
	return s.result, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve_GeocodeFillsJurisdiction(t *testing.T) {
	frozen := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	geo := &stubGeocoder{result: GeocodeResult{City: "Fort Myers", County: "Lee County", State: "FL"}}
	q := Query{Address: "2120 Main St, Fort Myers, FL"}

	res := Resolve(context.Background(), q, testDirectory(), geo, discardLogger())

	assert.Equal(t, 1, geo.calls)
	assert.Equal(t, GeocodeOK, res.GeocodeStatus)
	assert.Equal(t, "Lee County", res.County)
	assert.Equal(t, "Fort Myers", res.City)
	assert.Equal(t, MatchFound, res.MatchStatus)
	assert.True(t, res.Match.ExactCityMatched)
	require.Len(t, res.Match.Rows, 2)
	assert.Equal(t, frozen, res.ResolvedAt)
}

func TestResolve_OverridesSkipGeocoder(t *testing.T) {
	geo := &stubGeocoder{result: GeocodeResult{City: "Wrong", County: "Wrong"}}
	q := Query{Address: "somewhere", CountyOverride: "Lee", CityOverride: "Cape Coral"}

	res := Resolve(context.Background(), q, testDirectory(), geo, discardLogger())

	assert.Zero(t, geo.calls)
	assert.Equal(t, GeocodeOverridden, res.GeocodeStatus)
	assert.Equal(t, "Cape Coral", res.City)
	assert.True(t, res.Match.ExactCityMatched)
}

func TestResolve_PartialOverrideBeatsGeocoderField(t *testing.T) {
	geo := &stubGeocoder{result: GeocodeResult{City: "Fort Myers", County: "Lee"}}
	q := Query{Address: "2120 Main St", CityOverride: "Cape Coral"}

	res := Resolve(context.Background(), q, testDirectory(), geo, discardLogger())

	assert.Equal(t, 1, geo.calls)
	assert.Equal(t, "Lee", res.County)
	assert.Equal(t, "Cape Coral", res.City)
}

func TestResolve_GeocodeNoMatchRecoversViaOverride(t *testing.T) {
	geo := &stubGeocoder{err: ErrNoMatch}
	q := Query{Address: "nonsense", CountyOverride: "Collier"}

	res := Resolve(context.Background(), q, testDirectory(), geo, discardLogger())

	assert.Equal(t, GeocodeNoMatch, res.GeocodeStatus)
	assert.Equal(t, "Collier", res.County)
	assert.Equal(t, MatchFound, res.MatchStatus)
	assert.Equal(t, TierWildcard, res.Match.Tier)
}

func TestResolve_GeocodeErrorWithoutOverrides(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("connection refused")}
	q := Query{Address: "2120 Main St"}

	res := Resolve(context.Background(), q, testDirectory(), geo, discardLogger())

	assert.Equal(t, GeocodeError, res.GeocodeStatus)
	assert.Equal(t, MatchNoCounty, res.MatchStatus)
	assert.Empty(t, res.Match.Rows)
}

func TestResolve_NilGeocoder(t *testing.T) {
	q := Query{Address: "2120 Main St", CountyOverride: "Lee", CityOverride: "Fort Myers"}

	res := Resolve(context.Background(), q, testDirectory(), nil, discardLogger())

	assert.Equal(t, GeocodeOverridden, res.GeocodeStatus)
	assert.Equal(t, MatchFound, res.MatchStatus)
}

func TestResolve_NoContactsIsDistinctState(t *testing.T) {
	q := Query{CountyOverride: "Sarasota", CityOverride: "Venice"}

	res := Resolve(context.Background(), q, testDirectory(), nil, discardLogger())

	assert.Equal(t, MatchNoContacts, res.MatchStatus)
	assert.Empty(t, res.Match.Rows)
}

func TestResolve_AdvisoryNeverAltersMatch(t *testing.T) {
	directory := []ContactRow{
		row("Miami-Dade", "Hialeah", DeptBuilding, "Hialeah Building"),
		row("Miami-Dade", "*", DeptFire, "MD Fire"),
	}
	q := Query{CountyOverride: "Miami-Dade", CityOverride: "Hialeah", ParcelID: "01-4138-005-0210"}

	res := Resolve(context.Background(), q, directory, nil, discardLogger())

	require.NotNil(t, res.Advisory)
	assert.Equal(t, "Miami", res.Advisory.ExpectedCity)

	bare := Resolve(context.Background(), Query{CountyOverride: "Miami-Dade", CityOverride: "Hialeah"}, directory, nil, discardLogger())
	assert.Nil(t, bare.Advisory)
	assert.Equal(t, bare.Match, res.Match)
}

func TestResolve_GroupsRowsByDepartment(t *testing.T) {
	q := Query{CountyOverride: "Lee", CityOverride: "Fort Myers"}

	res := Resolve(context.Background(), q, testDirectory(), nil, discardLogger())

	require.Len(t, res.ByDept[DeptBuilding], 1)
	require.Len(t, res.ByDept[DeptFire], 1)
}
