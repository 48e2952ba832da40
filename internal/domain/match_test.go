package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(county, city string, dept DeptType, name string) ContactRow {
	return ContactRow{County: county, City: city, DeptType: dept, DeptName: name}.WithKeys()
}

func testDirectory() []ContactRow {
	return []ContactRow{
		row("Lee", "Fort Myers", DeptBuilding, "Fort Myers Building"),
		row("Lee", "Cape Coral", DeptBuilding, "Cape Coral Building"),
		row("Lee", "Unincorporated", DeptPlanning, "Lee Planning"),
		row("Lee", "*", DeptFire, "Lee Fire Rescue"),
		row("Collier", "Naples", DeptBuilding, "Naples Building"),
		row("Collier", "*", DeptFire, "Collier Fire"),
	}
}

func TestMatch_ExactCityPlusWildcard(t *testing.T) {
	result := Match(testDirectory(), "Lee County", "Fort Myers")

	require.Len(t, result.Rows, 2)
	assert.True(t, result.ExactCityMatched)
	assert.Equal(t, TierExact, result.Tier)
	assert.Equal(t, "Fort Myers Building", result.Rows[0].DeptName)
	assert.Equal(t, "Lee Fire Rescue", result.Rows[1].DeptName)
}

func TestMatch_ExactSuppressesUnincorporated(t *testing.T) {
	result := Match(testDirectory(), "Lee", "Fort Myers")

	for _, r := range result.Rows {
		assert.NotEqual(t, "Lee Planning", r.DeptName)
	}
}

func TestMatch_UnincorporatedFallback(t *testing.T) {
	result := Match(testDirectory(), "Lee County, FL", "Lehigh Acres")

	require.Len(t, result.Rows, 2)
	assert.False(t, result.ExactCityMatched)
	assert.Equal(t, TierUnincorporated, result.Tier)
	assert.Equal(t, "Lee Planning", result.Rows[0].DeptName)
	assert.Equal(t, "Lee Fire Rescue", result.Rows[1].DeptName)
}

func TestMatch_WildcardOnly(t *testing.T) {
	result := Match(testDirectory(), "Collier", "Marco Island")

	require.Len(t, result.Rows, 1)
	assert.False(t, result.ExactCityMatched)
	assert.Equal(t, TierWildcard, result.Tier)
	assert.Equal(t, "Collier Fire", result.Rows[0].DeptName)
}

func TestMatch_NoRows(t *testing.T) {
	directory := []ContactRow{row("Lee", "Fort Myers", DeptBuilding, "Fort Myers Building")}
	result := Match(directory, "Lee", "Sanibel")

	assert.Empty(t, result.Rows)
	assert.False(t, result.ExactCityMatched)
	assert.Equal(t, TierNone, result.Tier)
}

func TestMatch_EmptyCountyYieldsNothing(t *testing.T) {
	result := Match(testDirectory(), "", "Fort Myers")

	assert.Empty(t, result.Rows)
	assert.Equal(t, TierNoCounty, result.Tier)
}

func TestMatch_NeverCrossesCounty(t *testing.T) {
	result := Match(testDirectory(), "Lee", "Naples")

	for _, r := range result.Rows {
		assert.Equal(t, "lee", r.CountyKey)
	}
	// Naples is a Collier city; Lee has no such exact row, so the
	// unincorporated fallback applies.
	assert.Equal(t, TierUnincorporated, result.Tier)
}

func TestMatch_NormalizedSpellingsAgree(t *testing.T) {
	directory := []ContactRow{row("St. Johns", "Saint Augustine", DeptBuilding, "SA Building")}

	result := Match(directory, "Saint Johns County, FL", "St. Augustine")
	require.Len(t, result.Rows, 1)
	assert.True(t, result.ExactCityMatched)
}

func TestMatch_DuplicateRowsRemovedByFullEquality(t *testing.T) {
	dup := row("Lee", "Fort Myers", DeptBuilding, "Fort Myers Building")
	distinct := row("Lee", "Fort Myers", DeptBuilding, "Fort Myers Building Annex")
	directory := []ContactRow{dup, dup, distinct}

	result := Match(directory, "Lee", "Fort Myers")

	// Identical rows collapse; a distinct contact at the same
	// city/department survives.
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Fort Myers Building", result.Rows[0].DeptName)
	assert.Equal(t, "Fort Myers Building Annex", result.Rows[1].DeptName)
}

func TestMatch_EmptyQueryCityFallsThroughTiers(t *testing.T) {
	result := Match(testDirectory(), "Lee", "")

	assert.Equal(t, TierUnincorporated, result.Tier)
	assert.False(t, result.ExactCityMatched)
}

func TestSplitByDept(t *testing.T) {
	result := Match(testDirectory(), "Lee", "Fort Myers")
	byDept := SplitByDept(result.Rows)

	require.Len(t, byDept[DeptBuilding], 1)
	require.Len(t, byDept[DeptFire], 1)
	assert.Empty(t, byDept[DeptPlanning])
}
