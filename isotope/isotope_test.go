package isotope

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostCommonDummyAtom(t *testing.T) {
	// "X" is answered before the table is consulted, even on a nil table.
	for _, tab := range []Table{nil, {"H": {WithAbundance(1, 1.007825, 1)}}} {
		mass, ok, err := MostCommon("X", tab)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, mass)
	}
}

func TestMostCommonByAbundance(t *testing.T) {
	tab := Table{
		"H": {WithAbundance(1, 1.007825, 0.999885), WithAbundance(2, 2.014102, 0.000115)},
		"C": {WithAbundance(12, 12.0, 0.9893), WithAbundance(13, 13.003355, 0.0107)},
		"B": {WithAbundance(10, 10.012937, 0.199), WithAbundance(11, 11.009305, 0.801)},
	}
	tests := []struct {
		symbol string
		want   int
	}{
		{"H", 1},
		{"C", 12},
		{"B", 11}, // maximum is not the first record
	}
	for _, tt := range tests {
		mass, ok, err := MostCommon(tt.symbol, tab)
		require.NoError(t, err, tt.symbol)
		assert.True(t, ok, tt.symbol)
		assert.Equal(t, tt.want, mass, tt.symbol)
	}
}

func TestMostCommonNoAbundanceData(t *testing.T) {
	// Without abundance data the first listed isotope is canonical.
	tab := Table{"Tc": {MassOnly(98, 97.907212), MassOnly(99, 98.906251)}}
	mass, ok, err := MostCommon("Tc", tab)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 98, mass)
}

func TestMostCommonSingleRecord(t *testing.T) {
	for name, tab := range map[string]Table{
		"with abundance": {"F": {WithAbundance(19, 18.998403, 1)}},
		"mass only":      {"F": {MassOnly(19, 18.998403)}},
	} {
		mass, ok, err := MostCommon("F", tab)
		require.NoError(t, err, name)
		assert.True(t, ok, name)
		assert.Equal(t, 19, mass, name)
	}
}

func TestMostCommonTieKeepsFirst(t *testing.T) {
	tab := Table{"Q": {
		WithAbundance(10, 10.0, 0.3),
		WithAbundance(11, 11.0, 0.35),
		WithAbundance(12, 12.0, 0.35), // same maximum, listed later
	}}
	mass, ok, err := MostCommon("Q", tab)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 11, mass)
}

func TestMostCommonUnknownSymbol(t *testing.T) {
	_, ok, err := MostCommon("Zz", Table{"H": {WithAbundance(1, 1.007825, 1)}})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestMostCommonEmptyRecords(t *testing.T) {
	_, ok, err := MostCommon("H", Table{"H": {}})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoIsotopes)
}

// Randomized synthetic tables: the result must always be the first record
// holding the maximum abundance, and repeated calls must agree.
func TestMostCommonRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42)) // fixed seed, reproducible
	for trial := 0; trial < 500; trial++ {
		n := 1 + r.Intn(12)
		recs := make([]Record, n)
		for i := range recs {
			ab := r.Float64()
			if r.Intn(4) == 0 && i > 0 {
				ab = recs[r.Intn(i)].Abundance // force occasional exact ties
			}
			recs[i] = WithAbundance(i+1, float64(i+1), ab)
		}
		want := recs[0].MassNumber
		max := recs[0].Abundance
		for _, rec := range recs[1:] {
			if rec.Abundance > max {
				max = rec.Abundance
				want = rec.MassNumber
			}
		}
		tab := Table{"Q": recs}
		mass, ok, err := MostCommon("Q", tab)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want, mass, "trial %d", trial)

		again, _, err := MostCommon("Q", tab)
		require.NoError(t, err)
		require.Equal(t, mass, again, "trial %d not idempotent", trial)
	}
}
