package model_test

import (
	"testing"

	"github.com/VladPetriv/currency_converter/internal/model"
	"github.com/VladPetriv/currency_converter/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns prepared values in order, consumed values are removed.
type scriptedSource struct {
	floats []float64
	ints   []int
}

var _ random.Source = (*scriptedSource)(nil)

func (s *scriptedSource) Float64(_, _ float64) float64 {
	value := s.floats[0]
	s.floats = s.floats[1:]

	return value
}

func (s *scriptedSource) IntN(_, _ int) int {
	value := s.ints[0]
	s.ints = s.ints[1:]

	return value
}

func repeat(value, count int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = value
	}

	return values
}

func newARSH(rarityLevel int, incantation string, source random.Source) *model.MagicCurrency {
	return model.NewMagicCurrency(model.MagicOptions{
		Code:        "ARSH",
		Symbol:      "✨",
		Rate:        100,
		TaxRate:     0.05,
		RarityLevel: rarityLevel,
		Incantation: incantation,
		RealmOrigin: "Arcadia",
		Random:      source,
	})
}

func TestMagicCurrency_Getters(t *testing.T) {
	t.Parallel()

	arsh := newARSH(7, "Fireball", &scriptedSource{})

	assert.Equal(t, "ARSH", arsh.GetCode())
	assert.Equal(t, "✨", arsh.GetSymbol())
	assert.Equal(t, model.FamilyMagic, arsh.GetFamily())
	assert.InDelta(t, 100.0, arsh.GetRate(), 1e-12)
	assert.InDelta(t, 0.05, arsh.GetTaxRate(), 1e-12)
	assert.Equal(t, 7, arsh.GetRarityLevel())
	assert.Equal(t, "Fireball", arsh.GetIncantation())
	assert.Equal(t, "Arcadia", arsh.GetRealmOrigin())
}

func TestMagicCurrency_Fluctuate(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc           string
		rarityLevel    int
		draws          []float64
		expectedRate   float64
		expectedUnused int
	}{
		{
			desc:           "common currency appreciates",
			rarityLevel:    3,
			draws:          []float64{0.1, 0.2},
			expectedRate:   110,
			expectedUnused: 1,
		},
		{
			desc:           "common currency depreciates",
			rarityLevel:    3,
			draws:          []float64{-0.2, 0.2},
			expectedRate:   80,
			expectedUnused: 1,
		},
		{
			desc:           "rare currency appreciates with the first draw",
			rarityLevel:    7,
			draws:          []float64{0.25, -0.1},
			expectedRate:   125,
			expectedUnused: 1,
		},
		{
			desc:           "rare currency depreciation is redrawn with half amplitude",
			rarityLevel:    7,
			draws:          []float64{-0.2, 0.2},
			expectedRate:   110,
			expectedUnused: 0,
		},
		{
			desc:           "rare currency redraw may still depreciate a little",
			rarityLevel:    6,
			draws:          []float64{-0.1, -0.2},
			expectedRate:   90,
			expectedUnused: 0,
		},
		{
			desc:           "rarity level 5 is not protected",
			rarityLevel:    5,
			draws:          []float64{-0.2, 0.2},
			expectedRate:   80,
			expectedUnused: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			source := &scriptedSource{floats: tc.draws}
			arsh := newARSH(tc.rarityLevel, "Fireball", source)

			arsh.Fluctuate()

			assert.InDelta(t, tc.expectedRate, arsh.GetRate(), 1e-9)
			assert.Len(t, source.floats, tc.expectedUnused)
		})
	}
}

func TestMagicCurrency_FluctuateKeepsRatePositive(t *testing.T) {
	t.Parallel()

	arsh := newARSH(1, "Fireball", random.New(1))

	for range 1000 {
		arsh.Fluctuate()
		require.Greater(t, arsh.GetRate(), 0.0)
	}
}

func TestMagicCurrency_ApplyTaxOrFee(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc        string
		incantation string
		expected    float64
	}{
		{
			desc:           "odd incantation power increases the fee",
			incantation: "Fireball",
			expected:    100 * 0.05 * 1.5,
		},
		{
			desc:           "even incantation power decreases the fee",
			incantation: "Abba",
			expected:    100 * 0.05 * 0.1,
		},
		{
			desc:           "empty incantation has even power",
			incantation: "",
			expected:    100 * 0.05 * 0.1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			arsh := newARSH(7, tc.incantation, &scriptedSource{})

			assert.InDelta(t, tc.expected, arsh.ApplyTaxOrFee(100), 1e-9)
		})
	}
}

func TestMagicCurrency_IsStable(t *testing.T) {
	t.Parallel()

	for _, rarityLevel := range []int{1, 5, 10} {
		assert.False(t, newARSH(rarityLevel, "Fireball", &scriptedSource{}).IsStable())
	}
}

func TestMagicCurrency_CanBeUsedIn(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		country  string
		rolls    []int
		expected bool
	}{
		{
			desc:           "realm of origin is always allowed without rolling",
			country:  "Arcadia",
			rolls:    nil,
			expected: true,
		},
		{
			desc:           "sum above fifty allows usage",
			country:  "France",
			rolls:    append(repeat(5, 9), 6),
			expected: true,
		},
		{
			desc:           "sum of exactly fifty forbids usage",
			country:  "France",
			rolls:    repeat(5, 10),
			expected: false,
		},
		{
			desc:           "low rolls forbid usage",
			country:  "France",
			rolls:    repeat(1, 10),
			expected: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			source := &scriptedSource{ints: tc.rolls}
			arsh := newARSH(7, "Fireball", source)

			assert.Equal(t, tc.expected, arsh.CanBeUsedIn(tc.country))
			assert.Empty(t, source.ints)
		})
	}
}

func TestMagicCurrency_MakeReport(t *testing.T) {
	t.Parallel()

	arsh := newARSH(7, "Fireball", &scriptedSource{})

	expected := "-- Currency info --\n" +
		"ARSH ✨ (Magic)\n" +
		"Current rate to USD: 100.000\n" +
		"Fee on amount: 7.500 ARSH\n" +
		"Rarity level: 7\n" +
		"Magic incantation: \033[3mFireball\033[0m\n" +
		"Realm of origin: Arcadia\n" +
		"Stable: No (of course it isn't)\n" +
		"Allowed in Arcadia: Yes\n"

	assert.Equal(t, expected, arsh.MakeReport(100, "Arcadia"))
	assert.InDelta(t, 100.0, arsh.GetRate(), 1e-12)
}
