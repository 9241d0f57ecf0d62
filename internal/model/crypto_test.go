package model_test

import (
	"testing"

	"github.com/VladPetriv/currency_converter/internal/model"
	"github.com/stretchr/testify/assert"
)

func newBTC(volatility float64) *model.CryptoCurrency {
	return model.NewCryptoCurrency(model.CryptoOptions{
		Code:             "BTC",
		Symbol:           "₿",
		Rate:             105767,
		TaxRate:          0.02,
		Volatility:       volatility,
		AllowedCountries: []string{"United States", "Japan"},
	})
}

func TestCryptoCurrency_Getters(t *testing.T) {
	t.Parallel()

	btc := newBTC(1.35)

	assert.Equal(t, "BTC", btc.GetCode())
	assert.Equal(t, "₿", btc.GetSymbol())
	assert.Equal(t, model.FamilyCrypto, btc.GetFamily())
	assert.InDelta(t, 105767, btc.GetRate(), 1e-9)
	assert.InDelta(t, 0.02, btc.GetTaxRate(), 1e-9)
	assert.InDelta(t, 1.35, btc.GetVolatility(), 1e-9)
	assert.Equal(t, []string{"United States", "Japan"}, btc.GetAllowedCountries())
}

func TestCryptoCurrency_Fluctuate(t *testing.T) {
	t.Parallel()

	btc := model.NewCryptoCurrency(model.CryptoOptions{Code: "BTC", Rate: 100, Volatility: 1.35})

	btc.Fluctuate()
	assert.InDelta(t, 135, btc.GetRate(), 1e-9)

	btc.Fluctuate()
	assert.InDelta(t, 182.25, btc.GetRate(), 1e-9)
}

func TestCryptoCurrency_ApplyTaxOrFee(t *testing.T) {
	t.Parallel()

	btc := newBTC(1.35)

	assert.InDelta(t, 2.0, btc.ApplyTaxOrFee(100), 1e-12)
	assert.InDelta(t, 0.0, btc.ApplyTaxOrFee(0), 1e-12)
}

func TestCryptoCurrency_IsStable(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc       string
		volatility float64
		expected   bool
	}{
		{
			desc:       "volatility below threshold",
			volatility: 1.005,
			expected:   true,
		},
		{
			desc:       "volatility equal to threshold",
			volatility: 1.01,
			expected:   false,
		},
		{
			desc:       "high volatility",
			volatility: 1.35,
			expected:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, newBTC(tc.volatility).IsStable())
		})
	}
}

func TestCryptoCurrency_CanBeUsedIn(t *testing.T) {
	t.Parallel()

	btc := newBTC(1.35)

	assert.True(t, btc.CanBeUsedIn("Japan"))
	assert.True(t, btc.CanBeUsedIn("United States"))
	assert.False(t, btc.CanBeUsedIn("France"))
	assert.False(t, btc.CanBeUsedIn("japan"))
}

func TestCryptoCurrency_MakeReport(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc       string
		volatility float64
		country    string
		expected   string
	}{
		{
			desc:       "high volatility in allowed country",
			volatility: 1.35,
			country:    "Japan",
			expected: "-- Currency info --\n" +
				"BTC ₿ (Crypto)\n" +
				"Current rate to USD: 105767.000\n" +
				"Tax on amount: 2.000 BTC\n" +
				"Volatility: High\n" +
				"Stable: No\n" +
				"Allowed in Japan: Yes\n",
		},
		{
			desc:       "medium volatility in not allowed country",
			volatility: 1.02,
			country:    "France",
			expected: "-- Currency info --\n" +
				"BTC ₿ (Crypto)\n" +
				"Current rate to USD: 105767.000\n" +
				"Tax on amount: 2.000 BTC\n" +
				"Volatility: Medium\n" +
				"Stable: No\n" +
				"Allowed in France: No\n",
		},
		{
			desc:       "low volatility",
			volatility: 1.001,
			country:    "United States",
			expected: "-- Currency info --\n" +
				"BTC ₿ (Crypto)\n" +
				"Current rate to USD: 105767.000\n" +
				"Tax on amount: 2.000 BTC\n" +
				"Volatility: Low\n" +
				"Stable: Yes\n" +
				"Allowed in United States: Yes\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			btc := newBTC(tc.volatility)

			assert.Equal(t, tc.expected, btc.MakeReport(100, tc.country))
			assert.InDelta(t, 105767, btc.GetRate(), 1e-9)
		})
	}
}
