package model

import (
	"fmt"

	"github.com/VladPetriv/currency_converter/pkg/money"
)

const stableInflationThreshold = 0.03

// feeBracket represents a discount applied to the tax rate for amounts below the limit.
type feeBracket struct {
	limit    float64
	discount float64
}

// feeBrackets must be sorted by limit, amounts above the last limit get lastBracketDiscount.
var feeBrackets = [...]feeBracket{
	{limit: 100, discount: 1},
	{limit: 1000, discount: 0.95},
	{limit: 10000, discount: 0.9},
}

const lastBracketDiscount = 0.8

// FiatCurrency represents a fiat currency which rate drifts by the inflation rate.
type FiatCurrency struct {
	currency
	inflationRate    float64
	allowedCountries []string
}

var _ Currency = (*FiatCurrency)(nil)

// FiatOptions represents input structure for NewFiatCurrency.
type FiatOptions struct {
	Code             string
	Symbol           string
	Rate             float64
	TaxRate          float64
	InflationRate    float64
	AllowedCountries []string
}

// NewFiatCurrency returns new instance of fiat currency.
func NewFiatCurrency(opts FiatOptions) *FiatCurrency {
	return &FiatCurrency{
		currency: currency{
			code:    opts.Code,
			symbol:  opts.Symbol,
			family:  FamilyFiat,
			rate:    opts.Rate,
			taxRate: opts.TaxRate,
		},
		inflationRate:    opts.InflationRate,
		allowedCountries: opts.AllowedCountries,
	}
}

// GetInflationRate returns the inflation rate, negative value means deflation.
func (f *FiatCurrency) GetInflationRate() float64 {
	return f.inflationRate
}

// GetAllowedCountries returns countries the currency can be used in.
func (f *FiatCurrency) GetAllowedCountries() []string {
	return f.allowedCountries
}

func (f *FiatCurrency) Fluctuate() {
	f.rate *= 1 + f.inflationRate
}

func (f *FiatCurrency) ApplyTaxOrFee(amount float64) float64 {
	for _, bracket := range feeBrackets {
		if amount < bracket.limit {
			return amount * (f.taxRate * bracket.discount)
		}
	}

	return amount * (f.taxRate * lastBracketDiscount)
}

func (f *FiatCurrency) IsStable() bool {
	return f.inflationRate < stableInflationThreshold
}

func (f *FiatCurrency) CanBeUsedIn(country string) bool {
	return canBeUsedIn(f.allowedCountries, country)
}

func (f *FiatCurrency) MakeReport(amount float64, country string) string {
	label := "Inflation rate"
	if f.inflationRate < 0 {
		label = "Deflation rate"
	}

	return report{
		currency: f,
		feeLabel: "Fee",
		amount:   amount,
		country:  country,
		familyLines: []string{
			fmt.Sprintf("%s: %s%%", label, money.Format(f.inflationRate*100)),
		},
	}.String()
}
