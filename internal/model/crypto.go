package model

import "fmt"

const (
	lowVolatilityThreshold    = 1.01
	mediumVolatilityThreshold = 1.05
)

// CryptoCurrency represents a crypto currency which rate drifts by a multiplicative volatility factor.
type CryptoCurrency struct {
	currency
	volatility       float64
	allowedCountries []string
}

var _ Currency = (*CryptoCurrency)(nil)

// CryptoOptions represents input structure for NewCryptoCurrency.
type CryptoOptions struct {
	Code             string
	Symbol           string
	Rate             float64
	TaxRate          float64
	Volatility       float64
	AllowedCountries []string
}

// NewCryptoCurrency returns new instance of crypto currency.
func NewCryptoCurrency(opts CryptoOptions) *CryptoCurrency {
	return &CryptoCurrency{
		currency: currency{
			code:    opts.Code,
			symbol:  opts.Symbol,
			family:  FamilyCrypto,
			rate:    opts.Rate,
			taxRate: opts.TaxRate,
		},
		volatility:       opts.Volatility,
		allowedCountries: opts.AllowedCountries,
	}
}

// GetVolatility returns the volatility factor.
func (c *CryptoCurrency) GetVolatility() float64 {
	return c.volatility
}

// GetAllowedCountries returns countries the currency can be used in.
func (c *CryptoCurrency) GetAllowedCountries() []string {
	return c.allowedCountries
}

func (c *CryptoCurrency) Fluctuate() {
	c.rate *= c.volatility
}

func (c *CryptoCurrency) ApplyTaxOrFee(amount float64) float64 {
	return amount * c.taxRate
}

func (c *CryptoCurrency) IsStable() bool {
	return c.volatility < lowVolatilityThreshold
}

func (c *CryptoCurrency) CanBeUsedIn(country string) bool {
	return canBeUsedIn(c.allowedCountries, country)
}

func (c *CryptoCurrency) volatilityLevel() string {
	switch {
	case c.volatility < lowVolatilityThreshold:
		return "Low"
	case c.volatility < mediumVolatilityThreshold:
		return "Medium"
	default:
		return "High"
	}
}

func (c *CryptoCurrency) MakeReport(amount float64, country string) string {
	return report{
		currency: c,
		feeLabel: "Tax",
		amount:   amount,
		country:  country,
		familyLines: []string{
			fmt.Sprintf("Volatility: %s", c.volatilityLevel()),
		},
	}.String()
}
