package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/VladPetriv/currency_converter/pkg/money"
)

// BaseCurrency is the currency all rates are denominated in.
const BaseCurrency = "USD"

// Family represents a currency family which determines fluctuation, fee and eligibility rules.
type Family string

const (
	// FamilyCrypto represents crypto currencies.
	FamilyCrypto Family = "Crypto"
	// FamilyFiat represents fiat currencies.
	FamilyFiat Family = "Fiat"
	// FamilyMagic represents magic currencies.
	FamilyMagic Family = "Magic"
)

// Currency represents a currency with family specific behavior.
type Currency interface {
	GetCode() string
	GetSymbol() string
	GetFamily() Family
	// GetRate returns units of base currency per 1 unit of the currency.
	GetRate() float64
	GetTaxRate() float64

	// Fluctuate changes the rate in place according to the family rule.
	Fluctuate()
	// ApplyTaxOrFee returns the tax or fee charged on the amount.
	ApplyTaxOrFee(amount float64) float64
	IsStable() bool
	CanBeUsedIn(country string) bool
	// MakeReport renders a human-readable description of the currency for the amount and country.
	MakeReport(amount float64, country string) string
}

type currency struct {
	code    string
	symbol  string
	family  Family
	rate    float64
	taxRate float64
}

func (c *currency) GetCode() string {
	return c.code
}

func (c *currency) GetSymbol() string {
	return c.symbol
}

func (c *currency) GetFamily() Family {
	return c.family
}

func (c *currency) GetRate() float64 {
	return c.rate
}

func (c *currency) GetTaxRate() float64 {
	return c.taxRate
}

// GetName returns the currency in "CODE SYMBOL (Family)" format.
func GetName(c Currency) string {
	return fmt.Sprintf("%s %s (%s)", c.GetCode(), c.GetSymbol(), c.GetFamily())
}

func canBeUsedIn(allowedCountries []string, country string) bool {
	return slices.Contains(allowedCountries, country)
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}

// report collects the lines shared by all currency reports around the family specific part.
type report struct {
	currency Currency
	feeLabel string
	amount   float64
	country  string
	// stableSuffix is appended to the stability flag.
	stableSuffix string
	familyLines  []string
}

func (r report) String() string {
	var sb strings.Builder

	sb.WriteString("-- Currency info --\n")
	sb.WriteString(GetName(r.currency) + "\n")
	fmt.Fprintf(&sb, "Current rate to %s: %s\n", BaseCurrency, money.Format(r.currency.GetRate()))
	fmt.Fprintf(&sb, "%s on amount: %s %s\n", r.feeLabel, money.Format(r.currency.ApplyTaxOrFee(r.amount)), r.currency.GetCode())

	for _, line := range r.familyLines {
		sb.WriteString(line + "\n")
	}

	fmt.Fprintf(&sb, "Stable: %s%s\n", yesNo(r.currency.IsStable()), r.stableSuffix)
	fmt.Fprintf(&sb, "Allowed in %s: %s\n", r.country, yesNo(r.currency.CanBeUsedIn(r.country)))

	return sb.String()
}
