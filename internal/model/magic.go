package model

import (
	"fmt"

	"github.com/VladPetriv/currency_converter/pkg/random"
)

const (
	minChange = -0.2
	maxChange = 0.3

	// rarityProtectionLevel is the rarity above which a depreciation is redrawn with half the amplitude.
	rarityProtectionLevel = 5

	evenPowerFeeModifier = 0.1
	oddPowerFeeModifier  = 1.5

	eligibilityRolls     = 10
	eligibilityDieSides  = 10
	eligibilityThreshold = 50
)

// MagicCurrency represents a magic currency with random rate changes and unpredictable eligibility.
type MagicCurrency struct {
	currency
	rarityLevel int
	incantation string
	realmOrigin string
	random      random.Source
}

var _ Currency = (*MagicCurrency)(nil)

// MagicOptions represents input structure for NewMagicCurrency.
type MagicOptions struct {
	Code        string
	Symbol      string
	Rate        float64
	TaxRate     float64
	RarityLevel int
	Incantation string
	RealmOrigin string
	// Random is shared between all magic currencies of the process.
	Random random.Source
}

// NewMagicCurrency returns new instance of magic currency.
func NewMagicCurrency(opts MagicOptions) *MagicCurrency {
	return &MagicCurrency{
		currency: currency{
			code:    opts.Code,
			symbol:  opts.Symbol,
			family:  FamilyMagic,
			rate:    opts.Rate,
			taxRate: opts.TaxRate,
		},
		rarityLevel: opts.RarityLevel,
		incantation: opts.Incantation,
		realmOrigin: opts.RealmOrigin,
		random:      opts.Random,
	}
}

// GetRarityLevel returns the rarity level.
func (m *MagicCurrency) GetRarityLevel() int {
	return m.rarityLevel
}

// GetIncantation returns the incantation.
func (m *MagicCurrency) GetIncantation() string {
	return m.incantation
}

// GetRealmOrigin returns the home country of the currency.
func (m *MagicCurrency) GetRealmOrigin() string {
	return m.realmOrigin
}

func (m *MagicCurrency) Fluctuate() {
	changeFactor := 1 + m.random.Float64(minChange, maxChange)
	if m.rarityLevel > rarityProtectionLevel && changeFactor < 1 {
		changeFactor = 1 + m.random.Float64(minChange, maxChange)/2
	}

	m.rate *= changeFactor
}

// power returns the sum of the incantation character codes.
func (m *MagicCurrency) power() int {
	var power int
	for _, char := range m.incantation {
		power += int(char)
	}

	return power
}

func (m *MagicCurrency) ApplyTaxOrFee(amount float64) float64 {
	modifier := oddPowerFeeModifier
	if m.power()%2 == 0 {
		modifier = evenPowerFeeModifier
	}

	return amount * m.taxRate * modifier
}

func (m *MagicCurrency) IsStable() bool {
	return false
}

// CanBeUsedIn is always true for the realm of origin. In other countries it rolls ten d10
// and succeeds when the sum exceeds fifty.
func (m *MagicCurrency) CanBeUsedIn(country string) bool {
	if country == m.realmOrigin {
		return true
	}

	var sum int
	for range eligibilityRolls {
		sum += m.random.IntN(1, eligibilityDieSides)
	}

	return sum > eligibilityThreshold
}

func (m *MagicCurrency) MakeReport(amount float64, country string) string {
	return report{
		currency:     m,
		feeLabel:     "Fee",
		amount:       amount,
		country:      country,
		stableSuffix: " (of course it isn't)",
		familyLines: []string{
			fmt.Sprintf("Rarity level: %d", m.rarityLevel),
			fmt.Sprintf("Magic incantation: \033[3m%s\033[0m", m.incantation),
			fmt.Sprintf("Realm of origin: %s", m.realmOrigin),
		},
	}.String()
}
