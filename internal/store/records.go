package store

// cryptoRecord represents a validated row of the crypto rates file.
type cryptoRecord struct {
	Code             string   `validate:"required"`
	Symbol           string   `validate:"required"`
	Rate             float64  `validate:"gt=0"`
	TaxRate          float64  `validate:"gte=0"`
	Volatility       float64  `validate:"gt=0"`
	AllowedCountries []string `validate:"dive,required"`
}

// fiatRecord represents a validated row of the fiat rates file.
type fiatRecord struct {
	Code             string   `validate:"required"`
	Symbol           string   `validate:"required"`
	Rate             float64  `validate:"gt=0"`
	TaxRate          float64  `validate:"gte=0"`
	InflationRate    float64  `validate:"gt=-1"`
	AllowedCountries []string `validate:"dive,required"`
}

// magicRecord represents a validated row of the magic rates file.
type magicRecord struct {
	Code        string  `validate:"required"`
	Symbol      string  `validate:"required"`
	Rate        float64 `validate:"gt=0"`
	TaxRate     float64 `validate:"gte=0"`
	RarityLevel int     `validate:"gte=1"`
	Incantation string
	RealmOrigin string `validate:"required"`
}
