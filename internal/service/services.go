package service

import (
	"github.com/VladPetriv/currency_converter/internal/model"
	"github.com/VladPetriv/currency_converter/pkg/errs"
)

// ErrCurrencyNotFound happens when there is no currency with the requested code.
var ErrCurrencyNotFound = errs.New("currency not found")

// ConverterService provides functionality for storing currencies and converting amounts between them.
type ConverterService interface {
	// AddCurrency stores the currency by its normalized code. A currency with the same code is overwritten.
	AddCurrency(currency model.Currency)
	// GetCurrency returns the currency by code.
	GetCurrency(code string) (model.Currency, error)
	// Convert converts the amount of one currency into another through the base currency.
	Convert(fromCode, toCode string, amount float64) (float64, error)
	// GetReport returns the currency report for the amount and country.
	GetReport(code string, amount float64, country string) (string, error)
	// FluctuateAll changes rates of all currencies.
	FluctuateAll()
	// ListAllCurrencies returns all currencies sorted by family and code.
	ListAllCurrencies() []model.Currency
}
