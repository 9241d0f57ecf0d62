package service

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/VladPetriv/currency_converter/internal/model"
	"github.com/VladPetriv/currency_converter/pkg/logger"
)

type converterService struct {
	logger     *logger.Logger
	currencies map[string]model.Currency
}

var _ ConverterService = (*converterService)(nil)

// NewConverter returns new instance of converter service.
func NewConverter(logger *logger.Logger) *converterService {
	return &converterService{
		logger:     logger,
		currencies: make(map[string]model.Currency),
	}
}

func (c *converterService) AddCurrency(currency model.Currency) {
	logger := c.logger.With().Str("name", "converterService.AddCurrency").Logger()

	code := model.NormalizeCode(currency.GetCode())
	if _, ok := c.currencies[code]; ok {
		logger.Warn().Str("code", code).Msg("currency already exists, overwriting it")
	}

	c.currencies[code] = currency
	logger.Debug().Str("code", code).Str("family", string(currency.GetFamily())).Msg("currency added")
}

func (c *converterService) GetCurrency(code string) (model.Currency, error) {
	logger := c.logger.With().Str("name", "converterService.GetCurrency").Logger()
	logger.Debug().Str("code", code).Msg("got args")

	currency, err := c.get(code)
	if err != nil {
		logger.Info().Msg(err.Error())
		return nil, err
	}

	return currency, nil
}

func (c *converterService) get(code string) (model.Currency, error) {
	currency, ok := c.currencies[model.NormalizeCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCurrencyNotFound, code)
	}

	return currency, nil
}

func (c *converterService) Convert(fromCode, toCode string, amount float64) (float64, error) {
	logger := c.logger.With().Str("name", "converterService.Convert").Logger()
	logger.Debug().
		Str("fromCode", fromCode).
		Str("toCode", toCode).
		Float64("amount", amount).
		Msg("got args")

	from, err := c.get(fromCode)
	if err != nil {
		logger.Info().Msg(err.Error())
		return 0, err
	}

	to, err := c.get(toCode)
	if err != nil {
		logger.Info().Msg(err.Error())
		return 0, err
	}

	amountInBase := amount * from.GetRate()
	converted := amountInBase / to.GetRate()

	logger.Debug().
		Float64("amountInBase", amountInBase).
		Float64("converted", converted).
		Msg("amount converted")
	return converted, nil
}

func (c *converterService) GetReport(code string, amount float64, country string) (string, error) {
	logger := c.logger.With().Str("name", "converterService.GetReport").Logger()
	logger.Debug().
		Str("code", code).
		Float64("amount", amount).
		Str("country", country).
		Msg("got args")

	currency, err := c.get(code)
	if err != nil {
		logger.Info().Msg(err.Error())
		return "", err
	}

	return currency.MakeReport(amount, model.NormalizeCountry(country)), nil
}

func (c *converterService) FluctuateAll() {
	logger := c.logger.With().Str("name", "converterService.FluctuateAll").Logger()

	for code, currency := range c.currencies {
		previousRate := currency.GetRate()
		currency.Fluctuate()

		logger.Debug().
			Str("code", code).
			Float64("previousRate", previousRate).
			Float64("rate", currency.GetRate()).
			Msg("rate fluctuated")
	}

	logger.Info().Int("count", len(c.currencies)).Msg("all rates fluctuated")
}

func (c *converterService) ListAllCurrencies() []model.Currency {
	currencies := slices.Collect(maps.Values(c.currencies))

	slices.SortFunc(currencies, func(a, b model.Currency) int {
		return cmp.Or(
			cmp.Compare(a.GetFamily(), b.GetFamily()),
			cmp.Compare(a.GetCode(), b.GetCode()),
		)
	})

	return currencies
}
