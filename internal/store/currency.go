package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/VladPetriv/currency_converter/internal/model"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"github.com/VladPetriv/currency_converter/pkg/random"
	"github.com/go-playground/validator/v10"
)

const (
	cryptoFieldsCount = 6
	fiatFieldsCount   = 6
	magicFieldsCount  = 7
)

type currencyStore struct {
	logger   *logger.Logger
	validate *validator.Validate
	random   random.Source
}

// NewCurrency creates a new currency store which loads currencies from CSV files.
// The random source is shared by all loaded magic currencies.
func NewCurrency(logger *logger.Logger, source random.Source) *currencyStore {
	return &currencyStore{
		logger:   logger,
		validate: validator.New(),
		random:   source,
	}
}

// LoadCrypto loads crypto currencies from the CSV file.
// Columns: code, symbol, rate, taxRate, volatility, allowedCountries.
func (c *currencyStore) LoadCrypto(ctx context.Context, path string) ([]*model.CryptoCurrency, error) {
	return loadRecords(ctx, c, path, cryptoFieldsCount, func(fields []string) (*model.CryptoCurrency, error) {
		var (
			record cryptoRecord
			err    error
		)
		record.Code, record.Symbol = fields[0], fields[1]

		record.Rate, err = parseFloat("rate", fields[2])
		if err != nil {
			return nil, err
		}
		record.TaxRate, err = parseFloat("tax rate", fields[3])
		if err != nil {
			return nil, err
		}
		record.Volatility, err = parseFloat("volatility", fields[4])
		if err != nil {
			return nil, err
		}
		record.AllowedCountries = splitCountries(fields[5])

		err = c.validate.Struct(record)
		if err != nil {
			return nil, fmt.Errorf("validate crypto record: %w", err)
		}

		return model.NewCryptoCurrency(model.CryptoOptions(record)), nil
	})
}

// LoadFiat loads fiat currencies from the CSV file.
// Columns: code, symbol, rate, taxRate, inflationRate, allowedCountries.
func (c *currencyStore) LoadFiat(ctx context.Context, path string) ([]*model.FiatCurrency, error) {
	return loadRecords(ctx, c, path, fiatFieldsCount, func(fields []string) (*model.FiatCurrency, error) {
		var (
			record fiatRecord
			err    error
		)
		record.Code, record.Symbol = fields[0], fields[1]

		record.Rate, err = parseFloat("rate", fields[2])
		if err != nil {
			return nil, err
		}
		record.TaxRate, err = parseFloat("tax rate", fields[3])
		if err != nil {
			return nil, err
		}
		record.InflationRate, err = parseFloat("inflation rate", fields[4])
		if err != nil {
			return nil, err
		}
		record.AllowedCountries = splitCountries(fields[5])

		err = c.validate.Struct(record)
		if err != nil {
			return nil, fmt.Errorf("validate fiat record: %w", err)
		}

		return model.NewFiatCurrency(model.FiatOptions(record)), nil
	})
}

// LoadMagic loads magic currencies from the CSV file.
// Columns: code, symbol, rate, taxRate, rarityLevel, incantation, realmOrigin.
func (c *currencyStore) LoadMagic(ctx context.Context, path string) ([]*model.MagicCurrency, error) {
	return loadRecords(ctx, c, path, magicFieldsCount, func(fields []string) (*model.MagicCurrency, error) {
		var (
			record magicRecord
			err    error
		)
		record.Code, record.Symbol = fields[0], fields[1]

		record.Rate, err = parseFloat("rate", fields[2])
		if err != nil {
			return nil, err
		}
		record.TaxRate, err = parseFloat("tax rate", fields[3])
		if err != nil {
			return nil, err
		}
		record.RarityLevel, err = strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("parse rarity level: %w", err)
		}
		record.Incantation, record.RealmOrigin = fields[5], fields[6]

		err = c.validate.Struct(record)
		if err != nil {
			return nil, fmt.Errorf("validate magic record: %w", err)
		}

		return model.NewMagicCurrency(model.MagicOptions{
			Code:        record.Code,
			Symbol:      record.Symbol,
			Rate:        record.Rate,
			TaxRate:     record.TaxRate,
			RarityLevel: record.RarityLevel,
			Incantation: record.Incantation,
			RealmOrigin: record.RealmOrigin,
			Random:      c.random,
		}), nil
	})
}

// loadRecords reads the CSV file, skips the header and converts every row with parse.
// Rows with unexpected fields count or failed parsing are skipped, missing file yields no records.
func loadRecords[T any](
	ctx context.Context, c *currencyStore, path string, fieldsCount int, parse func(fields []string) (T, error),
) ([]T, error) {
	logger := c.logger.With().Str("name", "currencyStore.loadRecords").Str("path", path).Logger()
	logger.Debug().Int("fieldsCount", fieldsCount).Msg("got args")

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Msg("rates file not found, no currencies loaded")
			return nil, nil
		}

		logger.Error().Err(err).Msg("open rates file")
		return nil, fmt.Errorf("open rates file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		records       []T
		headerSkipped bool
	)
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Warn().Err(err).Int("line", parseErr.Line).Msg("skip malformed row")
				continue
			}

			logger.Error().Err(err).Msg("read rates file")
			return nil, fmt.Errorf("read rates file: %w", err)
		}

		if !headerSkipped {
			headerSkipped = true
			continue
		}

		line, _ := reader.FieldPos(0)

		if len(fields) != fieldsCount {
			logger.Warn().
				Int("line", line).
				Int("fieldsCount", len(fields)).
				Strs("fields", fields).
				Msg("skip row with unexpected fields count")
			continue
		}

		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		record, err := parse(fields)
		if err != nil {
			logger.Warn().Err(err).Int("line", line).Strs("fields", fields).Msg("skip row which can't be parsed")
			continue
		}

		records = append(records, record)
	}

	logger.Info().Int("count", len(records)).Msg("currencies loaded")
	return records, nil
}

func parseFloat(field, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}

	return parsed, nil
}

// splitCountries splits comma-joined countries, blank entries are dropped.
func splitCountries(countries string) []string {
	parts := strings.Split(countries, ",")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		country := strings.TrimSpace(part)
		if country == "" {
			continue
		}

		result = append(result, country)
	}

	return result
}
