package app

import (
	"context"
	"os"

	"github.com/VladPetriv/currency_converter/config"
	"github.com/VladPetriv/currency_converter/internal/cli"
	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/VladPetriv/currency_converter/internal/store"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"github.com/VladPetriv/currency_converter/pkg/random"
)

// Run is used to start the application.
func Run(cfg *config.Config, logger *logger.Logger) {
	ctx := context.Background()

	converter := service.NewConverter(logger)
	currencyStore := store.NewCurrency(logger, random.New(cfg.Random.Seed))

	cryptoCurrencies, err := currencyStore.LoadCrypto(ctx, cfg.Rates.CryptoFile)
	if err != nil {
		logger.Error().Err(err).Msg("load crypto currencies")
	}
	for _, currency := range cryptoCurrencies {
		converter.AddCurrency(currency)
	}

	fiatCurrencies, err := currencyStore.LoadFiat(ctx, cfg.Rates.FiatFile)
	if err != nil {
		logger.Error().Err(err).Msg("load fiat currencies")
	}
	for _, currency := range fiatCurrencies {
		converter.AddCurrency(currency)
	}

	magicCurrencies, err := currencyStore.LoadMagic(ctx, cfg.Rates.MagicFile)
	if err != nil {
		logger.Error().Err(err).Msg("load magic currencies")
	}
	for _, currency := range magicCurrencies {
		converter.AddCurrency(currency)
	}

	menu := cli.NewMenu(cli.MenuOptions{
		Logger:    logger,
		Converter: converter,
		In:        os.Stdin,
		Out:       os.Stdout,
	})

	err = menu.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("run menu")
	}
}
