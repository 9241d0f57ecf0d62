package main

import (
	"github.com/VladPetriv/currency_converter/config"
	"github.com/VladPetriv/currency_converter/internal/app"
	"github.com/VladPetriv/currency_converter/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
		ConsoleOutput:   cfg.Logger.ConsoleOutput,
	})

	app.Run(cfg, logger)
}
