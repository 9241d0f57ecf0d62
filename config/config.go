package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents an app config.
type Config struct {
	Rates  Rates
	Random Random
	Logger Logger
}

// Rates represents locations of the CSV files with exchange rates per currency family.
type Rates struct {
	CryptoFile string `env:"CC_CRYPTO_RATES_FILE" env-default:"crypto_exchange_rates.csv"`
	FiatFile   string `env:"CC_FIAT_RATES_FILE" env-default:"fiat_exchange_rates.csv"`
	MagicFile  string `env:"CC_MAGIC_RATES_FILE" env-default:"magic_exchange_rates.csv"`
}

// Random represents a configuration of the random source used by magic currencies.
// Zero seed means that the seed is taken from runtime entropy.
type Random struct {
	Seed uint64 `env:"CC_RANDOM_SEED" env-default:"0"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"CC_LOGGER_LOG_LEVEL" env-default:"info"`
	LogFilename     string `env:"CC_LOGGER_LOG_FILENAME" env-default:"currency_converter.log"`
	PrettyLogOutput bool   `env:"CC_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
	ConsoleOutput   bool   `env:"CC_LOGGER_CONSOLE_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		// .env file is optional, real environment variables take precedence.
		_ = godotenv.Load()

		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
