package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/VladPetriv/currency_converter/internal/model"
	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/VladPetriv/currency_converter/pkg/errs"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"github.com/VladPetriv/currency_converter/pkg/money"
	"github.com/google/uuid"
)

// Menu options.
const (
	optionList = iota + 1
	optionConvert
	optionReport
	optionFluctuate
	optionExit
)

const menuText = "\n===== Currency Converter =====\n" +
	"1. List all currencies\n" +
	"2. Convert between currencies\n" +
	"3. Show currency report\n" +
	"4. Fluctuate rates\n" +
	"5. Exit\n"

// Menu represents an interactive console menu on top of the converter.
type Menu struct {
	logger    *logger.Logger
	converter service.ConverterService
	scanner   *bufio.Scanner
	out       io.Writer
}

// MenuOptions represents input structure for NewMenu.
type MenuOptions struct {
	Logger    *logger.Logger
	Converter service.ConverterService
	In        io.Reader
	Out       io.Writer
}

// NewMenu returns new instance of console menu.
func NewMenu(opts MenuOptions) *Menu {
	return &Menu{
		logger:    opts.Logger,
		converter: opts.Converter,
		scanner:   bufio.NewScanner(opts.In),
		out:       opts.Out,
	}
}

// Run shows the menu and handles user choices until exit is chosen, input is over or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	logger := m.logger.With().Str("name", "Menu.Run").Str("sessionID", uuid.NewString()).Logger()
	logger.Info().Msg("session started")

	for {
		if ctx.Err() != nil {
			logger.Info().Err(ctx.Err()).Msg("session interrupted")
			return ctx.Err()
		}

		m.print(menuText)

		choice, err := m.readChoice("Choose an option: ")
		if err == nil {
			logger.Debug().Int("choice", choice).Msg("got choice")
			err = m.handleChoice(choice)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			m.print("Thanks for using the converter!\n")
			logger.Info().Msg("session finished")
			return nil
		case errs.IsExpected(err):
			fmt.Fprintf(m.out, "Error: %s\n", err.Error())
		default:
			logger.Error().Err(err).Msg("handle menu choice")
			return fmt.Errorf("handle menu choice: %w", err)
		}
	}
}

var errExit = errors.New("exit")

func (m *Menu) handleChoice(choice int) error {
	switch choice {
	case optionList:
		m.listCurrencies()
		return nil
	case optionConvert:
		return m.convert()
	case optionReport:
		return m.report()
	case optionFluctuate:
		m.converter.FluctuateAll()
		m.print("Rates fluctuated.\n")
		return nil
	case optionExit:
		return errExit
	default:
		m.print("Invalid operation. Try again.\n")
		return nil
	}
}

func (m *Menu) listCurrencies() {
	m.print("Available currencies:\n")
	for _, currency := range m.converter.ListAllCurrencies() {
		m.print("-" + model.GetName(currency) + "\n")
	}
}

func (m *Menu) convert() error {
	logger := m.logger.With().Str("name", "Menu.convert").Str("requestID", uuid.NewString()).Logger()

	country, err := m.readValidatedString("Enter your location: ", isString)
	if err != nil {
		return err
	}
	fromCode, err := m.readValidatedString("Enter FROM currency code: ", isString)
	if err != nil {
		return err
	}
	toCode, err := m.readValidatedString("Enter TO currency code: ", isString)
	if err != nil {
		return err
	}
	amount, err := m.readPositiveAmount("Enter amount to convert: ")
	if err != nil {
		return err
	}
	logger.Debug().
		Str("country", country).
		Str("fromCode", fromCode).
		Str("toCode", toCode).
		Str("amount", amount.String()).
		Msg("got args")

	from, err := m.converter.GetCurrency(fromCode)
	if err != nil {
		if errs.IsExpected(err) {
			return err
		}

		return fmt.Errorf("get from currency: %w", err)
	}
	to, err := m.converter.GetCurrency(toCode)
	if err != nil {
		if errs.IsExpected(err) {
			return err
		}

		return fmt.Errorf("get to currency: %w", err)
	}

	converted, err := m.converter.Convert(fromCode, toCode, amount.Float64())
	if err != nil {
		if errs.IsExpected(err) {
			return err
		}

		return fmt.Errorf("convert: %w", err)
	}
	logger.Info().Float64("converted", converted).Msg("amount converted")

	country = model.NormalizeCountry(country)

	m.print("\n===== Conversion Result =====\n")
	fmt.Fprintf(m.out, "%s %s = %s %s\n", amount.StringFixed(), from.GetCode(), money.Format(converted), to.GetCode())
	m.print("\n" + from.MakeReport(amount.Float64(), country))
	m.print("\n" + to.MakeReport(converted, country))

	return nil
}

func (m *Menu) report() error {
	code, err := m.readValidatedString("Enter currency code: ", isString)
	if err != nil {
		return err
	}
	country, err := m.readValidatedString("Enter your location: ", isString)
	if err != nil {
		return err
	}
	amount, err := m.readPositiveAmount("Enter amount: ")
	if err != nil {
		return err
	}

	report, err := m.converter.GetReport(code, amount.Float64(), country)
	if err != nil {
		if errs.IsExpected(err) {
			return err
		}

		return fmt.Errorf("get report: %w", err)
	}

	m.print("\n" + report)
	return nil
}

func (m *Menu) print(text string) {
	fmt.Fprint(m.out, text)
}
