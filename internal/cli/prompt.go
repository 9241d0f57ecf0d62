package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/VladPetriv/currency_converter/pkg/money"
)

// readLine returns the next input line without surrounding blanks, io.EOF is returned when input is over.
func (m *Menu) readLine() (string, error) {
	if !m.scanner.Scan() {
		err := m.scanner.Err()
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(m.scanner.Text()), nil
}

func (m *Menu) readChoice(prompt string) (int, error) {
	m.print(prompt)

	for {
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err == nil {
			return choice, nil
		}

		m.print("Please, enter a number: ")
	}
}

func (m *Menu) readValidatedString(prompt string, isValid func(string) bool) (string, error) {
	for {
		m.print(prompt)

		line, err := m.readLine()
		if err != nil {
			return "", err
		}

		if isValid(line) {
			return line, nil
		}

		m.print("Invalid input. Please try again.\n")
	}
}

func (m *Menu) readPositiveAmount(prompt string) (money.Money, error) {
	for {
		m.print(prompt)

		line, err := m.readLine()
		if err != nil {
			return money.Zero, err
		}

		amount, err := money.NewFromString(line)
		if err == nil && amount.GreaterThan(money.Zero) {
			return amount, nil
		}

		m.print("Invalid input. Please enter a positive number.\n")
	}
}

// isString checks that s is not empty and consists of letters, spaces, hyphens and apostrophes only.
func isString(s string) bool {
	if s == "" {
		return false
	}

	for _, char := range s {
		if !unicode.IsLetter(char) && char != ' ' && char != '-' && char != '\'' {
			return false
		}
	}

	return true
}
