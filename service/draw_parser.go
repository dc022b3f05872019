package service

import (
	"strconv"
	"strings"

	"lotto/models"
)

const winningNumberDelimiter = ","

// ParsePurchaseAmount parses the spend amount line
func ParsePurchaseAmount(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	amount, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, models.NewValidationError(models.ReasonNumeric, models.NumericErrorMessage, "purchase amount %q", trimmed)
	}
	return amount, nil
}

// ParseWinningNumbers parses a comma separated list of winning numbers.
// Count and range are checked when the draw is built.
func ParseWinningNumbers(text string) ([]int, error) {
	tokens := strings.Split(text, winningNumberDelimiter)
	numbers := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := parseNumber(token)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// ParseBonusNumber parses the single bonus number
func ParseBonusNumber(text string) (int, error) {
	return parseNumber(text)
}

// ParseDraw parses both inputs and validates them as one draw
func ParseDraw(winningText, bonusText string) (*models.Draw, error) {
	winning, err := ParseWinningNumbers(winningText)
	if err != nil {
		return nil, err
	}
	bonus, err := ParseBonusNumber(bonusText)
	if err != nil {
		return nil, err
	}
	return models.NewDraw(winning, bonus)
}

func parseNumber(token string) (int, error) {
	trimmed := strings.TrimSpace(token)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, models.NewValidationError(models.ReasonNumeric, models.NumericErrorMessage, "token %q", trimmed)
	}
	return n, nil
}
