package common

import (
	"fmt"
	"strconv"
	"strings"

	"lotto/models"
)

// FormatBalance formats an amount with thousand separators
func FormatBalance(balance int64) string {
	if balance < 0 {
		return "-" + formatDigits(strconv.FormatUint(uint64(-balance), 10))
	}
	return formatDigits(strconv.FormatInt(balance, 10))
}

func formatDigits(str string) string {
	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatPrizeLine formats one result report row, e.g. "3개 일치 (5,000원) - 1개"
func FormatPrizeLine(rule models.PrizeRule, count int) string {
	criteria := fmt.Sprintf("%d개 일치", rule.MatchCount)
	if rule.RequiresBonus {
		criteria += ", 보너스 볼 일치"
	}
	return fmt.Sprintf("%s (%s원) - %d개", criteria, FormatBalance(rule.Prize), count)
}

// FormatEarningRate formats the closing line of the result report
func FormatEarningRate(rate float64) string {
	return fmt.Sprintf("총 수익률은 %.1f%%입니다.", rate)
}
