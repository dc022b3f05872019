package common

import (
	"math"
	"testing"

	"lotto/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		balance int64
		want    string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{1500000, "1,500,000"},
		{2000000000, "2,000,000,000"},
		{-5000, "-5,000"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBalance(tt.balance))
	}
}

func TestFormatPrizeLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3개 일치 (5,000원) - 1개", FormatPrizeLine(models.RuleFor(models.TierFifth), 1))
	assert.Equal(t, "5개 일치 (1,500,000원) - 0개", FormatPrizeLine(models.RuleFor(models.TierThird), 0))
	assert.Equal(t, "5개 일치, 보너스 볼 일치 (30,000,000원) - 2개", FormatPrizeLine(models.RuleFor(models.TierSecond), 2))
	assert.Equal(t, "6개 일치 (2,000,000,000원) - 0개", FormatPrizeLine(models.RuleFor(models.TierFirst), 0))
}

func TestFormatEarningRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "총 수익률은 62.5%입니다.", FormatEarningRate(62.5))
	assert.Equal(t, "총 수익률은 100.0%입니다.", FormatEarningRate(100))
	assert.Equal(t, "총 수익률은 0.0%입니다.", FormatEarningRate(0))
}
