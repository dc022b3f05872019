package models

import "math"

// WinningStats is the outcome of scoring a set of tickets against one draw
type WinningStats struct {
	TicketCount   int
	SpendAmount   int64
	TierCounts    map[PrizeTier]int
	TotalWinnings int64
	EarningRate   float64
}

// NewTierCounts returns a count map with every tier present and zeroed
func NewTierCounts() map[PrizeTier]int {
	counts := make(map[PrizeTier]int, len(prizeTable))
	for _, rule := range prizeTable {
		counts[rule.Tier] = 0
	}
	return counts
}

// TotalWinnings sums prize times count over every tier
func TotalWinnings(counts map[PrizeTier]int) int64 {
	var total int64
	for _, rule := range prizeTable {
		total += rule.Prize * int64(counts[rule.Tier])
	}
	return total
}

// EarningRate returns winnings as a percentage of spend, rounded half-up
// to one decimal place
func EarningRate(winnings, spend int64) float64 {
	if spend <= 0 {
		return 0
	}
	rate := float64(winnings) / float64(spend) * 100
	return math.Floor(rate*10+0.5) / 10
}
