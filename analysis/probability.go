// Package analysis checks the lottery against its theoretical odds by
// simulating large purchases with the same issuer and classifier the game uses.
package analysis

import (
	"lotto/models"
)

// TierOdds is the exact chance of a single ticket landing in a tier
type TierOdds struct {
	Tier         models.PrizeTier
	Combinations int64
	Probability  float64
}

// binomial returns n choose k
func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		result = result * int64(n-k+i) / int64(i)
	}
	return result
}

// TotalCombinations is the number of distinct tickets
func TotalCombinations() int64 {
	return binomial(models.MaxNumber-models.MinNumber+1, models.TicketSize)
}

// TheoreticalOdds returns the exact odds of every tier, in prize table order
func TheoreticalOdds() []TierOdds {
	pool := models.MaxNumber - models.MinNumber + 1
	losing := pool - models.TicketSize // numbers that are not winning numbers, bonus included
	total := TotalCombinations()

	combos := make(map[models.PrizeTier]int64)
	var winning int64
	for k := models.MinReportableMatch; k <= models.TicketSize; k++ {
		ways := binomial(models.TicketSize, k) * binomial(losing, models.TicketSize-k)
		if k == models.TicketSize-1 {
			// One extra number besides the five matches; it is the bonus in exactly one way
			withBonus := binomial(models.TicketSize, k)
			combos[models.TierFor(k, true)] = withBonus
			combos[models.TierFor(k, false)] = ways - withBonus
		} else {
			combos[models.TierFor(k, false)] = ways
		}
		winning += ways
	}
	combos[models.TierNone] = total - winning

	odds := make([]TierOdds, 0, len(combos))
	for _, rule := range models.PrizeTable() {
		n := combos[rule.Tier]
		odds = append(odds, TierOdds{
			Tier:         rule.Tier,
			Combinations: n,
			Probability:  float64(n) / float64(total),
		})
	}
	return odds
}

// ExpectedEarningRate is the long run return of one ticket as a percentage of its price
func ExpectedEarningRate() float64 {
	var expected float64
	for _, o := range TheoreticalOdds() {
		expected += o.Probability * float64(models.RuleFor(o.Tier).Prize)
	}
	return expected / models.TicketPrice * 100
}
