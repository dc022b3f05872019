package models

// PrizeTier is a prize bracket defined by match count and bonus requirement
type PrizeTier string

const (
	TierNone   PrizeTier = "none"
	TierFifth  PrizeTier = "fifth"
	TierFourth PrizeTier = "fourth"
	TierThird  PrizeTier = "third"
	TierSecond PrizeTier = "second"
	TierFirst  PrizeTier = "first"
)

// PrizeRule describes what a ticket needs to land in a tier and what it pays
type PrizeRule struct {
	Tier          PrizeTier
	MatchCount    int
	RequiresBonus bool
	Prize         int64
}

// prizeTable is ordered from the lowest tier to the jackpot; reports follow this order
var prizeTable = []PrizeRule{
	{Tier: TierNone, MatchCount: 0, RequiresBonus: false, Prize: 0},
	{Tier: TierFifth, MatchCount: 3, RequiresBonus: false, Prize: 5_000},
	{Tier: TierFourth, MatchCount: 4, RequiresBonus: false, Prize: 50_000},
	{Tier: TierThird, MatchCount: 5, RequiresBonus: false, Prize: 1_500_000},
	{Tier: TierSecond, MatchCount: 5, RequiresBonus: true, Prize: 30_000_000},
	{Tier: TierFirst, MatchCount: 6, RequiresBonus: false, Prize: 2_000_000_000},
}

// PrizeTable returns a copy of every tier rule, lowest tier first
func PrizeTable() []PrizeRule {
	out := make([]PrizeRule, len(prizeTable))
	copy(out, prizeTable)
	return out
}

// ReportableRules returns the rules shown in the result report
func ReportableRules() []PrizeRule {
	rules := make([]PrizeRule, 0, len(prizeTable))
	for _, rule := range prizeTable {
		if rule.Reportable() {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Reportable reports whether the tier is listed in the result report
func (r PrizeRule) Reportable() bool {
	return r.MatchCount >= MinReportableMatch
}

// RuleFor returns the rule for a tier
func RuleFor(tier PrizeTier) PrizeRule {
	for _, rule := range prizeTable {
		if rule.Tier == tier {
			return rule
		}
	}
	return prizeTable[0]
}

// TierFor classifies a ticket result. bonusMatched only matters for five matches.
func TierFor(matchCount int, bonusMatched bool) PrizeTier {
	switch {
	case matchCount == 6:
		return TierFirst
	case matchCount == 5 && bonusMatched:
		return TierSecond
	case matchCount == 5:
		return TierThird
	case matchCount == 4:
		return TierFourth
	case matchCount == 3:
		return TierFifth
	default:
		return TierNone
	}
}
