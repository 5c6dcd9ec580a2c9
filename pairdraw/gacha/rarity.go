package gacha

import "math/rand"

// Rarity tiers, rarest first. Order matters: the roll walks the weight
// table in this order accumulating probability mass.
type Rarity string

const (
	RaritySSR Rarity = "SSR"
	RaritySR  Rarity = "SR"
	RarityR   Rarity = "R"
	RarityN   Rarity = "N"
)

type rarityRate struct {
	Rarity Rarity
	Rate   float64
}

var rarityRates = []rarityRate{
	{RaritySSR, 0.05},
	{RaritySR, 0.20},
	{RarityR, 0.35},
	{RarityN, 0.40},
}

// Rarities returns all tiers in table order.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarityRates))
	for i, e := range rarityRates {
		out[i] = e.Rarity
	}
	return out
}

// ValidRarity reports whether s names a known tier.
func ValidRarity(s string) bool {
	for _, e := range rarityRates {
		if string(e.Rarity) == s {
			return true
		}
	}
	return false
}

// RollRarity maps one uniform sample r in [0,1) to a tier: the first
// tier whose cumulative weight is >= r wins. The boundary rule is <=,
// not <, so a sample landing exactly on a cumulative sum belongs to the
// lower tier. Falls back to N when float accumulation never reaches r.
func RollRarity(r float64) Rarity {
	acc := 0.0
	for _, e := range rarityRates {
		acc += e.Rate
		if r <= acc {
			return e.Rarity
		}
	}
	return RarityN
}

// rollRarity draws a fresh sample from rng.
func rollRarity(rng *rand.Rand) Rarity {
	return RollRarity(rng.Float64())
}
