package catalog

import "fmt"

// Tier is one of the ordered difficulty bands every game is
// parameterized by. Career mode derives the tier from the player's
// level; free play lets the player pick one directly.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
	TierExpert
	TierLegendary
)

var tierNames = [...]string{"easy", "medium", "hard", "expert", "legendary"}

func (t Tier) String() string {
	if t < TierEasy || t > TierLegendary {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func (t Tier) Valid() bool {
	return t >= TierEasy && t <= TierLegendary
}

func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if s == name {
			return Tier(i), nil
		}
	}
	return TierEasy, fmt.Errorf("unknown difficulty tier %q", s)
}
