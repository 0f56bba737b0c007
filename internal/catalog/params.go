package catalog

// Params is the canonical difficulty bundle handed to a mini-game.
// The bundle is a union across game families; each game reads only the
// field cluster it cares about (grid games read rows/cols and mines,
// quiz games read question count and time limit, and so on).
type Params struct {
	GridRows         int
	GridCols         int
	PairCount        int
	MineCount        int
	TimeLimitSeconds int
	QuestionCount    int
	AttemptLimit     int
	OperandMax       int
	SequenceLength   int
	WordLength       int
}

// ParamsForTier maps a difficulty tier to its default bundle.
func ParamsForTier(t Tier) Params {
	switch t {
	case TierMedium:
		return Params{
			GridRows: 4, GridCols: 4, PairCount: 8, MineCount: 6,
			TimeLimitSeconds: 90, QuestionCount: 5, AttemptLimit: 6,
			OperandMax: 25, SequenceLength: 5, WordLength: 5,
		}
	case TierHard:
		return Params{
			GridRows: 5, GridCols: 4, PairCount: 10, MineCount: 10,
			TimeLimitSeconds: 75, QuestionCount: 7, AttemptLimit: 5,
			OperandMax: 50, SequenceLength: 7, WordLength: 6,
		}
	case TierExpert:
		return Params{
			GridRows: 6, GridCols: 5, PairCount: 15, MineCount: 15,
			TimeLimitSeconds: 60, QuestionCount: 8, AttemptLimit: 4,
			OperandMax: 100, SequenceLength: 9, WordLength: 7,
		}
	case TierLegendary:
		return Params{
			GridRows: 6, GridCols: 6, PairCount: 18, MineCount: 20,
			TimeLimitSeconds: 45, QuestionCount: 10, AttemptLimit: 3,
			OperandMax: 250, SequenceLength: 12, WordLength: 8,
		}
	default: // TierEasy and anything out of range
		return Params{
			GridRows: 3, GridCols: 4, PairCount: 6, MineCount: 4,
			TimeLimitSeconds: 120, QuestionCount: 3, AttemptLimit: 8,
			OperandMax: 10, SequenceLength: 4, WordLength: 4,
		}
	}
}

// Overrides carries per-game custom settings for free play. Only the
// fields the player explicitly set (non-nil) replace tier defaults.
type Overrides struct {
	GridRows         *int
	GridCols         *int
	PairCount        *int
	MineCount        *int
	TimeLimitSeconds *int
	QuestionCount    *int
	AttemptLimit     *int
	OperandMax       *int
	SequenceLength   *int
	WordLength       *int
}

// Apply merges o on top of p and returns the result. p is not mutated.
func (p Params) Apply(o Overrides) Params {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.GridRows, o.GridRows)
	set(&p.GridCols, o.GridCols)
	set(&p.PairCount, o.PairCount)
	set(&p.MineCount, o.MineCount)
	set(&p.TimeLimitSeconds, o.TimeLimitSeconds)
	set(&p.QuestionCount, o.QuestionCount)
	set(&p.AttemptLimit, o.AttemptLimit)
	set(&p.OperandMax, o.OperandMax)
	set(&p.SequenceLength, o.SequenceLength)
	set(&p.WordLength, o.WordLength)
	return p
}
