package model

// Outcome is the terminal result of one plate appearance.
// Keep the string forms stable; they are intended for CSV and API output.
type Outcome int

const (
	Out Outcome = iota
	Walk
	Single
	Double
	Triple
	HomeRun
)

func (o Outcome) String() string {
	switch o {
	case Out:
		return "OUT"
	case Walk:
		return "WALK"
	case Single:
		return "SINGLE"
	case Double:
		return "DOUBLE"
	case Triple:
		return "TRIPLE"
	case HomeRun:
		return "HOME_RUN"
	default:
		return "UNKNOWN"
	}
}

// IsHit reports whether the outcome is a base hit. Walks put the batter on
// base but are not hits.
func (o Outcome) IsHit() bool {
	switch o {
	case Single, Double, Triple, HomeRun:
		return true
	default:
		return false
	}
}

func (o Outcome) IsOut() bool {
	return o == Out
}

// TotalBases returns the official total-bases value of the outcome.
// Walks and outs are worth zero.
func (o Outcome) TotalBases() int {
	switch o {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case HomeRun:
		return 4
	default:
		return 0
	}
}
