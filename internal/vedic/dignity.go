package vedic

// Dignity classifies a body's strength by sign placement.
type Dignity string

const (
	Exalted     Dignity = "exalted"
	Debilitated Dignity = "debilitated"
	OwnSign     Dignity = "own"
	Neutral     Dignity = "neutral"
)
