package game

// Outcome is the result of a finished game from the primary marker's
// perspective.
type Outcome int

const (
	Draw Outcome = iota
	PrimaryWin
	PrimaryLoss
)

func (o Outcome) String() string {
	switch o {
	case PrimaryWin:
		return "win"
	case PrimaryLoss:
		return "loss"
	default:
		return "draw"
	}
}

// OutcomeFor translates the physical winner of a game into the frame of
// primary. A win for the other marker is a loss for primary.
func OutcomeFor(winner, primary Marker) Outcome {
	switch winner {
	case Empty:
		return Draw
	case primary:
		return PrimaryWin
	default:
		return PrimaryLoss
	}
}
