package learner

import "tictactoe/game"

// Hyperparameters for self-play learning

const Gamma = 0.9 // Discount applied per step back from the terminal state

const ExplorationRate = 30 // Percent of moves played uniformly at random

// Terminal rewards from the primary marker's perspective
const (
	Win  = 1.0
	Loss = 1 - Win
	Tie  = 0.5
)

// RewardFor maps an outcome in the primary's frame to its terminal reward.
func RewardFor(outcome game.Outcome) float64 {
	switch outcome {
	case game.PrimaryWin:
		return Win
	case game.PrimaryLoss:
		return Loss
	default:
		return Tie
	}
}
