package searcher

import "hex/meta"

// Hyperparameters for MCTS

const DefaultEpisodes = meta.EPISODES // Simulations per move decision

const WIN = 1.0   // Terminal value for the side that connected
const LOSS = -WIN // Terminal value for the side that did not

// Backup selects how a simulation value is accumulated along the path.
type Backup int

const (
	// Negamax credits every node from the perspective of the player who moved
	// into it, negating the value on alternate plies.
	Negamax Backup = iota
	// Reference adds the same unsigned value at every depth, as the first
	// version of the bot did.
	Reference
)

func (b Backup) String() string {
	switch b {
	case Negamax:
		return "negamax"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// ParseBackup maps a Backup name back to its value.
func ParseBackup(name string) (Backup, bool) {
	switch name {
	case "negamax", "":
		return Negamax, true
	case "reference":
		return Reference, true
	}
	return Negamax, false
}
