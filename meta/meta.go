package meta

// DEFAULT_BOARD_SIZE is the side length used until init_board says otherwise.
const DEFAULT_BOARD_SIZE = 11

// EPISODES defines the number of simulations per MCTS move decision.
const EPISODES = 100

// TEMPERATURE defines the move sampling temperature of training agents.
const TEMPERATURE = 1.0

// MAX_GAMES caps concurrently running self-play games.
const MAX_GAMES = 8
