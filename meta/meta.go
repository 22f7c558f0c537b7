// meta/meta.go
package meta

// TABLE_PATH is the default location of the persisted value table.
const TABLE_PATH = "sample.json"

// EXPLORATION_RATE is the default percent of random moves for smart agents.
const EXPLORATION_RATE = 30

// TOURNAMENT_GAMES is the default number of games in a tournament.
const TOURNAMENT_GAMES = 3

// COLLECT_GAMES is the default number of games in a data collection run.
const COLLECT_GAMES = 1000000

// SAVE_EVERY is how many collected games pass between table saves.
const SAVE_EVERY = 1000

// WORKERS is the default number of goroutines for data collection.
const WORKERS = 1

// RECORDS_DIR is where experiment records go when --records is given without a value.
const RECORDS_DIR = "experiments"
