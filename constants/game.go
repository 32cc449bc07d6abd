package constants

import "time"

// Board Geometry
const (
	// BoardWidth is the number of columns in the well
	BoardWidth = 10

	// BoardHeight is the number of rows in the well; row 0 is the top
	BoardHeight = 20

	// SpawnX is the anchor column for every new piece
	SpawnX = 4

	// SpawnY is the anchor row for every new piece
	SpawnY = 0

	// CellsPerPiece is the tetromino cell count
	CellsPerPiece = 4
)

// Queue and Scoring
const (
	// QueueLength is the number of upcoming shapes held in the lookahead queue
	QueueLength = 3

	// ScorePerRow is awarded for every row removed in a sweep
	ScorePerRow = 100
)

// Game Loop Timing Constants
const (
	// GravityPeriod is the default interval between automatic falls
	GravityPeriod = 1 * time.Second

	// PollInterval is the loop tick; bounds input latency and CPU usage
	PollInterval = 50 * time.Millisecond

	// ClearFlashDuration is how long full rows flash before they are removed
	ClearFlashDuration = 300 * time.Millisecond

	// ClearFlashInterval is the flash phase toggle period
	ClearFlashInterval = 75 * time.Millisecond
)
