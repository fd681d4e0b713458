package model

import "time"

type ServerMessage struct {
	Setup   []Setup
	Moves   []MoveSuccess
	Results []Result
	History []LevelSummary
	Errors  []string
}

// Setup describes a level the client has just been placed into.
type Setup struct {
	LevelID    string
	Grid       Grid
	Start      Position
	Exit       Position
	MinSteps   int
	MaxFood    int
	TotalCells int
	BestScore  int
	HasBest    bool
	// Visited is set only for a level a client is playing.
	Visited []Position
}

// MoveSuccess carries the whole trail walked so far, row-major.
type MoveSuccess struct {
	Target    Position
	Ant       Position
	Success   bool
	Steps     int
	Collected int
	Eaten     Tag
	Visited   []Position
}

type Result struct {
	LevelID           string
	Steps             int
	MinSteps          int
	EfficiencyPercent int
	FoodPercent       int
	FinalScore        int
	BestScore         int
	Improved          bool
}

type LevelSummary struct {
	LevelID    string
	Created    time.Time
	Rows, Cols int
	MoreWalls  bool
	MoreFood   bool
	MinSteps   int
	MaxFood    int
	BestScore  int
	HasBest    bool
}
