// Package generator builds random ant maze levels whose start and exit are
// always connected.
package generator

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antmaze/model"
)

// densities in percent of all cells
const (
	sparsePercent = 10
	densePercent  = 20

	wallAttemptsPerCell = 5
	foodAttemptsPerCell = 3
)

type Options struct {
	Rows, Cols int
	MoreWalls  bool
	MoreFood   bool
}

// Level is a freshly generated grid with its endpoints. WallsPlaced and
// FoodPlaced may fall short of the requested density on crowded grids.
type Level struct {
	Grid        *model.Grid
	Start       model.Position
	Exit        model.Position
	WallsPlaced int
	FoodPlaced  int
}

// Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rnd *rand.Rand
}

func New(source rand.Source) *Generator {
	return &Generator{rnd: rand.New(source)}
}

func NewSeeded(seed int64) *Generator {
	return New(rand.NewSource(seed))
}

// Generate uses a time seeded Generator.
func Generate(rows, cols int, moreWalls, moreFood bool) Level {
	return NewSeeded(time.Now().UnixNano()).Generate(Options{
		Rows: rows, Cols: cols, MoreWalls: moreWalls, MoreFood: moreFood,
	})
}

func (g *Generator) Generate(opts Options) Level {
	level := Level{Grid: model.NewGrid(opts.Rows, opts.Cols)}
	g.placeStartAndExit(&level)
	level.WallsPlaced = g.placeWalls(&level, target(level.Grid, opts.MoreWalls))
	level.FoodPlaced = g.placeFood(level.Grid, target(level.Grid, opts.MoreFood))
	return level
}

// target is floor(cells * density).
func target(grid *model.Grid, more bool) int {
	percent := sparsePercent
	if more {
		percent = densePercent
	}
	return grid.Cells() * percent / 100
}

func (g *Generator) placeStartAndExit(level *Level) {
	rows, cols := level.Grid.Rows(), level.Grid.Cols()
	startRow, exitRow := 0, rows-1
	if g.rnd.Intn(2) == 1 {
		startRow, exitRow = rows-1, 0
	}
	level.Start = model.Position{Row: startRow, Col: g.rnd.Intn(cols)}
	level.Exit = model.Position{Row: exitRow, Col: g.rnd.Intn(cols)}
	level.Grid.Set(level.Start, model.Start)
	level.Grid.Set(level.Exit, model.Exit)
}

func (g *Generator) randomCell(grid *model.Grid) model.Position {
	return model.Position{Row: g.rnd.Intn(grid.Rows()), Col: g.rnd.Intn(grid.Cols())}
}

// placeWalls drops walls on random empty cells, rolling back any wall that
// would cut the exit off from the start.
func (g *Generator) placeWalls(level *Level, want int) int {
	grid := level.Grid
	maxAttempts := grid.Cells() * wallAttemptsPerCell
	placed, attempts, rejected := 0, 0, 0
	for placed < want && attempts < maxAttempts {
		attempts++
		p := g.randomCell(grid)
		if grid.At(p) != model.Empty {
			continue
		}
		grid.Set(p, model.Wall)
		if model.Reachable(grid, level.Start, level.Exit) {
			placed++
		} else {
			grid.Set(p, model.Empty)
			rejected++
		}
	}
	if placed < want {
		log.WithFields(log.Fields{
			"want":     want,
			"placed":   placed,
			"attempts": attempts,
			"rejected": rejected,
		}).Debug("generator: wall budget exhausted")
	}
	return placed
}

// placeFood needs no connectivity check, food never blocks.
func (g *Generator) placeFood(grid *model.Grid, want int) int {
	maxAttempts := grid.Cells() * foodAttemptsPerCell
	kinds := model.Foods()
	placed, attempts := 0, 0
	for placed < want && attempts < maxAttempts {
		attempts++
		p := g.randomCell(grid)
		if grid.At(p) != model.Empty {
			continue
		}
		grid.Set(p, kinds[g.rnd.Intn(len(kinds))])
		placed++
	}
	if placed < want {
		log.WithFields(log.Fields{
			"want":     want,
			"placed":   placed,
			"attempts": attempts,
		}).Debug("generator: food budget exhausted")
	}
	return placed
}
