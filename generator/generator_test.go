package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/antmaze/model"
)

func countFood(g *model.Grid) int {
	n := 0
	for _, f := range model.Foods() {
		n += g.Count(f)
	}
	return n
}

func TestGenerateKeepsExitReachable(t *testing.T) {
	sizes := [][2]int{{8, 8}, {12, 12}, {8, 32}, {32, 8}, {20, 15}, {32, 32}}
	for seed := int64(1); seed <= 12; seed++ {
		for _, size := range sizes {
			for _, moreWalls := range []bool{false, true} {
				level := NewSeeded(seed).Generate(Options{
					Rows: size[0], Cols: size[1], MoreWalls: moreWalls, MoreFood: seed%2 == 0,
				})
				d := model.ShortestPath(level.Grid, level.Start, level.Exit)
				require.NotEqual(t, model.Unreachable, d, "seed %d size %v", seed, size)
				assert.GreaterOrEqual(t, d, level.Grid.Rows()-1)
			}
		}
	}
}

func TestGeneratePlacesStartAndExitOnOppositeEdges(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		level := NewSeeded(seed).Generate(Options{Rows: 10, Cols: 9})
		g := level.Grid
		last := g.Rows() - 1

		assert.Equal(t, 1, g.Count(model.Start))
		assert.Equal(t, 1, g.Count(model.Exit))
		assert.Equal(t, model.Start, g.At(level.Start))
		assert.Equal(t, model.Exit, g.At(level.Exit))
		assert.True(t, level.Start.Row == 0 || level.Start.Row == last)
		assert.Equal(t, last, level.Start.Row+level.Exit.Row)
	}
}

func TestGenerateDensity(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		level := NewSeeded(seed).Generate(Options{Rows: 12, Cols: 12, MoreWalls: true, MoreFood: false})
		g := level.Grid

		walls, food := g.Count(model.Wall), countFood(g)
		assert.LessOrEqual(t, walls, 28)
		assert.LessOrEqual(t, food, 14)
		assert.Equal(t, level.WallsPlaced, walls)
		assert.Equal(t, level.FoodPlaced, food)
		assert.True(t, model.Reachable(g, level.Start, level.Exit))
	}
}

func TestGenerateSparseLargeGridHitsTargets(t *testing.T) {
	level := NewSeeded(42).Generate(Options{Rows: 32, Cols: 32})
	assert.Equal(t, 1024*10/100, level.FoodPlaced)
	assert.LessOrEqual(t, level.WallsPlaced, 1024*10/100)
}

func TestGenerateClampsDimensions(t *testing.T) {
	level := NewSeeded(3).Generate(Options{Rows: 2, Cols: 99})
	assert.Equal(t, 8, level.Grid.Rows())
	assert.Equal(t, 32, level.Grid.Cols())

	level = Generate(100, -1, true, true)
	assert.Equal(t, 32, level.Grid.Rows())
	assert.Equal(t, 8, level.Grid.Cols())
	assert.True(t, model.Reachable(level.Grid, level.Start, level.Exit))
}

func TestGenerateIsReproducible(t *testing.T) {
	opts := Options{Rows: 14, Cols: 11, MoreWalls: true, MoreFood: true}
	a := NewSeeded(7).Generate(opts)
	b := NewSeeded(7).Generate(opts)
	assert.Equal(t, a.Grid.Matrix, b.Grid.Matrix)
	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.Exit, b.Exit)
}

func TestGenerateOnlyKnownTags(t *testing.T) {
	level := NewSeeded(11).Generate(Options{Rows: 16, Cols: 16, MoreWalls: true, MoreFood: true})
	food := 0
	level.Grid.ForEachCell(func(p model.Position, tag model.Tag) {
		switch tag {
		case model.Empty, model.Wall, model.Start, model.Exit:
		case model.Apple, model.Banana, model.Cherry:
			food += tag.Value()
		default:
			t.Fatalf("unexpected tag %s at %v", tag.Name(), p)
		}
	})
	assert.Equal(t, food, model.TotalFoodValue(level.Grid))
}
