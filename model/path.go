package model

import "github.com/pkg/errors"

// Unreachable is returned by ShortestPath when no route exists.
const Unreachable = -1

var ErrUnreachable = errors.New("exit is not reachable from start")

// up, down, left, right
var directions = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

type step struct {
	pos  Position
	dist int
}

// ShortestPath runs a breadth-first search from start to target through
// every cell that is not a Wall. Each cell is enqueued at most once.
func ShortestPath(g *Grid, start, target Position) int {
	if !g.InBounds(start) || !g.InBounds(target) {
		return Unreachable
	}
	visited := make([]bool, g.Cells())
	cols := g.Cols()
	queue := make([]step, 0, g.Cells())
	queue = append(queue, step{pos: start})
	visited[start.Row*cols+start.Col] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.pos == target {
			return cur.dist
		}
		for _, d := range directions {
			next := Position{Row: cur.pos.Row + d.Row, Col: cur.pos.Col + d.Col}
			if !g.InBounds(next) || visited[next.Row*cols+next.Col] || g.At(next) == Wall {
				continue
			}
			visited[next.Row*cols+next.Col] = true
			queue = append(queue, step{pos: next, dist: cur.dist + 1})
		}
	}
	return Unreachable
}

func Reachable(g *Grid, start, target Position) bool {
	return ShortestPath(g, start, target) != Unreachable
}

// OptimalSteps is ShortestPath for finished grids, where an unreachable exit
// means the grid is broken.
func OptimalSteps(g *Grid, start, exit Position) (int, error) {
	d := ShortestPath(g, start, exit)
	if d == Unreachable {
		return 0, ErrUnreachable
	}
	return d, nil
}
