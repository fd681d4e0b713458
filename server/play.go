package server

import (
	"slices"

	"github.com/zucenko/antmaze/model"
	"github.com/zucenko/antmaze/score"
	"github.com/zyedidia/generic/mapset"
)

func NewPlay(level Level) *Play {
	p := &Play{Level: level}
	p.Reset()
	return p
}

// Reset puts the ant back on start and restores every eaten food from the
// level's original grid.
func (p *Play) Reset() {
	p.Grid = p.Level.Grid.Clone()
	p.Ant = p.Level.Start
	p.Visited = mapset.New[model.Position]()
	p.Visited.Put(p.Ant)
	p.Steps = 0
	p.Collected = 0
	p.State = PlayPlaying
	p.Score = score.Result{}
}

// CanEnter reports whether the ant could move to target with one step.
func (p *Play) CanEnter(target model.Position) bool {
	return p.Grid.InBounds(target) && p.Ant.Adjacent(target) && p.Grid.At(target) != model.Wall
}

func (p *Play) Step(d model.Direction) model.MoveSuccess {
	off, ok := d.Offset()
	if !ok {
		return p.report(p.Ant, false)
	}
	return p.Move(model.Position{Row: p.Ant.Row + off.Row, Col: p.Ant.Col + off.Col})
}

// Move walks the ant onto target if the move is legal, eating any food there.
// Arriving on the exit scores the attempt and ends it.
func (p *Play) Move(target model.Position) model.MoveSuccess {
	if p.State != PlayPlaying || !p.CanEnter(target) {
		return p.report(target, false)
	}
	eaten := p.enter(target)
	ms := p.report(target, true)
	ms.Eaten = eaten
	return ms
}

// enter returns the food eaten on target, Empty if none.
func (p *Play) enter(target model.Position) (eaten model.Tag) {
	p.Steps++
	if t := p.Grid.At(target); t.IsFood() {
		p.Collected += t.Value()
		p.Grid.Set(target, model.Empty)
		eaten = t
	}
	p.Ant = target
	p.Visited.Put(target)

	if target == p.Level.Exit {
		p.Score = score.Calculate(p.Level.MinSteps, p.Steps, p.Collected, p.Level.MaxFood, p.Level.TotalCells)
		p.State = PlayWon
	}
	return eaten
}

func (p *Play) report(target model.Position, success bool) model.MoveSuccess {
	return model.MoveSuccess{
		Target:    target,
		Ant:       p.Ant,
		Success:   success,
		Steps:     p.Steps,
		Collected: p.Collected,
		Visited:   p.VisitedCells(),
	}
}

func (p *Play) Visits(pos model.Position) bool {
	return p.Visited.Has(pos)
}

// VisitedCells lists the trail in row-major order.
func (p *Play) VisitedCells() []model.Position {
	out := make([]model.Position, 0, p.Visited.Size())
	p.Visited.Each(func(pos model.Position) {
		out = append(out, pos)
	})
	slices.SortFunc(out, func(a, b model.Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}
