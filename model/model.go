package model

import "fmt"

const (
	MinSize = 8
	MaxSize = 32
)

// Tag is the category of a single grid cell.
type Tag int

const (
	Empty Tag = iota
	Wall
	Start
	Exit
	Apple
	Banana
	Cherry
)

var foods = [...]Tag{Apple, Banana, Cherry}

// Foods returns a fresh slice of the food kinds.
func Foods() []Tag {
	return append([]Tag(nil), foods[:]...)
}

// Value returns the points a food cell is worth, 0 for anything else.
func (t Tag) Value() int {
	switch t {
	case Apple:
		return 100
	case Banana:
		return 200
	case Cherry:
		return 300
	default:
		return 0
	}
}

func (t Tag) IsFood() bool {
	return t.Value() > 0
}

func (t Tag) Name() string {
	switch t {
	case Empty:
		return "EMPTY"
	case Wall:
		return "WALL"
	case Start:
		return "START"
	case Exit:
		return "EXIT"
	case Apple:
		return "APPLE"
	case Banana:
		return "BANANA"
	case Cherry:
		return "CHERRY"
	default:
		return fmt.Sprintf("n/a:%d", t)
	}
}

type Position struct {
	Row, Col int
}

// Adjacent reports whether o is exactly one orthogonal step away.
func (p Position) Adjacent(o Position) bool {
	return abs(p.Row-o.Row)+abs(p.Col-o.Col) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Grid is stored row-major. Once generated it is treated as immutable;
// play happens on a Clone.
type Grid struct {
	Matrix [][]Tag
}
