package model

// Clamp forces one grid dimension into [MinSize, MaxSize].
func Clamp(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

func NewGrid(rows, cols int) *Grid {
	rows, cols = Clamp(rows), Clamp(cols)
	matrix := make([][]Tag, 0, rows)
	for r := 0; r < rows; r++ {
		matrix = append(matrix, make([]Tag, cols))
	}
	return &Grid{Matrix: matrix}
}

func (g *Grid) Rows() int {
	return len(g.Matrix)
}

func (g *Grid) Cols() int {
	if len(g.Matrix) == 0 {
		return 0
	}
	return len(g.Matrix[0])
}

func (g *Grid) Cells() int {
	return g.Rows() * g.Cols()
}

func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// At returns Wall for positions outside the grid.
func (g *Grid) At(p Position) Tag {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Matrix[p.Row][p.Col]
}

func (g *Grid) Set(p Position, t Tag) bool {
	if !g.InBounds(p) {
		return false
	}
	g.Matrix[p.Row][p.Col] = t
	return true
}

func (g *Grid) ForEachCell(fn func(p Position, t Tag)) {
	for r, row := range g.Matrix {
		for c, t := range row {
			fn(Position{Row: r, Col: c}, t)
		}
	}
}

func (g *Grid) Count(t Tag) int {
	n := 0
	g.ForEachCell(func(_ Position, tag Tag) {
		if tag == t {
			n++
		}
	})
	return n
}

// Clone copies every row; the result shares no memory with g.
func (g *Grid) Clone() *Grid {
	matrix := make([][]Tag, 0, len(g.Matrix))
	for _, row := range g.Matrix {
		matrix = append(matrix, append([]Tag(nil), row...))
	}
	return &Grid{Matrix: matrix}
}

func TotalFoodValue(g *Grid) int {
	total := 0
	g.ForEachCell(func(_ Position, t Tag) {
		total += t.Value()
	})
	return total
}
