package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateExamples(t *testing.T) {
	assert.Equal(t, Result{100, 100, 100}, Calculate(7, 7, 300, 300, 64))
	assert.Equal(t, Result{67, 100, 84}, Calculate(10, 20, 0, 0, 20))
}

func TestWorstCase(t *testing.T) {
	assert.Equal(t, 128, WorstCase(7, 64))
	assert.Equal(t, 100, WorstCase(50, 20))
}

func TestEfficiencyBoundaries(t *testing.T) {
	assert.Equal(t, 100, Efficiency(7, 7, 64))
	assert.Equal(t, 100, Efficiency(7, 3, 64))
	assert.Equal(t, 0, Efficiency(7, 128, 64))
	assert.Equal(t, 0, Efficiency(7, 500, 64))
	// worst case from minSteps, not cells
	assert.Equal(t, 0, Efficiency(50, 100, 20))
	assert.Equal(t, 50, Efficiency(50, 75, 20))
}

func TestEfficiencyZeroRange(t *testing.T) {
	assert.Equal(t, 100, Efficiency(0, 0, 0))
	assert.Equal(t, 0, Efficiency(0, 1, 0))
}

func TestFoodBoundaries(t *testing.T) {
	assert.Equal(t, 100, Food(0, 0))
	assert.Equal(t, 100, Food(600, 600))
	assert.Equal(t, 0, Food(0, 600))
	assert.Equal(t, 33, Food(100, 300))
	assert.Equal(t, 67, Food(200, 300))
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	for _, cells := range []int{64, 144, 1024} {
		for _, minSteps := range []int{1, 7, 30} {
			prev := 101
			for actual := minSteps; actual <= 2*cells+10; actual++ {
				r := Calculate(minSteps, actual, 0, 600, cells)
				assert.True(t, inRange(r.EfficiencyPercent) && inRange(r.FoodPercent) && inRange(r.FinalScore), "%+v", r)
				assert.LessOrEqual(t, r.EfficiencyPercent, prev, "min %d actual %d cells %d", minSteps, actual, cells)
				prev = r.EfficiencyPercent
			}
		}
	}

	prev := -1
	for collected := 0; collected <= 900; collected += 100 {
		r := Calculate(10, 40, collected, 900, 144)
		assert.True(t, inRange(r.FoodPercent))
		assert.GreaterOrEqual(t, r.FoodPercent, prev)
		prev = r.FoodPercent
	}
}

func TestFinalScoreRoundsHalfUp(t *testing.T) {
	// efficiency 67, food 100
	r := Calculate(10, 20, 0, 0, 20)
	assert.Equal(t, 84, r.FinalScore)
	// efficiency 100, food 33
	r = Calculate(5, 5, 100, 300, 64)
	assert.Equal(t, 67, r.FinalScore)
}

func inRange(n int) bool {
	return n >= 0 && n <= 100
}
