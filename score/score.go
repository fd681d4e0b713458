// Package score turns a finished playthrough into percentages in [0,100].
//
// All rounding is half up: math.Floor(x + 0.5). Every input is an integer so
// exact ties only occur for the final average of two whole percentages.
package score

import "math"

type Result struct {
	EfficiencyPercent int
	FoodPercent       int
	FinalScore        int
}

// WorstCase is the step count at which efficiency bottoms out at 0.
func WorstCase(minSteps, totalCells int) int {
	return max(2*minSteps, 2*totalCells)
}

func Calculate(minSteps, actualSteps, collectedFood, totalFood, totalCells int) Result {
	efficiency := Efficiency(minSteps, actualSteps, totalCells)
	food := Food(collectedFood, totalFood)
	return Result{
		EfficiencyPercent: efficiency,
		FoodPercent:       food,
		FinalScore:        round(float64(efficiency+food) / 2),
	}
}

func Efficiency(minSteps, actualSteps, totalCells int) int {
	worst := WorstCase(minSteps, totalCells)
	// the boundary checks also keep worst-minSteps away from zero below
	var raw float64
	switch {
	case actualSteps <= minSteps:
		raw = 1
	case actualSteps >= worst:
		raw = 0
	default:
		raw = 1 - float64(actualSteps-minSteps)/float64(worst-minSteps)
	}
	return clamp(round(raw * 100))
}

// Food is 100 for a level without food.
func Food(collected, total int) int {
	if total <= 0 {
		return 100
	}
	return clamp(round(float64(collected) / float64(total) * 100))
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(n int) int {
	return max(0, min(100, n))
}
