// Package setcover_test provides runnable, deterministic examples of the
// solver entry points with stable // Output: blocks.
package setcover_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/setcover/setcover"
)

// ExampleSolver_FindMinSetCover solves the five-weakness scenario; the
// dispatcher picks the exact solver since m·2ⁿ = 128.
func ExampleSolver_FindMinSetCover() {
	sets := [][]int{{0, 1, 2}, {3}, {0, 2, 4}, {3, 4}}
	weights := []float64{1, 1, 1, 1}

	s, err := setcover.New(5, sets, weights)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, err := s.FindMinSetCover()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Algorithm, c.Weight, c.Indices, c.Sets)
	// Output:
	// exact 2 [0 3] [[0 1 2] [3 4]]
}

// ExampleSolver_FindMinSetCoverGreedy shows a partial cover when one element
// appears in no set.
func ExampleSolver_FindMinSetCoverGreedy() {
	s, err := setcover.New(3, [][]int{{0}, {1}}, []float64{1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("coverable:", s.IsUniverseCoverable())

	c := s.FindMinSetCoverGreedy()
	fmt.Println(c.Weight, c.Indices, c.Complete)

	_, err = s.FindMinSetCoverExact()
	fmt.Println(errors.Is(err, setcover.ErrUncoverable))
	// Output:
	// coverable: false
	// 2 [0 1] false
	// true
}

// ExampleSolve forces the greedy heuristic on a small weighted instance.
func ExampleSolve() {
	sets := [][]int{{0, 1}, {2, 3}, {0, 1, 2}}
	weights := []float64{1, 1, 1.4}

	exact, _ := setcover.Solve(4, sets, weights, setcover.WithAlgorithm(setcover.Exact))
	greedy, _ := setcover.Solve(4, sets, weights, setcover.WithAlgorithm(setcover.Greedy))
	fmt.Printf("exact  %.1f %v\n", exact.Weight, exact.Indices)
	fmt.Printf("greedy %.1f %v\n", greedy.Weight, greedy.Indices)
	// Output:
	// exact  2.0 [0 1]
	// greedy 2.4 [2 1]
}
