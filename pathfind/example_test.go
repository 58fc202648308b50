// File: pathfind/example_test.go
package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// ExampleSolve solves a small walled maze with A*.
//
//	S . # .
//	. . # .
//	# . . G
func ExampleSolve() {
	m, err := maze.ParseString("S.#.\n..#.\n#..G\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := pathfind.Solve(m, pathfind.AStar)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found, "cells:", res.PathLength)
	fmt.Println("path:", res.Path)

	// Output:
	// found: true cells: 6
	// path: [{0 0} {1 0} {1 1} {2 1} {2 2} {2 3}]
}

// ExampleCompare runs every strategy on the same open grid.
func ExampleCompare() {
	g, _ := maze.FromInts([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	m, _ := maze.NewMaze(g, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2})

	c, _ := pathfind.Compare(m)
	for _, r := range c.Runs {
		fmt.Printf("%-8s cells=%d expanded=%d\n", r.Result.Strategy.Name(), r.Result.PathLength, r.Result.Expanded)
	}

	// Output:
	// dfs      cells=9 expanded=9
	// bfs      cells=5 expanded=9
	// astar    cells=5 expanded=9
	// dijkstra cells=5 expanded=9
}
