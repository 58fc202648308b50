// Package mazepath finds routes through rectangular grid mazes and lets you
// watch four classic search strategies race over the same walls.
//
// 🚀 What is mazepath?
//
//	A small, deterministic toolkit that brings together:
//		• Maze model: Open/Wall cells, start & goal, text and YAML formats
//		• Search: Depth-First, Breadth-First, A* (Manhattan) and Dijkstra
//		• Statistics: path, expanded cells and visit order for every run
//		• Generators: seeded random walk and Wilson's uniform spanning tree
//		• CLI: solve, compare, generate and a persistent run history
//
// ✨ Why mazepath?
//
//   - Deterministic: same maze, same strategy, same result, every time
//   - Per-call state: Solve shares nothing between calls, so concurrent
//     solves over one maze are safe
//   - Hooks: WithOnExpand lets you trace a search without touching it
//
// Packages:
//
//	maze/          Grid, Cell, Maze, parsing & formatting, YAML maze files
//	pathfind/      Solve, Strategy, SearchResult, Compare
//	mazegen/       Walk and Wilson generators, functional options
//	render/        text rendering of mazes, results, comparisons and history
//	config/        YAML + .env + MAZE_* environment configuration
//	history/       bounded run log on a gdata flat-file store
//	cmd/mazesolver the command-line front end
//
// Quick ASCII example:
//
//	S.#.        S.#.
//	..#.   →    **#.
//	#..G        #**G
//
//	A* finds the 6-cell route from S to G.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazesolver@latest
package mazepath
