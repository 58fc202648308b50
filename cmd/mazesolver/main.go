// Command mazesolver generates grid mazes, solves them with one of four search
// strategies and keeps a history of past runs.
//
//	mazesolver solve    [-strategy astar] [-visited] [-trace] [common flags]
//	mazesolver compare  [common flags]
//	mazesolver generate [-out maze.yaml] [common flags]
//	mazesolver history  [-clear] [-config file.yaml]
//
// Common flags: -config, -maze, -gen, -rows, -cols, -seed. Precedence, highest
// first: flags, MAZE_* environment variables, .env, the config file, defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = "usage: mazesolver <solve|compare|generate|history> [flags]"

var errUsage = errors.New("mazesolver: bad usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Printf("[MAZE] [ERROR] %v", err)
		os.Exit(1)
	}
}

// run dispatches args[0] to its subcommand, writing results to out.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", errUsage, usage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "solve":
		return runSolve(rest, out)
	case "compare":
		return runCompare(rest, out)
	case "generate":
		return runGenerate(rest, out)
	case "history":
		return runHistory(rest, out)
	case "help", "-h", "-help", "--help":
		_, err := fmt.Fprintln(out, usage)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q; %s", errUsage, cmd, usage)
	}
}
