// tenpair is a terminal puzzle where you clear a numeric board by
// picking pairs of cells that sum to ten.
//
// Usage:
//
//	tenpair list              - List available modes
//	tenpair play [mode]       - Play a mode (default: tenpair)
//	tenpair menu              - Start interactive mode picker
//	tenpair serve             - Start SSH server for remote play
//	tenpair scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.tenpair/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "tenpair/internal/games/tenpair"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tenpair",
	Short: "Tenpair - clear the board by pairing tokens that sum to ten",
	Long: `Tenpair is a terminal puzzle game. The board holds numeric tokens;
select two cells whose values sum to ten to clear them both. In classic
mode new pairs keep spawning on a timer that shortens with level, so
clear fast. The board is won when every cell is empty.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tenpair list
  tenpair play
  tenpair play tenpair_zen
  tenpair play --rows 8 --cols 10 --level 3
  tenpair menu
  tenpair serve --ssh :2222
  tenpair scores tenpair`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tenpair/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
