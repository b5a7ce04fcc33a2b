package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tenpair/internal/config"
	"tenpair/internal/core"
	"tenpair/internal/games/tenpair"
	"tenpair/internal/platform/tui"
	"tenpair/internal/registry"
	"tenpair/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRows       int
	flagCols       int
	flagLevel      int
	flagNoSetup    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tenpair).

Controls:
  Arrows/WASD/hjkl - Move cursor
  Enter/Space      - Select cell (two selections summing to 10 clear)
  Mouse click      - Select cell directly
  [ / ]            - Lower / raise level (rebuilds the board)
  N                - Next level (after clearing the board)
  P                - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower pair spawning
  normal - Default spawn cadence
  hard   - Faster pair spawning
  fixed  - Spawn interval does not shorten with level

Examples:
  tenpair play
  tenpair play tenpair_zen
  tenpair play --rows 8 --cols 10 --level 3
  tenpair play --difficulty hard
  tenpair play --config ./my-tenpair.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = config default)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = config default)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = config default)")
	playCmd.Flags().BoolVar(&flagNoSetup, "no-setup", false, "Skip the board setup selector")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tenpair"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tenpair list' to see available modes.")
		os.Exit(1)
	}

	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size early for the setup selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Rows:     flagRows,
		Cols:     flagCols,
		Level:    flagLevel,
	}

	tenpair.SetConfigPath(flagConfig)
	tenpair.SetDifficultyPreset(flagDifficulty)

	// Show the board setup selector unless dimensions were given on the
	// command line.
	if !flagNoSetup && flagRows == 0 && flagCols == 0 && flagLevel == 0 {
		gameCfg, cfgErr := config.Load(flagConfig)
		if cfgErr != nil {
			gameCfg = config.DefaultTenpairConfig()
		}

		setup, updatedCfg, selErr := tui.RunSetupSelector(gameCfg, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if setup == nil {
			return
		}
		cfg = updatedCfg
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
