package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daedalus-games/theseus/internal/config"
	"github.com/daedalus-games/theseus/internal/game"
	"github.com/daedalus-games/theseus/internal/game/core"
	"github.com/daedalus-games/theseus/internal/game/events"
	"github.com/daedalus-games/theseus/internal/game/explorer"
	"github.com/daedalus-games/theseus/internal/input"
	"github.com/daedalus-games/theseus/internal/maze"
)

func main() {
	os.Exit(run())
}

func run() int {
	solver := flag.Bool("solver", false, "Enable auto mode: explore the maze automatically")
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seed := flag.Int64("seed", 0, "Explorer RNG seed (0 to use config default or the clock)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--solver] <maze filename> [<semicolon-separated move list>]\n", os.Args[0])
		return 1
	}

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		return 1
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *seed == 0 {
		*seed = cfg.Solver.Seed
	}

	setupLogging(*logLevel, cfg.Log.Format)

	m, err := maze.Load(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Failed to load maze")
		return 1
	}

	bus := events.NewBus()
	bus.SubscribeAll(events.NewLogHandler(log.Logger))

	session := game.NewSession(m.Grid, m.Player, m.Minotaur, m.Finish,
		game.WithLogger(log.Logger), game.WithBus(bus))

	seedVal := *seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seedVal).Msg("Explorer seed")
	auto := explorer.New(session, rand.New(rand.NewSource(seedVal)),
		explorer.WithMaxSteps(cfg.Solver.MaxSteps))

	var sources []input.Source
	if len(args) == 2 {
		script, err := input.NewScript(args[1])
		if err != nil {
			log.Error().Err(err).Msg("Invalid move list")
			return 1
		}
		sources = append(sources, script)
	}
	switch {
	case *solver:
		sources = append(sources, auto)
	case input.IsTerminal(os.Stdin):
		sources = append(sources, input.NewKeyboard(os.Stdin))
	}

	renderer := game.NewRenderer(os.Stdout, game.RenderOptions{
		Color:       cfg.Render.Color && !*noColor,
		ClearScreen: cfg.Render.ClearScreen,
	})

	outcome := game.NewLoop(session, input.NewChain(sources...), auto, renderer).Run()

	log.Info().
		Str("outcome", outcome.String()).
		Int("depth", session.Depth()).
		Str("moves", core.FormatMoves(session.Current().Moves)).
		Msg("Game finished")

	if outcome == game.OutcomeWin {
		return 0
	}
	return 1
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Frames go to stdout; logs stay on stderr.
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}
