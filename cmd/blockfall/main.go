package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/render"
	"github.com/lixenwraith/blockfall/terminal"
)

var version = "dev"

func main() {
	if err := newRootCmd(config.New()).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "blockfall",
		Short:        "Falling block puzzle for the terminal",
		Long:         "Steer falling pieces with a/d, rotate with w, drop with s, quit with q.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}
	return cmd
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	// The event reader restores the terminal if it panics
	term.SetSpawner(core.Go)
	if err := term.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	// Panic recovery restores the terminal before the stack trace is printed
	core.RegisterCrashTerminal(term)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: initialization failed, continuing without audio: %v", err)
	}
	defer sound.Cleanup()

	game := engine.NewGame(
		cfg.EngineOptions(),
		engine.NewMonotonicTimeProvider(),
		term,
		render.NewTerminalRenderer(term.Screen()),
		sound,
	)
	outcome := game.Run(ctx)
	log.Printf("game: finished %v score=%d lines=%d pieces=%d", outcome.Status, outcome.Score, outcome.Lines, outcome.Pieces)

	// Restore the terminal before printing so the message lands on the normal screen
	term.Fini()
	printOutcome(out, outcome)
	return nil
}

// printOutcome writes the exit message for a finished game
func printOutcome(w io.Writer, o engine.Outcome) {
	switch o.Status {
	case engine.StatusGameOver:
		color.New(color.FgRed, color.Bold).Fprintln(w, "GAME OVER")
	default:
		color.New(color.FgYellow).Fprintln(w, "Quit. Thanks for playing.")
	}
	fmt.Fprintf(w, "Score: %s  Lines: %d  Pieces: %d\n", color.CyanString("%d", o.Score), o.Lines, o.Pieces)
}
