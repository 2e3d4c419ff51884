package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/adapter"
	"github.com/mmcdole/muse/internal/app"
	"github.com/mmcdole/muse/internal/backend"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/journal"
	"github.com/mmcdole/muse/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	configPath string
	replay     string
	record     bool
	headless   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:     "muse",
		Short:   "A terminal client for a local music library",
		Long:    "muse drives a music library backend over stdio and shows its library, queue and player in the terminal.",
		Version: Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				opts.headless = true
			}
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/muse/config.yaml)")
	root.Flags().StringVar(&opts.replay, "replay", "", "replay a recorded session instead of starting the backend")
	root.Flags().BoolVar(&opts.record, "record", false, "record push events to the journal")
	root.Flags().BoolVar(&opts.headless, "headless", false, "consume events without the TUI and print a summary")

	root.AddCommand(sessionsCmd(&opts))
	root.AddCommand(configCmd(&opts))
	return root
}

// setup loads config and installs the logger. The closer releases the log file.
func setup(configPath string) (*adapter.Config, *slog.Logger, io.Closer, error) {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
		closer = io.NopCloser(nil)
	}
	slog.SetDefault(logger)
	return cfg, logger, closer, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger, closer, err := setup(opts.configPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting muse", "version", Version, "headless", opts.headless, "replay", opts.replay)

	var j *journal.Journal
	if opts.replay != "" || opts.record || cfg.Journal.Record {
		path, err := adapter.ExpandHome(cfg.Journal.Path)
		if err != nil {
			return err
		}
		if j, err = journal.Open(path); err != nil {
			return err
		}
		defer j.Close()
	}

	var recorder app.Recorder
	if j != nil && (opts.record || cfg.Journal.Record) {
		rec, err := j.NewSession(nowFunc())
		if err != nil {
			return fmt.Errorf("failed to start recording: %w", err)
		}
		logger.Info("recording session", "session", rec.ID())
		recorder = rec
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// A replay drives the client from the journal and never reaches a backend
	var (
		requester domain.Requester
		source    tui.Source
		stop      func() error
	)
	if opts.replay != "" {
		requester = backend.Logging(backend.Discard, logger)
		events, errFn := replayEvents(ctx, j, opts.replay)
		source = tui.Source{Events: events, Err: errFn}
		stop = func() error { return nil }
	} else {
		proc, err := backend.Start(ctx, cfg.Backend.Command, cfg.Backend.Args, logger)
		if err != nil {
			return err
		}
		requester = backend.Logging(proc, logger)
		source = tui.Source{Events: proc.Listen(ctx), Err: proc.Err}
		stop = proc.Stop
	}

	a := app.New(app.Options{
		Requester:    requester,
		AlbumColumns: cfg.UI.AlbumColumns,
		Recorder:     recorder,
		Logger:       logger,
	})
	seedTheme(a, cfg.UI.Theme)
	a.Start()

	if opts.headless {
		err = runHeadless(ctx, a, source, out)
	} else {
		err = runTUI(a, source, logger)
	}
	cancel()
	if stopErr := stop(); stopErr != nil {
		logger.Warn("backend shutdown", "error", stopErr)
	}

	logger.Info("shutting down", "events", a.Events())
	return err
}

func runTUI(a *app.App, source tui.Source, logger *slog.Logger) error {
	p := tea.NewProgram(
		tui.NewModel(a, source, logger),
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// seedTheme applies the locally configured theme until the backend sends its own
func seedTheme(a *app.App, theme string) {
	for _, t := range []domain.Theme{domain.ThemeLight, domain.ThemeDark, domain.ThemeSystem, domain.ThemeCustom} {
		if strings.EqualFold(theme, string(t)) {
			a.Session.Config.Theme = t
			return
		}
	}
}
