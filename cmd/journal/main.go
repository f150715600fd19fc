package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/journal/internal/adapters/fs"
	logAdapter "github.com/bft-labs/journal/internal/adapters/log"
	"github.com/bft-labs/journal/internal/app"
	"github.com/bft-labs/journal/internal/cliconfig"
	"github.com/bft-labs/journal/internal/domain"
	"github.com/bft-labs/journal/internal/ports"
)

const longHelp = `Keep a numbered journal and write it to a text file.

Each entry is numbered from a shared counter and written as "<n>: <text>",
one per line. The output file is replaced on every run. With --snapshot the
journal is resumed from a JSON snapshot so numbering continues across runs.
With --watch the journal is rewritten whenever the config file changes.`

var exampleUsage = strings.TrimSpace(`
  journal
  journal --title "Dear Diary" --entry "I ate a bug" --entry "I cried today" --out diary.txt
  journal --snapshot ~/.journal/diary.json --entry "I laughed"
  journal --config ./journal.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// loadConfig layers defaults, config file, environment and flags, in that order of precedence.
func loadConfig(base cliconfig.Config, cfgFile string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&cfg, fc, changed)
	}

	cliconfig.ApplyEnvConfig(&cfg, changed)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Watch && (cfgFile == "" || !cliconfig.FileExists(cfgFile)) {
		return cfg, fmt.Errorf("%w: watch requires a config file, %q not found", domain.ErrInvalidConfig, cfgFile)
	}
	return cfg, nil
}

func newService(cfg cliconfig.Config, logger ports.Logger) *app.Service {
	var snapshots ports.SnapshotRepository
	if cfg.SnapshotPath != "" {
		snapshots = fs.NewSnapshotFileRepository(cfg.SnapshotPath)
	}
	return app.NewService(fs.NewTextWriter(fs.DefaultFileMode, logger), snapshots, logger)
}

func render(ctx context.Context, cfg cliconfig.Config, logger ports.Logger) error {
	_, err := newService(cfg, logger).Render(ctx, app.Request{
		Title:   cfg.Title,
		Entries: cfg.Entries,
		Output:  cfg.Output,
	})
	return err
}

// newRootCmd builds the journal command. log is replaced once the configured
// level is known, so the caller's error log honors --log-level.
func newRootCmd(log *zerolog.Logger) *cobra.Command {
	flagCfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "journal",
		Short:         "Keep a numbered journal and write it to a text file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfg, err := loadConfig(flagCfg, cfgFile, changed)
			if err != nil {
				return err
			}

			*log = cliconfig.NewLogger(cmd.ErrOrStderr(), cfg.Level())
			logger := logAdapter.NewZerologAdapterWithLogger(*log)
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if err := render(ctx, cfg, logger); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				select {
				case <-sigCh:
					log.Info().Msg("received signal, stopping...")
					cancel()
				case <-ctx.Done():
				}
			}()

			reload := func(ctx context.Context) error {
				next, err := loadConfig(flagCfg, cfgFile, changed)
				if err != nil {
					return err
				}
				if next.SnapshotPath != "" {
					return fmt.Errorf("watch: snapshot cannot be enabled while watching")
				}
				return render(ctx, next, logger)
			}

			return app.NewConfigWatcher(cfgFile, app.DefaultDebounce, reload, logger).Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.journal/config.toml)")
	root.Flags().StringVar(&flagCfg.Title, "title", flagCfg.Title, "journal title")
	root.Flags().StringArrayVar(&flagCfg.Entries, "entry", flagCfg.Entries, "entry text (repeatable)")
	root.Flags().StringVarP(&flagCfg.Output, "out", "o", flagCfg.Output, "output text file (replaced on every run)")
	root.Flags().StringVar(&flagCfg.SnapshotPath, "snapshot", flagCfg.SnapshotPath, "JSON snapshot used to resume numbering across runs")
	root.Flags().BoolVar(&flagCfg.Watch, "watch", flagCfg.Watch, "rewrite the journal whenever the config file changes")
	root.Flags().StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}

func main() {
	log := cliconfig.Logger()

	if err := newRootCmd(&log).Execute(); err != nil {
		log.Error().Err(err).Msg("journal")
		os.Exit(1)
	}
}
