package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/embedtools/archlint/internal/cli/config"
	"github.com/embedtools/archlint/internal/cli/output"
	"github.com/embedtools/archlint/internal/engine"
	"github.com/embedtools/archlint/internal/report"
	"github.com/embedtools/archlint/internal/state"
	"github.com/embedtools/archlint/pkg/descriptor"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <archive>...",
		Short: "Validate firmware archives",
		Long: `Validate one or more firmware archives (zip files or directories).

Multiple archives form a layered view: later arguments override files
from earlier ones, so a patch archive can be checked on top of a base
release without repacking.

The command exits non-zero when any project or script fails.`,
		Example: `  # Validate a release archive
  archlint validate firmware-v2.1.zip

  # Check a patch layered over the base release
  archlint validate base.zip patch.zip

  # Re-validate on every change, serving the HTML report
  archlint validate ./extracted --watch --serve :8080`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	engCfg, err := engineConfig(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	runOnce := func() (engine.Result, error) {
		started := time.Now().UTC()
		ns, err := engine.BuildNamespace(args)
		if err != nil {
			return engine.Result{}, err
		}
		defer ns.Close()

		eng, err := engine.New(ns, engCfg, cmdCtx.Logger)
		if err != nil {
			return engine.Result{}, err
		}
		res := eng.Run()

		if store != nil {
			if _, err := store.RecordRun(started, args, res); err != nil {
				cmdCtx.Logger.Warn("failed to record run", "error", err)
			}
		}
		return res, nil
	}

	if cfg.Watch || cfg.ServeAddr != "" {
		return runContinuous(cmd, cmdCtx, args, runOnce)
	}

	res, err := runOnce()
	if err != nil {
		return err
	}
	if err := renderResult(cmdCtx.Renderer, args, res); err != nil {
		return err
	}
	if !res.Summary.Passed() {
		return fmt.Errorf("validation failed with %d findings", len(res.Findings))
	}
	return nil
}

// runContinuous runs watch and/or serve mode until interrupted. The
// process exit code reflects interruption, not the last verdict; the
// rendered report carries the verdict.
func runContinuous(cmd *cobra.Command, cmdCtx *CommandContext, args []string, runOnce func() (engine.Result, error)) error {
	cfg := cmdCtx.Cfg

	var latest atomic.Value
	latest.Store([]byte("<!DOCTYPE html><p>No run completed yet.</p>"))

	rerun := func() {
		res, err := runOnce()
		if err != nil {
			cmdCtx.Logger.Error("validation run failed", "error", err)
			cmdCtx.Renderer.Errorln("error:", err)
			return
		}
		rep := report.New(args, res)
		latest.Store(report.HTML(rep))
		report.WriteText(cmdCtx.Renderer.Writer(), rep, cmdCtx.Renderer.Styles())
	}
	rerun()

	g, ctx := errgroup.WithContext(cmd.Context())
	if cfg.ServeAddr != "" {
		g.Go(func() error {
			return engine.Serve(ctx, cmdCtx.Logger, cfg.ServeAddr, func() []byte {
				return latest.Load().([]byte)
			})
		})
	}
	if cfg.Watch {
		g.Go(func() error {
			return engine.Watch(ctx, cmdCtx.Logger, watchDirs(args), 0, rerun)
		})
	}
	return g.Wait()
}

// watchDirs maps archive arguments to filesystem directories to watch.
// Directory sources are watched directly; for zip files the containing
// directory is watched so repacking triggers a re-run.
func watchDirs(args []string) []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, arg := range args {
		dir := arg
		if info, err := os.Stat(arg); err != nil || !info.IsDir() {
			dir = filepath.Dir(arg)
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

func renderResult(r *output.Renderer, args []string, res engine.Result) error {
	rep := report.New(args, res)
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rep)
	case output.ModeYAML:
		return r.YAML(rep)
	default:
		report.WriteText(r.Writer(), rep, r.Styles())
		return nil
	}
}

func engineConfig(cfg *config.Config) (engine.Config, error) {
	engCfg := engine.Config{
		Pedantic:     cfg.Pedantic,
		ForceCubeIDE: cfg.ForceCubeIDE,
		ExcludeCodes: cfg.ExcludeCodes,
		SkipPatterns: cfg.SkipPatterns,
	}
	if cfg.SysmemReference != "" {
		content, err := os.ReadFile(cfg.SysmemReference)
		if err != nil {
			return engine.Config{}, fmt.Errorf("reading sysmem reference: %w", err)
		}
		engCfg.SysmemHash = descriptor.SysmemHash(content)
	}
	return engCfg, nil
}

// openStore opens the run-history store, creating its directory if
// needed. An empty state path disables history.
func openStore(cfg *config.Config) (*state.Store, error) {
	if cfg.StatePath == "" {
		return nil, nil
	}
	store, err := state.Open(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	return store, nil
}
