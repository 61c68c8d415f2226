package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"mcpregistry/internal/config"
	"mcpregistry/internal/duckdb"
	"mcpregistry/internal/report"
	"mcpregistry/internal/runner"
	"mcpregistry/internal/ui/summary"
	"mcpregistry/internal/validator"
)

var (
	// defaultServersDir locates the servers directory beside the executable.
	defaultServersDir = runner.DefaultServersDir
	// runDependencies supplies run ids and clocks to the runner.
	runDependencies = runner.RunDependencies{}
)

// runValidate parses arguments, validates the targets, and writes outputs.
func runValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printUsage(stderr)
		return ExitUsage
	}

	if opts.init {
		return runInit(opts, stdout, stderr)
	}

	settings, settingsPath, err := loadSettings(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Settings invalid:\n%v\n", err)
		return ExitUsage
	}
	if err := applyFlags(&settings, opts); err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printUsage(stderr)
		return ExitUsage
	}

	logger := newLogger(opts.verbose, stderr)
	if settingsPath != "" {
		logger.Debug("settings loaded", "path", settingsPath)
	}
	noColor := !useColor(settings.Output.NoColor, stdout)
	ctx := context.Background()

	var schema *validator.Schema
	if settings.Schema != "" {
		schema, err = validator.LoadSchema(settings.Schema)
		if err != nil {
			fmt.Fprintf(stderr, "load schema failed: %v\n", err)
			return ExitError
		}
		logger.Debug("schema loaded", "path", schema.Path())
	}

	plan, code, ok := resolvePlan(opts.path, settings.ServersDir, stdout, stderr, noColor)
	if !ok {
		return code
	}

	var store *duckdb.Store
	if settings.History.Path != "" {
		store, err = duckdb.Open(ctx, settings.History.Path)
		if err != nil {
			fmt.Fprintf(stderr, "open history failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = store.Close() }()
	}

	var history *summary.History
	if settings.Output.Summary && store != nil {
		history, err = previousRun(ctx, store, plan.Target)
		if err != nil {
			fmt.Fprintf(stderr, "read history failed: %v\n", err)
			return ExitError
		}
	}

	printer := &textPrinter{w: stdout, mode: plan.Mode, noColor: noColor}
	var observer runner.RunObserver
	if settings.Output.Format == config.FormatText {
		observer = printer
	}
	schemaPath := ""
	if schema != nil {
		schemaPath = schema.Path()
	}
	v := validator.New(validator.WithSchema(schema), validator.WithLogger(logger))
	results, err := runner.Run(ctx, plan, v, runner.RunParams{
		Schema:   schemaPath,
		Observer: observer,
		Logger:   logger,
		Deps:     runDependencies,
	})
	if err != nil {
		fmt.Fprintf(stderr, "validation run failed: %v\n", err)
		return ExitError
	}

	exitCode := ExitOK
	if !results.OK() {
		exitCode = ExitError
	}

	switch settings.Output.Format {
	case config.FormatJSON:
		payload, err := report.MarshalResults(results)
		if err != nil {
			fmt.Fprintf(stderr, "encode results failed: %v\n", err)
			return ExitError
		}
		_, _ = stdout.Write(payload)
	default:
		printer.finish(results)
	}

	if !writeOutputs(ctx, settings, results, store, history, logger, stderr) {
		exitCode = ExitError
	}

	if settings.Output.Summary && settings.Output.Format == config.FormatText {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, summary.Render(results, summary.Options{NoColor: noColor, History: history}))
	}
	return exitCode
}

// resolvePlan turns the positional path or servers directory into a plan.
// Missing targets are reported on stdout.
func resolvePlan(path, serversDir string, stdout, stderr io.Writer, noColor bool) (runner.Plan, int, bool) {
	if path != "" {
		plan, err := runner.PlanFile(path)
		if errors.Is(err, runner.ErrFileNotFound) {
			printResolutionError(stdout, "File not found: "+path, noColor)
			return runner.Plan{}, ExitError, false
		}
		if err != nil {
			fmt.Fprintf(stderr, "resolve targets failed: %v\n", err)
			return runner.Plan{}, ExitError, false
		}
		return plan, ExitOK, true
	}

	dir := strings.TrimSpace(serversDir)
	if dir == "" {
		resolved, err := defaultServersDir()
		if err != nil {
			fmt.Fprintf(stderr, "resolve targets failed: %v\n", err)
			return runner.Plan{}, ExitError, false
		}
		dir = resolved
	}
	plan, err := runner.PlanDir(dir)
	if errors.Is(err, runner.ErrDirNotFound) {
		printResolutionError(stdout, "Servers directory not found: "+dir, noColor)
		return runner.Plan{}, ExitError, false
	}
	if err != nil {
		fmt.Fprintf(stderr, "resolve targets failed: %v\n", err)
		return runner.Plan{}, ExitError, false
	}
	return plan, ExitOK, true
}

// writeOutputs writes reports and history. It reports false when any sink
// failed; every sink is still attempted.
func writeOutputs(ctx context.Context, settings config.Settings, results runner.Results, store *duckdb.Store, history *summary.History, logger *slog.Logger, stderr io.Writer) bool {
	ok := true
	if path := settings.Report.JSON; path != "" {
		if err := report.WriteJSON(path, results); err != nil {
			fmt.Fprintf(stderr, "write report failed: %v\n", err)
			ok = false
		} else {
			logger.Debug("json report written", "path", path)
		}
	}
	if path := settings.Report.HTML; path != "" {
		if err := report.WriteHTML(ctx, path, results); err != nil {
			fmt.Fprintf(stderr, "write report failed: %v\n", err)
			ok = false
		} else {
			logger.Debug("html report written", "path", path)
		}
	}
	if store != nil {
		if err := store.RecordRun(ctx, results); err != nil {
			fmt.Fprintf(stderr, "record history failed: %v\n", err)
			return false
		}
		logger.Debug("run recorded", "run_id", results.RunID, "history", settings.History.Path)
		if history != nil {
			counts, err := store.FailureCounts(ctx)
			if err != nil {
				fmt.Fprintf(stderr, "read history failed: %v\n", err)
				return false
			}
			history.FailureCounts = counts
		}
	}
	return ok
}

// previousRun loads the latest recorded run for target into summary form.
func previousRun(ctx context.Context, store *duckdb.Store, target string) (*summary.History, error) {
	history := &summary.History{Statuses: map[string]string{}, FailureCounts: map[string]int{}}
	last, found, err := store.LastRun(ctx, target)
	if err != nil || !found {
		return history, err
	}
	outcomes, err := store.Outcomes(ctx, last.RunID)
	if err != nil {
		return nil, err
	}
	history.PreviousRunID = last.RunID
	history.PreviousAt = last.StartedAt
	history.Previous = last.Summary
	for _, outcome := range outcomes {
		history.Statuses[outcome.Name] = outcome.Status
	}
	return history, nil
}

// runInit scaffolds a settings file at --config or in the working directory.
func runInit(opts options, stdout, stderr io.Writer) int {
	if opts.path != "" {
		fmt.Fprintln(stderr, "invalid arguments: --init does not take a path")
		printUsage(stderr)
		return ExitUsage
	}
	path := strings.TrimSpace(opts.configPath)
	if path == "" {
		path = config.FileName
	}
	if err := config.Scaffold(path); err != nil {
		fmt.Fprintf(stderr, "init failed: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Created %s and %s\n", path, filepath.Join(filepath.Dir(path), "schemas", "server.schema.json"))
	return ExitOK
}
