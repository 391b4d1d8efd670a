// Command routeview routes the connectors of a class diagram scene file and
// prints the routes, or shows them in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"umlroute/diagram"
	"umlroute/export"
	"umlroute/importer"
	"umlroute/pathfinding"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	input    string
	format   string
	output   string
	cellSize float64
	anchors  string
	workers  int
	margin   int
	diagonal float64
	tui      bool
	watch    bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("routeview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "Input scene file (.yaml, .yml or .json)")
	fs.StringVar(&cfg.format, "f", "text", "Output format (text, json, yaml)")
	fs.StringVar(&cfg.output, "o", "", "Output file path (default: stdout)")
	fs.Float64Var(&cfg.cellSize, "cell", diagram.DefaultCellSize, "Grid cell size for scenes that set none")
	fs.StringVar(&cfg.anchors, "anchors", "corners", "Connector anchoring (corners, sides)")
	fs.IntVar(&cfg.workers, "workers", 0, "Connectors routed concurrently (default: GOMAXPROCS)")
	fs.IntVar(&cfg.margin, "margin", 0, "Extra cells of clearance around class boxes")
	fs.Float64Var(&cfg.diagonal, "diagonal", 0, "Diagonal step cost (default: sqrt 2)")
	fs.BoolVar(&cfg.tui, "tui", false, "Show the routing grid in the terminal")
	fs.BoolVar(&cfg.watch, "watch", false, "Route again whenever the scene file changes")
	fs.BoolVar(&cfg.verbose, "v", false, "Log every routed connector")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.input == "" && fs.NArg() > 0 {
		cfg.input = fs.Arg(0)
	}
	if cfg.input == "" {
		fs.Usage()
		return cfg, errors.New("input file required (-i)")
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if cfg.tui {
		// The screen owns the terminal.
		logger = slog.New(slog.DiscardHandler)
	}

	app, err := newApp(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.tui:
		err = app.view(ctx)
	case cfg.watch:
		err = app.watch(ctx, stdout)
	default:
		err = app.write(ctx, stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type app struct {
	cfg      config
	logger   *slog.Logger
	registry *importer.Registry
	router   *diagram.ConnectorRouter
	exporter export.Exporter
}

func newApp(cfg config, logger *slog.Logger) (*app, error) {
	anchors, err := diagram.ParseAnchorStrategy(cfg.anchors)
	if err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(cfg.format)
	if err != nil {
		return nil, err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return nil, err
	}

	router := diagram.NewConnectorRouter(
		diagram.WithAnchors(anchors),
		diagram.WithCellSize(cfg.cellSize),
		diagram.WithWorkers(cfg.workers),
		diagram.WithLogger(logger),
		diagram.WithRouteOptions(
			pathfinding.WithMargin(cfg.margin),
			pathfinding.WithDiagonalCost(cfg.diagonal),
		),
	)
	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: importer.NewRegistry(),
		router:   router,
		exporter: exporter,
	}, nil
}

// route loads the scene file and routes it.
func (a *app) route(ctx context.Context) (*diagram.Result, error) {
	d, err := a.registry.ImportFile(a.cfg.input)
	if err != nil {
		return nil, err
	}
	return a.router.Route(ctx, d)
}

// write routes the scene once and writes it to -o or stdout.
func (a *app) write(ctx context.Context, stdout io.Writer) error {
	res, err := a.route(ctx)
	if err != nil {
		return err
	}
	out, err := a.exporter.Export(res)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if a.cfg.output == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(a.cfg.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	a.logger.Info("wrote routes", "path", a.cfg.output)
	return nil
}

// watch writes the routes once and again after every change to the scene
// file. A scene that fails to load is logged and the previous output stands.
func (a *app) watch(ctx context.Context, stdout io.Writer) error {
	w, err := importer.NewWatcher(a.cfg.input)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := a.write(ctx, stdout); err != nil {
		a.logger.Error("route failed", "path", a.cfg.input, "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			if err := a.write(ctx, stdout); err != nil {
				a.logger.Error("route failed", "path", a.cfg.input, "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", "error", err)
		}
	}
}
