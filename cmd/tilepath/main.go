// Command tilepath finds shortest paths on tile maps from the terminal.
//
//	tilepath -map maps/rooms.yaml
//	tilepath -start 0,0 -goal 39,23 -seed 7
//	tilepath -map maps/rooms.yaml -tui
//	tilepath -batch 1000 -seed 7
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pdrpinto/tilepath"
	"github.com/pdrpinto/tilepath/grid"
	"github.com/pdrpinto/tilepath/internal/config"
	"github.com/pdrpinto/tilepath/render"
)

var errUsage = errors.New("usage")

type options struct {
	configPath string
	mapPath    string
	start      string
	goal       string
	seed       int64
	tui        bool
	batch      int
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("tilepath", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.mapPath, "map", "", "YAML map file (overrides map.path)")
	fs.StringVar(&opts.start, "start", "", "start cell as x,y")
	fs.StringVar(&opts.goal, "goal", "", "goal cell as x,y")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for random maps and batches (overrides map.seed)")
	fs.BoolVar(&opts.tui, "tui", false, "step through the search in the terminal")
	fs.IntVar(&opts.batch, "batch", 0, "solve this many random queries and report totals")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return opts, nil
}

func parsePoint(s string) (tilepath.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return tilepath.Point{}, fmt.Errorf("%w: point %q is not x,y", errUsage, s)
	}
	px, errX := strconv.Atoi(strings.TrimSpace(x))
	py, errY := strconv.Atoi(strings.TrimSpace(y))
	if errX != nil || errY != nil {
		return tilepath.Point{}, fmt.Errorf("%w: point %q is not x,y", errUsage, s)
	}
	return tilepath.Point{X: px, Y: py}, nil
}

// loadMap resolves the map and the endpoints from flags, the map file and the
// config, in that order of precedence.
func loadMap(cfg *config.Config, opts *options) (*grid.Map, error) {
	path := cfg.Map.Path
	if opts.mapPath != "" {
		path = opts.mapPath
	}

	var m *grid.Map
	if path != "" {
		var err error
		if m, err = grid.Load(path); err != nil {
			return nil, err
		}
	} else {
		layout := cfg.Map.Random()
		if opts.seed != 0 {
			layout.Seed = opts.seed
		}
		corner := tilepath.Point{X: layout.Width - 1, Y: layout.Height - 1}
		layout.Keep = []tilepath.Point{{X: 0, Y: 0}, corner}
		origin := tilepath.Point{}
		m = &grid.Map{Name: "random", Tiles: grid.Random(layout), Start: &origin, Goal: &corner}
	}

	for _, endpoint := range []struct {
		flag string
		dst  **tilepath.Point
	}{{opts.start, &m.Start}, {opts.goal, &m.Goal}} {
		if endpoint.flag == "" {
			continue
		}
		p, err := parsePoint(endpoint.flag)
		if err != nil {
			return nil, err
		}
		*endpoint.dst = &p
	}
	if m.Start == nil || m.Goal == nil {
		return nil, fmt.Errorf("%w: map has no start or goal; pass -start and -goal", errUsage)
	}
	return m, nil
}

func run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	m, err := loadMap(cfg, opts)
	if err != nil {
		return err
	}

	switch {
	case opts.batch > 0:
		return runBatch(ctx, stdout, cfg, m, opts)
	case opts.tui:
		return runViewer(ctx, cfg, m)
	}

	started := time.Now()
	result, err := tilepath.NewPathFinder(m.Tiles).Search(ctx, *m.Start, *m.Goal)
	if err != nil {
		return err
	}
	logger.Printf("search %v -> %v: %s after %d expansions in %v",
		*m.Start, *m.Goal, result.State, result.ExpandedNodes, time.Since(started))

	fmt.Fprintln(stdout, render.Text(m.Tiles, render.Overlay{Start: *m.Start, Goal: *m.Goal, Path: result.Path}))
	if !result.Found() {
		fmt.Fprintf(stdout, "no path (%s)\n", result.State)
		return nil
	}
	fmt.Fprintf(stdout, "cost %d, %d cells:", result.TotalCost, len(result.Path))
	for _, p := range result.Path {
		fmt.Fprintf(stdout, " %v", p)
	}
	fmt.Fprintln(stdout)
	return nil
}

func runBatch(ctx context.Context, stdout io.Writer, cfg *config.Config, m *grid.Map, opts *options) error {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	width, height := m.Tiles.Width(), m.Tiles.Height()
	queries := make([]tilepath.Query, opts.batch)
	for i := range queries {
		queries[i] = tilepath.Query{
			Start: tilepath.Point{X: rng.Intn(width), Y: rng.Intn(height)},
			Goal:  tilepath.Point{X: rng.Intn(width), Y: rng.Intn(height)},
		}
	}

	started := time.Now()
	results, err := tilepath.FindPaths(ctx, m.Tiles, queries, cfg.Search.SearchOptions()...)
	if err != nil {
		return err
	}
	counts := map[tilepath.State]int{}
	expanded := 0
	for _, r := range results {
		counts[r.State]++
		expanded += r.ExpandedNodes
	}
	fmt.Fprintf(stdout, "%d queries in %v: %d found, %d exhausted, %d rejected, %d expansions\n",
		len(results), time.Since(started).Round(time.Microsecond),
		counts[tilepath.Found], counts[tilepath.Exhausted], counts[tilepath.Rejected], expanded)
	return nil
}

func runViewer(ctx context.Context, cfg *config.Config, m *grid.Map) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return render.NewViewer(screen, m.Tiles, *m.Start, *m.Goal, cfg.Server.StepInterval).Run(ctx)
}

func main() {
	logger := log.New(os.Stderr, "tilepath: ", 0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			logger.Println(err)
			os.Exit(2)
		}
		logger.Fatal(err)
	}
}
