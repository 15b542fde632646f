package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/latt/internal/adapters/detector"
	"go.trai.ch/latt/internal/adapters/tui"
	"golang.org/x/sync/errgroup"
)

// statusInterval is how often the linear watch mode logs lattice progress.
const statusInterval = 5 * time.Second

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	OutputMode string
}

// WithRoots returns a copy of the pipeline watching the given roots instead
// of the configured ones.
func (p *Pipeline) WithRoots(roots []string) *Pipeline {
	clone := *p
	clone.cfg.Roots = roots
	return &clone
}

// Watch runs the pipeline until the context is canceled or the dashboard is
// quit. Roots passed as arguments override the configured ones.
func (c *Components) Watch(ctx context.Context, roots []string, opts WatchOptions) error {
	pipeline := c.Pipeline
	if len(roots) > 0 {
		pipeline = pipeline.WithRoots(roots)
	}

	if err := pipeline.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = pipeline.Shutdown()
	}()

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if mode == detector.ModeTUI {
		return c.watchTUI(ctx, pipeline)
	}
	return c.watchLinear(ctx, pipeline)
}

// watchTUI runs the live dashboard until quit.
func (c *Components) watchTUI(ctx context.Context, pipeline *Pipeline) error {
	program := tea.NewProgram(
		tui.NewModel(pipeline.Lattice()),
		tea.WithContext(ctx),
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := program.Run()
		if err != nil && ctx.Err() != nil {
			// Canceled by signal; not a failure.
			return nil
		}
		return err
	})
	return g.Wait()
}

// watchLinear logs lattice progress periodically until canceled.
func (c *Components) watchLinear(ctx context.Context, pipeline *Pipeline) error {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := pipeline.Lattice().Stats()
			c.Logger.Info(fmt.Sprintf(
				"lattice: %d values, next id %d, %d high usage",
				stats.TotalValues, stats.NextID, stats.HighUsageValues,
			))
		}
	}
}

// StatsOptions configuration for the Stats method.
type StatsOptions struct {
	Limit int
}

// Stats performs a one-shot scan of the roots and prints lattice and derived
// statistics to out.
func (c *Components) Stats(ctx context.Context, roots []string, out io.Writer, opts StatsOptions) error {
	pipeline := c.Pipeline
	if len(roots) > 0 {
		pipeline = pipeline.WithRoots(roots)
	}

	if err := pipeline.Scan(ctx); err != nil {
		return err
	}

	stats := pipeline.Lattice().Stats()
	fmt.Fprintf(out, "values:      %d\n", stats.TotalValues)
	fmt.Fprintf(out, "next id:     %d\n", stats.NextID)
	fmt.Fprintf(out, "high usage:  %d\n", stats.HighUsageValues)

	top := pipeline.Lattice().TopValues(opts.Limit)
	if len(top) > 0 {
		fmt.Fprintf(out, "\n%6s  %-20s %8s  %s\n", "ID", "VALUE", "COUNT", "FILES")
		for _, entry := range top {
			fmt.Fprintf(out, "%6d  %-20s %8d  %d\n", entry.ID, entry.Text, entry.UsageCount, len(entry.Locations))
		}
	}

	for _, root := range pipeline.Config().Roots {
		if err := c.printDerived(ctx, out, root); err != nil {
			return err
		}
	}

	return nil
}

func (c *Components) printDerived(ctx context.Context, out io.Writer, root string) error {
	count, err := c.Derived.FileCount(ctx, root)
	if err != nil {
		return err
	}
	usage, err := c.Derived.DiskUsage(ctx, root)
	if err != nil {
		return err
	}
	histogram, err := c.Derived.ExtensionHistogram(ctx, root)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s: %s files, %s\n", root, count, usage)

	exts := make([]string, 0, len(histogram))
	for ext := range histogram {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		fmt.Fprintf(out, "  .%-6s %d\n", ext, histogram[ext])
	}
	return nil
}

// Clean removes the cache directory.
func (c *Components) Clean(_ context.Context) error {
	return c.Pipeline.Clean()
}
