// Package stats implements derived statistics memoized through the store.
// Each computation is an opaque closure handed to the memo store with its
// declared file dependencies; the lattice itself is never involved.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
)

// Derived computes memoized statistics over a watched tree.
type Derived struct {
	store  ports.MemoStore
	walker ports.Walker
	cfg    domain.Config
	now    func() time.Time
}

// New creates a Derived bound to the given store and walker.
func New(store ports.MemoStore, walker ports.Walker, cfg domain.Config) *Derived {
	return &Derived{
		store:  store,
		walker: walker,
		cfg:    cfg,
		now:    time.Now,
	}
}

// WithClock overrides the clock used for time-bucketed keys. Used by tests.
func (d *Derived) WithClock(now func() time.Time) *Derived {
	d.now = now
	return d
}

// FileCount returns the human-formatted count of recognized files under
// root. The root directory is the declared dependency; its mtime changes
// when direct children are added or removed, which is the accepted
// granularity for this statistic.
func (d *Derived) FileCount(ctx context.Context, root string) (string, error) {
	payload, err := d.store.GetOrCompute(ctx, "file_count:"+root, []string{root}, func() ([]byte, error) {
		count := 0
		for path := range d.walker.WalkFiles(root) {
			if d.cfg.Recognized(path) {
				count++
			}
		}
		return []byte(formatCount(count)), nil
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// ExtensionHistogram returns per-extension counts of recognized files under
// root, memoized as a JSON payload.
func (d *Derived) ExtensionHistogram(ctx context.Context, root string) (map[string]int, error) {
	payload, err := d.store.GetOrCompute(ctx, "extension_histogram:"+root, []string{root}, func() ([]byte, error) {
		histogram := make(map[string]int)
		for path := range d.walker.WalkFiles(root) {
			if !d.cfg.Recognized(path) {
				continue
			}
			ext := strings.TrimPrefix(filepath.Ext(path), ".")
			histogram[ext]++
		}
		return json.Marshal(histogram)
	})
	if err != nil {
		return nil, err
	}

	var histogram map[string]int
	if err := json.Unmarshal(payload, &histogram); err != nil {
		return nil, err
	}
	return histogram, nil
}

// diskUsageBucket is the validity window for DiskUsage results.
const diskUsageBucket = 30 * time.Second

// DiskUsage returns the human-formatted total size of all files under root.
// Sizes drift constantly, so instead of file dependencies a time bucket is
// folded into the key and the result stays valid for one bucket.
func (d *Derived) DiskUsage(ctx context.Context, root string) (string, error) {
	bucket := d.now().Unix() / int64(diskUsageBucket.Seconds())
	key := fmt.Sprintf("disk_usage:%s:%d", root, bucket)

	payload, err := d.store.GetOrCompute(ctx, key, nil, func() ([]byte, error) {
		var total int64
		for path := range d.walker.WalkFiles(root) {
			if info, err := os.Stat(path); err == nil {
				total += info.Size()
			}
		}
		return []byte(formatBytes(total)), nil
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// formatCount renders a count the way the dashboards expect: 1.2K, 3.4M.
func formatCount(count int) string {
	switch {
	case count > 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count > 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return strconv.Itoa(count)
	}
}

func formatBytes(total int64) string {
	const unit = 1024
	switch {
	case total >= unit*unit*unit:
		return fmt.Sprintf("%.1f GiB", float64(total)/(unit*unit*unit))
	case total >= unit*unit:
		return fmt.Sprintf("%.1f MiB", float64(total)/(unit*unit))
	case total >= unit:
		return fmt.Sprintf("%.1f KiB", float64(total)/unit)
	default:
		return fmt.Sprintf("%d B", total)
	}
}
