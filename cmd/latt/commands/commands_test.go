package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/latt/cmd/latt/commands"
	"go.trai.ch/latt/internal/app"
	"go.trai.ch/latt/internal/build"
)

type mockApp struct {
	watchFunc func(ctx context.Context, roots []string, opts app.WatchOptions) error
	statsFunc func(ctx context.Context, roots []string, out io.Writer, opts app.StatsOptions) error
	cleanFunc func(ctx context.Context) error
}

func (m *mockApp) Watch(ctx context.Context, roots []string, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, roots, opts)
	}
	return nil
}

func (m *mockApp) Stats(ctx context.Context, roots []string, out io.Writer, opts app.StatsOptions) error {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, roots, out, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func TestCommands_Watch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.WatchOptions
		var capturedRoots []string
		called := false

		mock := &mockApp{
			watchFunc: func(_ context.Context, roots []string, opts app.WatchOptions) error {
				capturedOpts = opts
				capturedRoots = roots
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch", "src", "--output-mode", "linear"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
		assert.Equal(t, []string{"src"}, capturedRoots)
	})

	t.Run("ci flag forces linear output", func(t *testing.T) {
		var capturedOpts app.WatchOptions

		mock := &mockApp{
			watchFunc: func(_ context.Context, _ []string, opts app.WatchOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch", "--ci"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
	})

	t.Run("returns error on watch failure", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ []string, _ app.WatchOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Stats(t *testing.T) {
	t.Run("passes limit and writes to command output", func(t *testing.T) {
		var capturedOpts app.StatsOptions

		mock := &mockApp{
			statsFunc: func(_ context.Context, _ []string, out io.Writer, opts app.StatsOptions) error {
				capturedOpts = opts
				_, err := out.Write([]byte("values: 3\n"))
				return err
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"stats", "--limit", "5"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, capturedOpts.Limit)
		assert.Contains(t, buf.String(), "values: 3")
	})

	t.Run("defaults limit to ten", func(t *testing.T) {
		var capturedOpts app.StatsOptions

		mock := &mockApp{
			statsFunc: func(_ context.Context, _ []string, _ io.Writer, opts app.StatsOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"stats"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, capturedOpts.Limit)
	})
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
