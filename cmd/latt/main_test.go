package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/latt/internal/app"
	"go.trai.ch/latt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestRun_ProviderError verifies that an initialization failure is reported
// on stderr before the logger exists.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	code := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: wiring failed")
}

// TestRun_Version verifies the happy path through command execution. The
// version command never touches the pipeline, so the components can stay
// empty apart from the logger.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

// TestRun_CommandError verifies that command failures are logged and mapped
// to exit code 1.
func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"no-such-command"}, stderr, provider)

	assert.Equal(t, 1, code)
}
