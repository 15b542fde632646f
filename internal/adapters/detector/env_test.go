package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/latt/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		want     detector.OutputMode
	}{
		{"tui flag overrides detection", detector.ModeLinear, "tui", detector.ModeTUI},
		{"linear flag overrides detection", detector.ModeTUI, "linear", detector.ModeLinear},
		{"ci flag maps to linear", detector.ModeTUI, "ci", detector.ModeLinear},
		{"auto keeps detection", detector.ModeTUI, "auto", detector.ModeTUI},
		{"empty keeps detection", detector.ModeLinear, "", detector.ModeLinear},
		{"unknown keeps detection", detector.ModeTUI, "fancy", detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}
