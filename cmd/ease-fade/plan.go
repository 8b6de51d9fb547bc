package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fade directions.
const (
	directionIn  = "in"
	directionOut = "out"
)

// fadeSegment describes one fade region of the file.
type fadeSegment struct {
	Curve     string  `yaml:"curve"`     // catalog curve name, e.g. "outCubic"
	Direction string  `yaml:"direction"` // "in" (silence to full) or "out"
	Start     float64 `yaml:"start"`     // segment start in seconds
	Duration  float64 `yaml:"duration"`  // segment length in seconds
}

// fadePlan is the yaml document: an ordered list of fade segments.
type fadePlan struct {
	Fades []fadeSegment `yaml:"fades"`
}

// loadPlan reads and validates a fade plan file.
func loadPlan(path string) (*fadePlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fade plan: %w", err)
	}
	var plan fadePlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse fade plan %s: %w", path, err)
	}
	if len(plan.Fades) == 0 {
		return nil, fmt.Errorf("fade plan %s contains no fades", path)
	}
	for i, seg := range plan.Fades {
		if seg.Curve == "" {
			return nil, fmt.Errorf("fade %d: missing curve name", i)
		}
		if seg.Direction != directionIn && seg.Direction != directionOut {
			return nil, fmt.Errorf("fade %d: direction must be %q or %q", i, directionIn, directionOut)
		}
		if seg.Duration <= 0 {
			return nil, fmt.Errorf("fade %d: duration must be positive", i)
		}
		if seg.Start < 0 {
			return nil, fmt.Errorf("fade %d: start must not be negative", i)
		}
	}
	return &plan, nil
}
