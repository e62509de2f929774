package status

import (
	"fmt"

	"github.com/CristiGvl/picoMemBar/internal/memory"
	"github.com/CristiGvl/picoMemBar/internal/render"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
)

// Config holds the settings of the memory status module
type Config struct {
	Format            string
	FormatDegraded    string
	ThresholdDegraded string
	ThresholdCritical string
	MemoryUsedMethod  string
	Unit              string
	Decimals          int
	PercentMark       string
	Source            string
}

// DefaultConfig returns the settings used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Format:           "%used over %total",
		MemoryUsedMethod: string(memory.PolicyMemAvailable),
		Unit:             "auto",
		Decimals:         1,
		PercentMark:      "%",
		Source:           string(memory.SourceAuto),
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if _, err := memory.ParsePolicy(c.MemoryUsedMethod); err != nil {
		return err
	}
	if _, err := memory.ParseSource(c.Source); err != nil {
		return err
	}
	if c.Decimals < 0 {
		return fmt.Errorf("decimals must not be negative, got %d", c.Decimals)
	}
	return nil
}

func (c Config) renderer() *render.Renderer {
	return &render.Renderer{
		Format:         c.Format,
		FormatDegraded: c.FormatDegraded,
		Unit:           c.Unit,
		Decimals:       c.Decimals,
		PercentMark:    c.PercentMark,
	}
}

func (c Config) thresholds() threshold.Thresholds {
	return threshold.Thresholds{
		Degraded: c.ThresholdDegraded,
		Critical: c.ThresholdCritical,
	}
}
