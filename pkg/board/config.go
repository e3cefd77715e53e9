package board

import (
	"fmt"
	"regexp"
)

// DefaultTolerance is the endpoint distance, in drawing units, treated as
// "the same point" during junction inference.
const DefaultTolerance = 0.1

// Config controls the analysis pipeline. There is no global state: a
// Config is passed explicitly to each run.
type Config struct {
	// Tolerance is the junction quantization bucket size. Smaller values
	// increase precision but risk missing connections split across bucket
	// boundaries; larger values risk merging genuinely distinct traces.
	Tolerance float64

	// OnlyLayerPattern, if set, restricts analysis to traces whose layer
	// matches this regex.
	OnlyLayerPattern string

	// MinWidth, if positive, drops hairline artifacts narrower than this.
	MinWidth float64

	// Internal compiled regex
	layerRegex *regexp.Regexp
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Tolerance: DefaultTolerance,
	}
}

// Validate checks the configuration and compiles any regex patterns.
// A non-positive tolerance is a fatal precondition violation, reported
// before any processing begins.
func (c *Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("board: tolerance must be positive, got %g", c.Tolerance)
	}

	if c.OnlyLayerPattern != "" {
		regex, err := regexp.Compile(c.OnlyLayerPattern)
		if err != nil {
			return fmt.Errorf("board: invalid layer pattern: %w", err)
		}
		c.layerRegex = regex
	}

	return nil
}

// ShouldAnalyze returns true if the given trace passes the layer and
// width filters.
func (c *Config) ShouldAnalyze(t *Trace) bool {
	if c.MinWidth > 0 && t.Width < c.MinWidth {
		return false
	}
	if c.layerRegex != nil && !c.layerRegex.MatchString(t.Layer) {
		return false
	}
	return true
}
