// Package llm provides the Gemini client and the AI-driven analysis step that
// produces score breakdowns and benchmark profiles. The gap and scoring
// packages never call into this package; they consume its outputs.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for cheap classification and cleanup tasks.
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction with moderate reasoning.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for benchmark synthesis and other heavier reasoning.
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model roster and generation settings.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini model roster.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.1,
	}
}

// Model returns the model name for a tier, falling back down the roster when
// a tier is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
