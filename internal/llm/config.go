// Package llm provides the Gemini client and the optional bullet phrasing
// refiner built on it.
package llm

// ModelTier selects the capability level used for a request.
type ModelTier string

const (
	// TierLite is for cheap classification-grade calls.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output of moderate difficulty.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for constrained rewriting, where wording quality matters.
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to concrete Gemini model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the shipped tier-to-model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard and
// then lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	override := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		override.Models[k] = v
	}
	override.Models[tier] = model
	return override
}
