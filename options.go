package notapdf

// Option is a functional option for configuring a render via Render.
type Option func(*renderConfig)

type renderConfig struct {
	fontFamily string
	margin     float64
	currency   string
}

func defaultConfig() renderConfig {
	return renderConfig{
		fontFamily: "Helvetica",
		margin:     10,
		currency:   "$",
	}
}

// WithFontFamily sets the base font family. Only the core families
// ("Helvetica", "Courier", "Times") are available without font files.
func WithFontFamily(family string) Option {
	return func(c *renderConfig) {
		if family != "" {
			c.fontFamily = family
		}
	}
}

// WithMargin sets the page margin in millimeters.
func WithMargin(mm float64) Option {
	return func(c *renderConfig) {
		if mm > 0 {
			c.margin = mm
		}
	}
}

// WithCurrencyPrefix sets the literal prefix placed before monetary values.
// No localization is applied beyond this prefix.
func WithCurrencyPrefix(prefix string) Option {
	return func(c *renderConfig) {
		c.currency = prefix
	}
}
