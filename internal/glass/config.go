package glass

// Construction-time attribute names.
const (
	AttrBlurRadius     = "glassBlurRadius"
	AttrVibrancy       = "glassVibrancy"
	AttrSaturation     = "glassSaturation"
	AttrBrightnessLift = "glassBrightnessLift"
	AttrAutoUpdate     = "glassAutoUpdate"
)

// Defaults applied when neither options nor attributes say otherwise.
const (
	DefaultBlurRadius     = 32.0
	DefaultVibrancy       = true
	DefaultSaturation     = 1.25
	DefaultBrightnessLift = 6.0
	DefaultAutoUpdate     = true
)

// Config is the immutable configuration of a Container. It can only be
// changed by constructing a new container.
type Config struct {
	// BlurRadius is the platform blur radius. 0 is valid and disables blur
	// visually.
	BlurRadius float64
	// Vibrancy enables the saturation/brightness pass.
	Vibrancy bool
	// Saturation scales colourfulness: 1 is neutral, 0 is grayscale.
	Saturation float64
	// BrightnessLift is added to R, G and B on the 0-255 scale.
	BrightnessLift float64
	// AutoUpdate refreshes the snapshot on every pre-draw notification.
	AutoUpdate bool
}

// DefaultConfig returns the stock glass look.
func DefaultConfig() Config {
	return Config{
		BlurRadius:     DefaultBlurRadius,
		Vibrancy:       DefaultVibrancy,
		Saturation:     DefaultSaturation,
		BrightnessLift: DefaultBrightnessLift,
		AutoUpdate:     DefaultAutoUpdate,
	}
}

// AttributeSet is a source of styled construction-time attributes. Missing
// attributes resolve to the supplied default.
type AttributeSet interface {
	Float(name string, def float64) float64
	Bool(name string, def bool) bool
}

// Option configures NewContainer.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithAttributes reads every glass attribute from attrs, keeping the current
// value as the default for attributes attrs does not carry.
func WithAttributes(attrs AttributeSet) Option {
	return func(c *Config) {
		if attrs == nil {
			return
		}
		c.BlurRadius = attrs.Float(AttrBlurRadius, c.BlurRadius)
		c.Vibrancy = attrs.Bool(AttrVibrancy, c.Vibrancy)
		c.Saturation = attrs.Float(AttrSaturation, c.Saturation)
		c.BrightnessLift = attrs.Float(AttrBrightnessLift, c.BrightnessLift)
		c.AutoUpdate = attrs.Bool(AttrAutoUpdate, c.AutoUpdate)
	}
}

// WithBlurRadius sets the blur radius.
func WithBlurRadius(r float64) Option {
	return func(c *Config) {
		c.BlurRadius = r
	}
}

// WithVibrancy toggles the vibrancy pass.
func WithVibrancy(enabled bool) Option {
	return func(c *Config) {
		c.Vibrancy = enabled
	}
}

// WithSaturation sets the saturation factor.
func WithSaturation(s float64) Option {
	return func(c *Config) {
		c.Saturation = s
	}
}

// WithBrightnessLift sets the additive brightness lift.
func WithBrightnessLift(lift float64) Option {
	return func(c *Config) {
		c.BrightnessLift = lift
	}
}

// WithAutoUpdate toggles refreshing on every frame.
func WithAutoUpdate(enabled bool) Option {
	return func(c *Config) {
		c.AutoUpdate = enabled
	}
}
