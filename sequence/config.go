package sequence

const (
	defaultTitleColour   = "#f2f2f2"
	defaultFlashColour   = "#ffffff"
	defaultURLColour     = "#7fd0ff"
	defaultDividerColour = "#ff3860"
)

// Palette holds the hex colours handed to the compositor.
type Palette struct {
	Title   string `yaml:"title"`
	Flash   string `yaml:"flash"`
	URL     string `yaml:"url"`
	Divider string `yaml:"divider"`
}

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
			State   string `yaml:"state"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		FPS            float64 `yaml:"fps"`
		Loop           bool    `yaml:"loop"`
		DurationFrames int64   `yaml:"durationFrames"`
	} `yaml:"stream"`
	Palette Palette `yaml:"palette"`
}

// ApplyDefaults fills in the fields that may be omitted from the YAML file.
func (c *Config) ApplyDefaults() {
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "foobos/promo/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "foobos/promo/control"
	}
	if c.Mqtt.Topics.State == "" {
		c.Mqtt.Topics.State = "foobos/promo/state"
	}
	if c.Stream.FPS <= 0 {
		c.Stream.FPS = 30
	}
	if c.Stream.DurationFrames <= 0 {
		// Hold the settled final frame for a short tail past the last
		// breakpoint before looping.
		c.Stream.DurationFrames = SequenceEnd + 15
	}
}
