package config

// Config is the root config for game.yaml
type Config struct {
	Display      DisplayConfig      `yaml:"display"`
	Input        InputConfig        `yaml:"input"`
	Choreography ChoreographyConfig `yaml:"choreography"`
	StartScene   string             `yaml:"startScene"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	CanvasWidth  int    `yaml:"canvasWidth"`
	CanvasHeight int    `yaml:"canvasHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
}

type InputConfig struct {
	Throttle int `yaml:"throttle"` // Auto-repeat interval for held left/right (frames)
}

// ChoreographyConfig holds the menu animation timings. All values are in
// frames or pixels.
type ChoreographyConfig struct {
	TitleExitDelay    int `yaml:"titleExitDelay"`
	TitleBlink        int `yaml:"titleBlink"`
	TitleBlinkExiting int `yaml:"titleBlinkExiting"`
	FieldDelay        int `yaml:"fieldDelay"`      // Stagger between fields sliding in
	MarginLeft        int `yaml:"marginLeft"`      // Start offset of the slide-in (negative)
	MarginBottom      int `yaml:"marginBottom"`    // Start offset of the submit rise (negative)
	VerticalSpacing   int `yaml:"verticalSpacing"` // Distance between form rows
	Indent            int `yaml:"indent"`
}

// SetupExitDelay is the exit delay of a setup form with n fields: long
// enough for the last field to slide all the way out.
func (c ChoreographyConfig) SetupExitDelay(n int) int {
	if n < 1 {
		n = 1
	}
	return c.FieldDelay*(n-1) - c.MarginLeft
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Title:        "Platformer",
			CanvasWidth:  256,
			CanvasHeight: 256,
			Scale:        2,
			Framerate:    60,
		},
		Input: InputConfig{
			Throttle: 7,
		},
		Choreography: ChoreographyConfig{
			TitleExitDelay:    64,
			TitleBlink:        64,
			TitleBlinkExiting: 16,
			FieldDelay:        8,
			MarginLeft:        -32,
			MarginBottom:      -16,
			VerticalSpacing:   16,
			Indent:            8,
		},
		StartScene: "Title",
	}
}
