package backend

import "fmt"

// Config describes the window and context a Surface creates.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// GLVersion is the requested OpenGL version as "major.minor".
	// Empty requests 4.5.
	GLVersion string `yaml:"gl_version"`

	// Invisible hides the window, for offscreen rendering.
	Invisible bool `yaml:"invisible"`

	// Debug requests a debug context so KHR_debug messages are produced.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns an 800x600 visible window with an OpenGL 4.5
// context.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		Title:     "lofx",
		GLVersion: "4.5",
	}
}

// Version parses GLVersion.
func (c Config) Version() (major, minor int, err error) {
	if c.GLVersion == "" {
		return 4, 5, nil
	}
	var rest string
	n, _ := fmt.Sscanf(c.GLVersion+" ", "%d.%d%s", &major, &minor, &rest)
	if n != 2 || major < 1 || minor < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidVersion, c.GLVersion)
	}
	return major, minor, nil
}
