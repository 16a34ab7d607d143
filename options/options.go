package options

import (
	"flag"
	"fmt"
	"io"
)

// DefaultConfigPath is where the landing page config is looked up when -config is not given.
const DefaultConfigPath = "~/.config/shaderbackdrop/landing.toml"

type BackdropOptions struct {
	ConfigFile *string
	Shader     *string // visual policy, overrides the config file
	Help       *bool
	Width      *int
	Height     *int
	Fullscreen *bool
	GLES       *bool // request an OpenGL ES 3.0 context instead of 4.1 core
	NoConsole  *bool // do not draw the terminal header
}

// Register defines the flags on fs and returns the options bound to them.
func Register(fs *flag.FlagSet) *BackdropOptions {
	return &BackdropOptions{
		ConfigFile: fs.String("config", DefaultConfigPath, "Landing page config file (TOML)"),
		Shader:     fs.String("shader", "", "Background shader: fbm or rain (default from config, else fbm)"),
		Help:       fs.Bool("help", false, "Show help message"),
		Width:      fs.Int("width", 1280, "Window width"),
		Height:     fs.Int("height", 720, "Window height"),
		Fullscreen: fs.Bool("fullscreen", false, "Open fullscreen on the primary monitor"),
		GLES:       fs.Bool("gles", false, "Use an OpenGL ES 3.0 context"),
		NoConsole:  fs.Bool("noconsole", false, "Do not draw the terminal header"),
	}
}

// Parse registers and parses the command line flags.
func Parse(name string, args []string, output io.Writer) (*BackdropOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *opts.Width <= 0 || *opts.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", *opts.Width, *opts.Height)
	}
	return opts, nil
}

// PrintDefaults writes the flag usage to w.
func PrintDefaults(w io.Writer) {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(w)
	Register(fs)
	fs.PrintDefaults()
}
