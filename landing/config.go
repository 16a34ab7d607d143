// Package landing holds the content of the landing page: its title, the
// terminal banner and the navigation panels, loaded from a TOML file.
package landing

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// MaxPanels is the number of panels reachable from the number keys.
const MaxPanels = 9

// Panel is one external link.
type Panel struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	URL         string `toml:"url"`
}

type Config struct {
	// Title is the window title and page heading.
	Title string `toml:"title"`
	// Banner is typed out in the terminal header.
	Banner string `toml:"banner"`
	// Shader selects the background visual policy.
	Shader string  `toml:"shader"`
	Panels []Panel `toml:"panels"`
}

// Default returns the built-in landing page.
func Default() *Config {
	return &Config{
		Title:  "JACKYWINE'S BLOG",
		Banner: "JACKYWINE MATRIX CONSOLE v2.0.25",
		Shader: "fbm",
		Panels: []Panel{
			{
				Title:       "WeChat",
				Description: "Connect via WeChat QR code for instant messaging and updates",
				URL:         "https://fastly.jsdelivr.net/gh/bucketio/img9@main/2025/03/03/1741006399641-4ff4fa1c-4c2d-44ba-827a-26bf3e5bb3f9.png",
			},
			{
				Title:       "Blog",
				Description: "Explore thoughts, tutorials, and insights on technology and design",
				URL:         "https://dqxf1izhlm.feishu.cn/wiki/J4PCwCBmEipifUkxglQcu40qnhg",
			},
			{
				Title:       "1nbox",
				Description: "Access the knowledge base and wiki for comprehensive resources",
				URL:         "https://dqxf1izhlm.feishu.cn/wiki/SHXUwGYeQiuStdkOTjucuzifnRe",
			},
			{
				Title:       "Rednote",
				Description: "Follow creative content and lifestyle updates on Rednote platform",
				URL:         "https://cutt.ly/zrdVvl5k",
			},
			{
				Title:       "Twitter",
				Description: "Stay updated with latest thoughts and tech discussions on Twitter",
				URL:         "https://x.com/Jackywine",
			},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults; a
// leading ~ is expanded to the home directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", expanded, err)
	}
	return cfg, nil
}

// Parse decodes a config document over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	// a panels table in the file replaces the default list rather than
	// merging into it element by element
	var probe struct {
		Panels []Panel `toml:"panels"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Panels != nil {
		c.Panels = nil
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks that every panel can be shown and opened.
func (c *Config) Validate() error {
	if len(c.Panels) > MaxPanels {
		return fmt.Errorf("too many panels: %d (max %d)", len(c.Panels), MaxPanels)
	}
	for i, p := range c.Panels {
		if p.Title == "" {
			return fmt.Errorf("panel %d: missing title", i+1)
		}
		u, err := url.Parse(p.URL)
		if err != nil {
			return fmt.Errorf("panel %q: %w", p.Title, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("panel %q: url must be http or https, got %q", p.Title, p.URL)
		}
	}
	return nil
}

// Panel returns the panel bound to number key n (1-based).
func (c *Config) Panel(n int) (Panel, bool) {
	if n < 1 || n > len(c.Panels) {
		return Panel{}, false
	}
	return c.Panels[n-1], true
}
