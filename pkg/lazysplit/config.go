package lazysplit

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/constants"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/internal"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/nav"
	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

// Config is the TOML configuration of an App.
//
//	language = "es"
//	log_path = "/tmp/lazysplit.log"
//
//	[layout]
//	compact_max_width = 99
//
//	[[routes]]
//	id = "settings"
//	main = true
//	requirement = "split"
type Config struct {
	Language string             `toml:"language"`
	LogPath  string             `toml:"log_path"`
	LogLevel string             `toml:"log_level"`
	Layout   LayoutConfig       `toml:"layout"`
	Routes   []router.RouteSpec `toml:"routes"`
}

// LayoutConfig holds the width breakpoints, in terminal columns.
type LayoutConfig struct {
	CompactMaxWidth  int     `toml:"compact_max_width"`
	ExpandedMinWidth int     `toml:"expanded_min_width"`
	LandscapeRatio   float64 `toml:"landscape_ratio"`
}

// DefaultConfig returns the demo setup: Home, Other and Settings in the menu,
// Settings split, with Detail and SubDetail as drill-in routes.
func DefaultConfig() Config {
	return Config{
		Language: "en",
		LogLevel: "info",
		Layout: LayoutConfig{
			CompactMaxWidth:  constants.DefaultCompactMaxWidth,
			ExpandedMinWidth: constants.DefaultExpandedMinWidth,
			LandscapeRatio:   constants.DefaultLandscapeRatio,
		},
		Routes: []router.RouteSpec{
			{ID: "home", Main: true, Icon: constants.HomeIcon},
			{ID: "other", Main: true, Icon: constants.OtherIcon},
			{ID: "settings", Main: true, Requirement: router.PaneSplit, Icon: constants.SettingsIcon},
			{ID: "detail", Icon: constants.DetailIcon},
			{ID: "subdetail", Icon: constants.DetailIcon},
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. A file that lists
// routes replaces the default routes entirely. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewConfigError("read", err)
	}
	cfg, err := ParseConfig(string(raw))
	if err != nil {
		return Config{}, err
	}
	internal.GetInternalLogger().Info("config loaded", "path", path, "routes", len(cfg.Routes))
	return cfg, nil
}

// ParseConfig decodes TOML text on top of DefaultConfig.
func ParseConfig(text string) (Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Routes
	cfg.Routes = nil

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, NewConfigError("decode", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, NewConfigError("decode", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	if len(cfg.Routes) == 0 {
		cfg.Routes = defaults
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the breakpoints and the route catalog.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.CompactMaxWidth < 0 {
		errs = append(errs, fmt.Errorf("compact_max_width must not be negative, got %d", c.Layout.CompactMaxWidth))
	}
	if c.Layout.ExpandedMinWidth <= c.Layout.CompactMaxWidth {
		errs = append(errs, fmt.Errorf("expanded_min_width (%d) must be above compact_max_width (%d)",
			c.Layout.ExpandedMinWidth, c.Layout.CompactMaxWidth))
	}
	if c.Layout.LandscapeRatio <= 0 {
		errs = append(errs, fmt.Errorf("landscape_ratio must be positive, got %g", c.Layout.LandscapeRatio))
	}
	if len(errs) > 0 {
		return NewConfigError("layout", errors.Join(errs...))
	}

	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Catalog builds the route catalog described by the config.
func (c Config) Catalog() (*router.Catalog, error) {
	catalog, err := router.NewCatalog(c.Routes...)
	if err != nil {
		return nil, NewConfigError("catalog", err)
	}
	return catalog, nil
}

// Breakpoints returns the layout breakpoints.
func (c Config) Breakpoints() nav.Breakpoints {
	return nav.Breakpoints{
		CompactMaxWidth:  c.Layout.CompactMaxWidth,
		ExpandedMinWidth: c.Layout.ExpandedMinWidth,
		LandscapeRatio:   c.Layout.LandscapeRatio,
	}
}
