package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/irena/pkg/carousel"
)

//go:embed default.yaml
var defaultYAML []byte

// Section names of the two carousels.
const (
	SectionCollections = "collections"
	SectionBestsellers = "bestsellers"
)

// DefaultCellWidthPx is how many pixels one terminal cell stands for.
const DefaultCellWidthPx = 8

// ErrNoSlides is returned by Validate when a carousel section has nothing to
// show.
var ErrNoSlides = errors.New("site: carousel has no slides")

// Config is the whole site description.
type Config struct {
	Brand        string                    `yaml:"brand"`
	Tagline      string                    `yaml:"tagline"`
	HeroImage    string                    `yaml:"hero_image"`
	HeroAlt      string                    `yaml:"hero_alt"`
	About        string                    `yaml:"about"` // markdown
	ContactEmail string                    `yaml:"contact_email"`
	CellWidthPx  int                       `yaml:"cell_width_px"`
	Breakpoints  []carousel.Breakpoint     `yaml:"breakpoints"`
	Navigation   []NavigationItem          `yaml:"navigation"`
	Carousels    map[string]CarouselConfig `yaml:"carousels"`
	Products     []Product                 `yaml:"products"`
	Collections  []Collection              `yaml:"collections"`
	Testimonials []Testimonial             `yaml:"testimonials"`
}

// CarouselConfig holds the settings of one carousel section.
type CarouselConfig struct {
	AutoPlay         bool   `yaml:"autoplay"`
	AutoPlayInterval string `yaml:"autoplay_interval"` // duration string, e.g. "4500ms"
	ShowPrices       bool   `yaml:"show_prices"`
	ItemsPerView     int    `yaml:"items_per_view"`
}

// Interval parses AutoPlayInterval. An empty string yields the carousel
// default.
func (c CarouselConfig) Interval() (time.Duration, error) {
	if c.AutoPlayInterval == "" {
		return carousel.DefaultAutoPlayInterval, nil
	}

	d, err := time.ParseDuration(c.AutoPlayInterval)
	if err != nil {
		return 0, fmt.Errorf("site: autoplay interval %q: %w", c.AutoPlayInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("site: autoplay interval %q must be positive", c.AutoPlayInterval)
	}

	return d, nil
}

// Parse decodes a site description. Environment variables referenced as
// ${VAR} or $VAR are expanded before parsing.
func Parse(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("site: parse config: %w", err)
	}

	if cfg.CellWidthPx <= 0 {
		cfg.CellWidthPx = DefaultCellWidthPx
	}
	if cfg.Breakpoints == nil {
		cfg.Breakpoints = carousel.DefaultBreakpoints
	}

	return cfg, nil
}

// LoadConfig reads and parses the site file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("site: load config: %w", err)
	}

	return Parse(data)
}

// DefaultYAML returns a copy of the embedded catalog source.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the embedded catalog.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(err) // the embedded file is covered by tests
	}

	return cfg
}

// Resolve loads path when it exists and falls back to the embedded catalog
// otherwise. The returned string names the source that was used.
func Resolve(path string) (Config, string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadConfig(path)
			return cfg, path, err
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, "", fmt.Errorf("site: stat config: %w", err)
		}
	}

	return Default(), "embedded", nil
}

// Carousel returns the engine configuration for a carousel section.
func (c Config) Carousel(section string) (carousel.Config, error) {
	cc, ok := c.Carousels[section]
	if !ok {
		return carousel.Config{}, fmt.Errorf("site: unknown carousel section %q", section)
	}

	interval, err := cc.Interval()
	if err != nil {
		return carousel.Config{}, fmt.Errorf("site: carousel %q: %w", section, err)
	}

	return carousel.Config{
		ShowPrices:          cc.ShowPrices,
		AutoPlay:            cc.AutoPlay,
		AutoPlayInterval:    interval,
		InitialItemsPerView: max(cc.ItemsPerView, 1),
		Breakpoints:         c.Breakpoints,
	}, nil
}

// Slides returns the carousel items of a section.
func (c Config) Slides(section string) []carousel.Item {
	switch section {
	case SectionCollections:
		return CollectionItems(c.Collections)
	case SectionBestsellers:
		return ProductItems(c.Products)
	default:
		return nil
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	var errs []error

	if c.Brand == "" {
		errs = append(errs, errors.New("site: config: brand is required"))
	}

	errs = append(errs, uniqueIDs("product", len(c.Products), func(i int) string { return c.Products[i].ID })...)
	errs = append(errs, uniqueIDs("collection", len(c.Collections), func(i int) string { return c.Collections[i].ID })...)
	errs = append(errs, uniqueIDs("testimonial", len(c.Testimonials), func(i int) string { return c.Testimonials[i].ID })...)
	errs = append(errs, uniqueIDs("navigation", len(c.Navigation), func(i int) string { return c.Navigation[i].ID })...)

	for _, p := range c.Products {
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("site: config: product %q: negative price", p.ID))
		}
	}

	for _, section := range []string{SectionCollections, SectionBestsellers} {
		cc, ok := c.Carousels[section]
		if !ok {
			errs = append(errs, fmt.Errorf("site: config: carousel %q is not configured", section))
			continue
		}
		if _, err := cc.Interval(); err != nil {
			errs = append(errs, fmt.Errorf("site: config: carousel %q: %w", section, err))
		}
		if cc.ItemsPerView < 0 {
			errs = append(errs, fmt.Errorf("site: config: carousel %q: items_per_view must not be negative", section))
		}
		if len(c.Slides(section)) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoSlides, section))
		}
	}

	for _, bp := range c.Breakpoints {
		if bp.MinWidth < 0 || bp.ItemsPerView < 1 {
			errs = append(errs, fmt.Errorf("site: config: invalid breakpoint %d→%d", bp.MinWidth, bp.ItemsPerView))
		}
	}

	return errors.Join(errs...)
}

func uniqueIDs(kind string, n int, id func(int) string) []error {
	var errs []error
	seen := make(map[string]struct{}, n)
	for i := range n {
		v := id(i)
		if v == "" {
			errs = append(errs, fmt.Errorf("site: config: %s #%d: id is required", kind, i+1))
			continue
		}
		if _, dup := seen[v]; dup {
			errs = append(errs, fmt.Errorf("site: config: duplicate %s id %q", kind, v))
		}
		seen[v] = struct{}{}
	}
	return errs
}
