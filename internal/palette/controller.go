// Package palette owns the interactive palette session: the current swatches,
// their lock flags and the display theme.
package palette

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// Features switches optional parts of the session on or off.
type Features struct {
	Contrast bool // per-swatch contrast against the background
	Locks    bool // per-swatch locking
	Overall  bool // contrast between the first and last swatch
}

// AllFeatures enables every optional feature.
func AllFeatures() Features {
	return Features{Contrast: true, Locks: true, Overall: true}
}

// Controller holds the session state and applies user actions to it.
// It is not safe for concurrent use; actions are expected one at a time.
type Controller struct {
	swatches [colour.SwatchCount]colour.HSL
	locks    [colour.SwatchCount]bool
	theme    ThemeMode
	start    int

	initialTheme ThemeMode
	features     Features
	source       colour.HueSource
	logger       hclog.Logger
}

// Builder provides a fluent interface for constructing a Controller.
type Builder struct {
	source   colour.HueSource
	logger   hclog.Logger
	features Features
	theme    ThemeMode
	startHue *int
}

// NewBuilder creates a new Controller builder with default settings:
// a random hue source, no logging, all features and the dark theme.
func NewBuilder() *Builder {
	return &Builder{
		features: AllFeatures(),
		theme:    ThemeDark,
	}
}

// WithSource sets the random source used to draw start hues.
func (b *Builder) WithSource(src colour.HueSource) *Builder {
	b.source = src
	return b
}

// WithLogger sets the logger for state transitions.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithFeatures sets which optional features are enabled.
func (b *Builder) WithFeatures(f Features) *Builder {
	b.features = f
	return b
}

// WithTheme sets the theme the session starts in.
func (b *Builder) WithTheme(t ThemeMode) *Builder {
	b.theme = t
	return b
}

// WithStartHue fixes the start hue of the first palette instead of drawing one.
func (b *Builder) WithStartHue(h int) *Builder {
	b.startHue = &h
	return b
}

// Build constructs and initialises the Controller.
func (b *Builder) Build() *Controller {
	c := &Controller{
		initialTheme: b.theme,
		features:     b.features,
		source:       b.source,
		logger:       b.logger,
	}
	if c.source == nil {
		c.source = colour.NewSource(nil)
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}

	if b.startHue != nil {
		c.reset(colour.NormaliseHue(*b.startHue))
	} else {
		c.Initialize()
	}
	return c
}

// Initialize starts a fresh session: a random palette, nothing locked and the
// initial theme.
func (c *Controller) Initialize() {
	start, _ := colour.RandomSequence(c.source)
	c.reset(start)
}

func (c *Controller) reset(start int) {
	c.fill(start)
	c.locks = [colour.SwatchCount]bool{}
	c.theme = c.initialTheme
	c.logger.Debug("session initialised", "start_hue", start, "theme", c.theme)
}

func (c *Controller) fill(start int) {
	for i, h := range colour.Sequence(start) {
		c.swatches[i] = colour.NewHSL(h)
	}
	c.start = start
}

// Regenerate draws a new start hue and replaces every unlocked swatch with the
// colour at its position in the new sequence. Locked swatches keep their
// colour. It returns the new start hue.
func (c *Controller) Regenerate() int {
	start, hues := colour.RandomSequence(c.source)

	kept := 0
	for i, h := range hues {
		if c.locks[i] {
			kept++
			continue
		}
		c.swatches[i] = colour.NewHSL(h)
	}
	c.start = start

	c.logger.Debug("palette regenerated", "start_hue", start, "locked", kept)
	return start
}

// ToggleLock flips the lock on swatch i.
func (c *Controller) ToggleLock(i int) error {
	if !c.features.Locks {
		c.logger.Warn("lock toggle rejected", "index", i, "reason", "locks disabled")
		return fmt.Errorf("%w: swatch locking is disabled", ErrUnsupportedOperation)
	}
	if i < 0 || i >= colour.SwatchCount {
		c.logger.Warn("lock toggle rejected", "index", i, "reason", "out of range")
		return fmt.Errorf("%w: %d (palette has %d swatches)", ErrInvalidIndex, i, colour.SwatchCount)
	}

	c.locks[i] = !c.locks[i]
	c.logger.Debug("lock toggled", "index", i, "locked", c.locks[i])
	return nil
}

// ToggleTheme switches between dark and light and returns the new mode.
func (c *Controller) ToggleTheme() ThemeMode {
	c.theme = c.theme.Toggle()
	c.logger.Debug("theme toggled", "theme", c.theme)
	return c.theme
}

// Export would write the palette as a document. It is not implemented and
// always returns an error wrapping ErrUnsupportedOperation.
func (c *Controller) Export(format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "pdf"
	}
	c.logger.Warn("export requested", "format", format)
	return fmt.Errorf("%w: %s export is not implemented", ErrUnsupportedOperation, strings.ToUpper(format))
}

// Palette returns a copy of the current swatches in display order.
func (c *Controller) Palette() []colour.HSL {
	out := make([]colour.HSL, colour.SwatchCount)
	copy(out, c.swatches[:])
	return out
}

// Locks returns a copy of the lock flags, indexed like Palette.
func (c *Controller) Locks() []bool {
	out := make([]bool, colour.SwatchCount)
	copy(out, c.locks[:])
	return out
}

// Hexes returns the current swatches as hex strings.
func (c *Controller) Hexes() []string {
	out := make([]string, colour.SwatchCount)
	for i, s := range c.swatches {
		out[i] = s.Hex()
	}
	return out
}

// Theme returns the current theme.
func (c *Controller) Theme() ThemeMode {
	return c.theme
}

// StartHue returns the start hue of the most recent generation.
func (c *Controller) StartHue() int {
	return c.start
}

// Features returns the enabled features.
func (c *Controller) Features() Features {
	return c.features
}
