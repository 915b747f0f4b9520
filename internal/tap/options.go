package tap

import "github.com/charmbracelet/log"

// Option configures an engine.
type Option func(*options)

type options struct {
	logger   *log.Logger
	catalog  *Catalog
	families []Family
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCatalog replaces the default pointer/touch/mouse catalog.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithFamilies restricts the engine to the given families. Families that are
// not listed are never attached even when the host supports them.
func WithFamilies(families ...Family) Option {
	return func(o *options) {
		o.families = families
	}
}
