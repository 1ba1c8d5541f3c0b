// Package dictionary maps DICOM attribute tags to their Value Representation,
// Value Multiplicity, keyword and retirement status.
package dictionary

import (
	"log/slog"
	"sort"
	"sync"
)

// Option configures a Dictionary at construction.
type Option func(*config)

type config struct {
	logger *slog.Logger
	extra  []Definition
}

// WithLogger overrides the logger used while building the dictionary.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDefinitions adds rows after the standard table. A row whose tag is
// already present replaces the standard one.
func WithDefinitions(defs ...Definition) Option {
	return func(c *config) {
		c.extra = append(c.extra, defs...)
	}
}

// Dictionary is an immutable tag index. Safe for concurrent use.
type Dictionary struct {
	byTag     map[Tag]Element
	byKeyword map[string]Tag
}

// New builds a dictionary from the standard table. Malformed VM strings do not
// fail construction: the row gets a multiplicity of exactly one and a warning
// is logged.
func New(opts ...Option) *Dictionary {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dictionary{
		byTag:     make(map[Tag]Element, len(standard)+len(cfg.extra)),
		byKeyword: make(map[string]Tag, len(standard)+len(cfg.extra)),
	}
	for _, def := range standard {
		d.add(def, logger)
	}
	for _, def := range cfg.extra {
		d.add(def, logger)
	}
	return d
}

func (d *Dictionary) add(def Definition, logger *slog.Logger) {
	tag := NewTag(def.Group, def.Element)
	vmMin, vmMax, err := ParseVM(def.VM)
	if err != nil {
		logger.Warn("Malformed value multiplicity, assuming 1",
			"tag", tag.String(),
			"keyword", def.Keyword,
			"error", err)
	}

	if prev, ok := d.byTag[tag]; ok && prev.Keyword != "" {
		delete(d.byKeyword, prev.Keyword)
	}
	d.byTag[tag] = Element{
		Tag:         tag,
		VR:          def.VR,
		Keyword:     def.Keyword,
		Description: def.Description,
		Retired:     def.Retired,
		VMMin:       vmMin,
		VMMax:       vmMax,
		vrKey:       def.VR.Key(),
	}
	if def.Keyword != "" {
		d.byKeyword[def.Keyword] = tag
	}
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the shared dictionary built from the standard table.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = New()
	})
	return defaultDict
}

// Lookup returns the element for tag.
func (d *Dictionary) Lookup(tag Tag) (Element, bool) {
	e, ok := d.byTag[tag]
	return e, ok
}

// LookupGroupElement is Lookup with the tag given as its two halves.
func (d *Dictionary) LookupGroupElement(group, element uint16) (Element, bool) {
	return d.Lookup(NewTag(group, element))
}

// LookupKeyword finds an element by its keyword, e.g. "PatientName".
func (d *Dictionary) LookupKeyword(keyword string) (Element, bool) {
	tag, ok := d.byKeyword[keyword]
	if !ok {
		return Element{}, false
	}
	return d.Lookup(tag)
}

// Len returns the number of known tags.
func (d *Dictionary) Len() int { return len(d.byTag) }

// Elements returns every element sorted by tag.
func (d *Dictionary) Elements() []Element {
	out := make([]Element, 0, len(d.byTag))
	for _, e := range d.byTag {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
