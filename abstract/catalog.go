package abstract

import (
	"fmt"
	"strings"
	"sync"

	"github.com/caio-sobreiro/dicomcatalog/uid"
)

// storageRoot prefixes every Storage SOP Class UID, including the ones this
// catalog does not list.
const storageRoot = "1.2.840.10008.5.1.4.1.1."

// AbstractSyntax is a SOP Class UID with its service category.
type AbstractSyntax struct {
	uid.Entry
	Category Category
}

func entry(value, desc string) uid.Entry {
	return uid.Entry{Value: value, Desc: desc}
}

// IsStorage returns true for Storage SOP Classes, listed or not.
func (a AbstractSyntax) IsStorage() bool {
	return a.Category == CategoryStorage || strings.HasPrefix(a.Value, storageRoot)
}

// IsQueryRetrieve returns true if the UID is a query/retrieve SOP class
func (a AbstractSyntax) IsQueryRetrieve() bool {
	return a.Category == CategoryQueryRetrieve
}

// String returns the UID and description tagged as an abstract syntax.
func (a AbstractSyntax) String() string {
	return a.Value + " (AbstractSyntax: " + a.Desc + ")"
}

// Catalog is the immutable set of known Abstract Syntaxes.
type Catalog struct {
	syntaxes map[string]AbstractSyntax
	ordered  []AbstractSyntax
}

// NewCatalog builds the catalog and registers every built-in entry in reg.
func NewCatalog(reg *uid.Registry) (*Catalog, error) {
	c := &Catalog{
		syntaxes: make(map[string]AbstractSyntax, len(builtins)),
		ordered:  make([]AbstractSyntax, 0, len(builtins)),
	}
	for _, syntax := range builtins {
		if _, dup := c.syntaxes[syntax.Value]; dup {
			return nil, fmt.Errorf("abstract syntax %s listed twice", syntax.Value)
		}
		c.syntaxes[syntax.Value] = syntax
		c.ordered = append(c.ordered, syntax)

		if reg != nil {
			if err := reg.Register(syntax); err != nil {
				return nil, fmt.Errorf("register abstract syntax %s: %w", syntax.Value, err)
			}
		}
	}
	return c, nil
}

// MustNewCatalog is like NewCatalog but panics on error.
func MustNewCatalog(reg *uid.Registry) *Catalog {
	c, err := NewCatalog(reg)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog registered in uid.Default().
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNewCatalog(uid.Default())
	})
	return defaultCatalog
}

// Lookup returns the Abstract Syntax for value, or a fresh "Unknown"
// placeholder. Placeholders under the storage root are still classified as
// storage.
func (c *Catalog) Lookup(value string) AbstractSyntax {
	if syntax, ok := c.syntaxes[value]; ok {
		return syntax
	}
	placeholder := AbstractSyntax{Entry: uid.Placeholder(value), Category: CategoryUnknown}
	if strings.HasPrefix(value, storageRoot) {
		placeholder.Category = CategoryStorage
	}
	return placeholder
}

// Known reports whether value is a built-in Abstract Syntax.
func (c *Catalog) Known(value string) bool {
	_, ok := c.syntaxes[value]
	return ok
}

// All returns every built-in entry in table order.
func (c *Catalog) All() []AbstractSyntax {
	out := make([]AbstractSyntax, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByCategory returns the built-in entries of one category.
func (c *Catalog) ByCategory(category Category) []AbstractSyntax {
	var out []AbstractSyntax
	for _, syntax := range c.ordered {
		if syntax.Category == category {
			out = append(out, syntax)
		}
	}
	return out
}
