package palette

// Catalog is the bounded set of available palettes. The built-in palettes
// occupy the leading slots and user palettes loaded from storage follow in
// load order.
type Catalog struct {
	palettes []Palette
}

// NewCatalog returns a catalog seeded with the built-in palettes.
func NewCatalog() *Catalog {
	c := &Catalog{
		palettes: make([]Palette, 0, MaxCatalog),
	}
	c.palettes = append(c.palettes, builtins...)
	return c
}

// Len returns the number of palettes in the catalog.
func (c *Catalog) Len() int {
	return len(c.palettes)
}

// At returns the palette at position i in catalog order.
func (c *Catalog) At(i int) Palette {
	return c.palettes[i]
}

// Find returns the first palette with the given name.
func (c *Catalog) Find(name string) (Palette, bool) {
	for _, p := range c.palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Add appends a palette to the catalog. It reports false once the catalog
// is full, leaving the catalog unchanged.
func (c *Catalog) Add(p Palette) bool {
	if len(c.palettes) >= MaxCatalog {
		return false
	}
	c.palettes = append(c.palettes, p)
	return true
}

// Filter returns the palettes with the given nominal size, or every size
// when size is zero. With userOnly set, built-in palettes are omitted.
// Catalog order is preserved.
func (c *Catalog) Filter(size int, userOnly bool) []Palette {
	var out []Palette
	for _, p := range c.palettes {
		if size != 0 && p.Size != size {
			continue
		}
		if userOnly && !p.User {
			continue
		}
		out = append(out, p)
	}
	return out
}
