package magnet

import "github.com/fluxline/fluxline/internal/bfield"

// Collection groups sources for common treatment; when evaluated it
// contributes the superposition of its members. Nested collection input is
// expanded at insertion, so the member list always holds leaf sources. A
// Collection never holds the same member twice: duplicates are dropped at
// insertion, keeping the first occurrence. The same source may still
// appear in several distinct collections.
type Collection struct {
	sources []bfield.Source
}

func NewCollection(sources ...bfield.Source) *Collection {
	c := &Collection{}
	c.Add(sources...)
	return c
}

// Merge adds all members of other, with the usual duplicate elimination.
func (c *Collection) Merge(other *Collection) {
	c.Add(other.sources...)
}

// Elements returns the ordered member list.
func (c *Collection) Elements() []bfield.Entry {
	out := make([]bfield.Entry, len(c.sources))
	for i, s := range c.sources {
		out[i] = s
	}
	return out
}

// Sources returns the member list as concrete sources.
func (c *Collection) Sources() []bfield.Source {
	return append([]bfield.Source(nil), c.sources...)
}

// Add appends sources, skipping members already present.
func (c *Collection) Add(sources ...bfield.Source) {
	for _, s := range sources {
		if c.contains(s) {
			continue
		}
		c.sources = append(c.sources, s)
	}
}

// Remove drops a member; unknown sources are ignored.
func (c *Collection) Remove(s bfield.Source) {
	for i, m := range c.sources {
		if m == s {
			c.sources = append(c.sources[:i], c.sources[i+1:]...)
			return
		}
	}
}

func (c *Collection) Len() int { return len(c.sources) }

func (c *Collection) contains(s bfield.Source) bool {
	for _, m := range c.sources {
		if m == s {
			return true
		}
	}
	return false
}
