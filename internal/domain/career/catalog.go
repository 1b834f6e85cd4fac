package career

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCatalog    = errors.New("career catalog is empty")
	ErrDuplicateCareer = errors.New("duplicate career name")
	ErrUnnamedCareer   = errors.New("career profile without a name")
)

// Catalog is an insertion-ordered, read-only set of career profiles. It is
// built once at startup; a catalog change requires rebuilding the engine
// that was fitted on it.
type Catalog struct {
	names    []string
	profiles map[string]Profile
}

func NewCatalog(profiles []Profile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		names:    make([]string, 0, len(profiles)),
		profiles: make(map[string]Profile, len(profiles)),
	}
	for _, p := range profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, ErrUnnamedCareer
		}
		if _, exists := c.profiles[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCareer, name)
		}
		p.Name = name
		c.names = append(c.names, name)
		c.profiles[name] = p
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns career names in catalog insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Get(name string) (Profile, bool) {
	if c == nil {
		return Profile{}, false
	}
	p, ok := c.profiles[name]
	return p, ok
}

// Profiles returns all profiles in catalog insertion order.
func (c *Catalog) Profiles() []Profile {
	if c == nil {
		return nil
	}
	out := make([]Profile, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.profiles[name])
	}
	return out
}

// SkillNames returns every distinct required skill across the catalog, in
// first-seen order. Used by the presentation layer for skill shortcuts.
func (c *Catalog) SkillNames() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, name := range c.names {
		for _, s := range c.profiles[name].Skills {
			key := strings.ToLower(strings.TrimSpace(s))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}
