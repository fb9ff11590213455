// Package catalog implements ports.Catalog from YAML documents.
//
// A document declares optional custom profiles and a list of attractions:
//
//	profiles:
//	  teen:
//	    age: [12, 17]
//	    weight: [35, 90]
//	    height: [130, 190]
//	attractions:
//	  - name: Kiddie Slide
//	    profile: children
//
// Built-in profiles (children, adult) are always available and cannot be
// redefined. Several documents may be merged; names must stay unique.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/corey/ridecheck/internal/domain/access"
	"github.com/corey/ridecheck/internal/domain/limits"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when no attractions were declared.
var ErrEmpty = errors.New("catalog has no attractions")

// profileDoc is the YAML schema for a custom profile.
type profileDoc struct {
	Age    []int `yaml:"age"`
	Weight []int `yaml:"weight"`
	Height []int `yaml:"height"`
}

// attractionDoc is the YAML schema for one attraction.
type attractionDoc struct {
	Name    string `yaml:"name"`
	Profile string `yaml:"profile"`
}

// document is the YAML schema for a catalog file.
type document struct {
	Profiles    map[string]profileDoc `yaml:"profiles"`
	Attractions []attractionDoc       `yaml:"attractions"`
}

// Catalog is an immutable set of attractions keyed by normalized name.
type Catalog struct {
	byName      map[string]*access.Attraction
	attractions []*access.Attraction
	custom      []*limits.Profile
}

// Parse builds a catalog from one YAML document.
func Parse(data []byte) (*Catalog, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	return build([]namedDoc{{name: "catalog", doc: doc}})
}

// Load reads one YAML document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return build([]namedDoc{{name: path, doc: doc}})
}

// LoadFS merges every .yaml/.yml file in dir, in sorted order.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %q: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var docs []namedDoc
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		doc, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		docs = append(docs, namedDoc{name: name, doc: doc})
	}
	return build(docs)
}

type namedDoc struct {
	name string
	doc  document
}

// decode parses strictly: unknown keys are errors.
func decode(data []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return document{}, fmt.Errorf("parse catalog: %w", err)
	}
	return doc, nil
}

func build(docs []namedDoc) (*Catalog, error) {
	profiles := make(map[string]*limits.Profile)
	for _, p := range limits.Builtins() {
		profiles[normalize(p.Name())] = p
	}

	c := &Catalog{byName: make(map[string]*access.Attraction)}

	// Profiles first so attractions in any document can reference them.
	for _, nd := range docs {
		names := make([]string, 0, len(nd.doc.Profiles))
		for name := range nd.doc.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			key := normalize(name)
			if key == "" {
				return nil, fmt.Errorf("%s: profile with empty name", nd.name)
			}
			if _, dup := profiles[key]; dup {
				return nil, fmt.Errorf("%s: profile %q already defined", nd.name, name)
			}
			p, err := newProfile(key, nd.doc.Profiles[name])
			if err != nil {
				return nil, fmt.Errorf("%s: profile %q: %w", nd.name, name, err)
			}
			profiles[key] = p
			c.custom = append(c.custom, p)
		}
	}

	for _, nd := range docs {
		for i, ad := range nd.doc.Attractions {
			name := strings.TrimSpace(ad.Name)
			if name == "" {
				return nil, fmt.Errorf("%s: attraction #%d has no name", nd.name, i+1)
			}
			key := normalize(name)
			if _, dup := c.byName[key]; dup {
				return nil, fmt.Errorf("%s: attraction %q already defined", nd.name, name)
			}
			p, ok := profiles[normalize(ad.Profile)]
			if !ok {
				return nil, fmt.Errorf("%s: attraction %q: unknown profile %q", nd.name, name, ad.Profile)
			}
			a := access.NewAttraction(name, p)
			c.byName[key] = a
			c.attractions = append(c.attractions, a)
		}
	}

	if len(c.attractions) == 0 {
		return nil, ErrEmpty
	}

	sort.Slice(c.attractions, func(i, j int) bool {
		return normalize(c.attractions[i].Name) < normalize(c.attractions[j].Name)
	})
	sort.Slice(c.custom, func(i, j int) bool {
		return c.custom[i].Name() < c.custom[j].Name()
	})
	return c, nil
}

func newProfile(name string, pd profileDoc) (*limits.Profile, error) {
	age, err := toRange(limits.Age, pd.Age)
	if err != nil {
		return nil, err
	}
	weight, err := toRange(limits.Weight, pd.Weight)
	if err != nil {
		return nil, err
	}
	height, err := toRange(limits.Height, pd.Height)
	if err != nil {
		return nil, err
	}
	p := limits.NewProfile(name, age, weight, height)
	return &p, nil
}

// toRange requires exactly [min, max] with min <= max.
func toRange(m limits.Measure, bounds []int) (limits.IntRange, error) {
	if len(bounds) == 0 {
		return limits.IntRange{}, fmt.Errorf("missing %s range", m)
	}
	if len(bounds) != 2 {
		return limits.IntRange{}, fmt.Errorf("%s range needs [min, max], got %d values", m, len(bounds))
	}
	if bounds[0] > bounds[1] {
		return limits.IntRange{}, fmt.Errorf("%s range min %d exceeds max %d", m, bounds[0], bounds[1])
	}
	return limits.NewIntRange(bounds[0], bounds[1]), nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup finds an attraction by name, ignoring case.
func (c *Catalog) Lookup(name string) (*access.Attraction, bool) {
	a, ok := c.byName[normalize(name)]
	return a, ok
}

// Attractions returns every attraction sorted by name.
func (c *Catalog) Attractions() []*access.Attraction {
	out := make([]*access.Attraction, len(c.attractions))
	copy(out, c.attractions)
	return out
}

// Profiles returns built-in profiles followed by custom profiles.
func (c *Catalog) Profiles() []*limits.Profile {
	return append(limits.Builtins(), c.custom...)
}
