// Package manifest loads declarative selector definitions from TOML.
//
// A manifest describes named selectors and combinations of them:
//
//	[[selector]]
//	name = "main-table"
//	element = "table"
//	id = "data"
//	classes = ["wide"]
//
//	[[selector]]
//	name = "hover-link"
//	element = "a"
//	pseudo_classes = ["hover"]
//
//	[[combine]]
//	name = "table-link"
//	left = "main-table"
//	symbol = ">"
//	right = "hover-link"
//
// Each [[selector]] table is built through the selector package in the
// canonical category order (element, id, classes, attribute,
// pseudo-classes, pseudo-element), so a well-formed manifest can never
// trip the ordering rules; invalid fragment values are rejected by
// validation before the builder runs. [[combine]] tables reference
// previously defined selectors or combines by name, which keeps
// references acyclic by construction.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/selcraft/selcraft/pkg/errors"
	"github.com/selcraft/selcraft/pkg/selector"
)

// SelectorDef is one [[selector]] table.
type SelectorDef struct {
	Name          string   `toml:"name"`
	Element       string   `toml:"element"`
	ID            string   `toml:"id"`
	Classes       []string `toml:"classes"`
	Attribute     string   `toml:"attribute"`
	PseudoClasses []string `toml:"pseudo_classes"`
	PseudoElement string   `toml:"pseudo_element"`
}

// CombineDef is one [[combine]] table. Left and Right name a selector
// or combine defined earlier in the manifest.
type CombineDef struct {
	Name   string `toml:"name"`
	Left   string `toml:"left"`
	Symbol string `toml:"symbol"`
	Right  string `toml:"right"`
}

// File is the raw decoded manifest.
type File struct {
	Selectors []SelectorDef `toml:"selector"`
	Combines  []CombineDef  `toml:"combine"`
}

// Set holds the built renderables of a manifest in definition order.
type Set struct {
	names    []string
	byName   map[string]selector.Renderer
	combines map[string]bool
}

// Names returns all definition names in manifest order.
func (s *Set) Names() []string { return s.names }

// Get returns the renderable with the given name.
func (s *Set) Get(name string) (selector.Renderer, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// IsCombine reports whether name was defined by a [[combine]] table.
func (s *Set) IsCombine(name string) bool { return s.combines[name] }

// Len returns the number of definitions.
func (s *Set) Len() int { return len(s.names) }

// Load reads and builds a selector manifest from a TOML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML manifest data and builds every definition.
func Parse(data []byte) (*Set, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if len(file.Selectors) == 0 && len(file.Combines) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest defines no selectors")
	}

	set := &Set{
		byName:   make(map[string]selector.Renderer, len(file.Selectors)+len(file.Combines)),
		combines: make(map[string]bool, len(file.Combines)),
	}

	for _, def := range file.Selectors {
		if err := set.add(def.Name); err != nil {
			return nil, err
		}
		b, err := build(def)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "selector %q", def.Name)
		}
		set.byName[def.Name] = b
	}

	for _, def := range file.Combines {
		if err := set.add(def.Name); err != nil {
			return nil, err
		}
		c, err := set.combine(def)
		if err != nil {
			return nil, err
		}
		set.byName[def.Name] = c
		set.combines[def.Name] = true
	}

	return set, nil
}

// add validates and registers a definition name.
func (s *Set) add(name string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	if _, exists := s.byName[name]; exists {
		return errors.New(errors.ErrCodeInvalidManifest, "duplicate definition name: %q", name)
	}
	s.names = append(s.names, name)
	return nil
}

// build turns one [[selector]] table into a Builder, applying fragments
// in gating-safe category order.
func build(def SelectorDef) (*selector.Builder, error) {
	b := new(selector.Builder)

	if def.Element != "" {
		if err := errors.ValidateIdent("element", def.Element); err != nil {
			return nil, err
		}
		b.Element(def.Element)
	}
	if def.ID != "" {
		if err := errors.ValidateIdent("id", def.ID); err != nil {
			return nil, err
		}
		b.ID(def.ID)
	}
	for _, c := range def.Classes {
		if err := errors.ValidateIdent("class", c); err != nil {
			return nil, err
		}
		b.Class(c)
	}
	if def.Attribute != "" {
		if err := errors.ValidateAttribute(def.Attribute); err != nil {
			return nil, err
		}
		b.Attr(def.Attribute)
	}
	for _, p := range def.PseudoClasses {
		if err := errors.ValidatePseudo("pseudo-class", p); err != nil {
			return nil, err
		}
		b.PseudoClass(p)
	}
	if def.PseudoElement != "" {
		if err := errors.ValidatePseudo("pseudo-element", def.PseudoElement); err != nil {
			return nil, err
		}
		b.PseudoElement(def.PseudoElement)
	}

	if b.Empty() {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "selector defines no fragments")
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// combine resolves one [[combine]] table against earlier definitions.
func (s *Set) combine(def CombineDef) (*selector.Combinator, error) {
	left, ok := s.byName[def.Left]
	if !ok || left == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "combine %q references undefined selector %q", def.Name, def.Left)
	}
	right, ok := s.byName[def.Right]
	if !ok || right == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "combine %q references undefined selector %q", def.Name, def.Right)
	}
	sym, err := selector.ParseSymbol(def.Symbol)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "combine %q", def.Name)
	}
	return selector.Combine(left, sym, right), nil
}

// Render builds every definition's selector string in manifest order.
func (s *Set) Render() ([]Rendered, error) {
	out := make([]Rendered, 0, len(s.names))
	for _, name := range s.names {
		str, err := s.byName[name].Render()
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", name, err)
		}
		out = append(out, Rendered{Name: name, Selector: str})
	}
	return out, nil
}

// Rendered is one named, rendered selector.
type Rendered struct {
	Name     string
	Selector string
}
