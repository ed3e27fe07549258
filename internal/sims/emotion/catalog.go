package emotion

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind identifies one entry of the emotion catalog.
type Kind uint8

const (
	Joy Kind = iota
	Fear
	Anger
	Calm
	Envy
	Love
	Sadness
	Hope
	Curiosity
	Pride

	// NumKinds is the catalog cardinality.
	NumKinds = int(Pride) + 1

	// KindNone marks the absence of a kind, e.g. the dominant emotion of an
	// empty grid. It is not part of the catalog.
	KindNone Kind = 0xff
)

// Archetype classifies emotions. It plays no part in the rules.
type Archetype string

const (
	ArchetypeVital   Archetype = "vital"
	ArchetypeShadow  Archetype = "shadow"
	ArchetypeNeutral Archetype = "neutral"
	ArchetypeEgo     Archetype = "ego"
	ArchetypeHope    Archetype = "hope"
	ArchetypeCurious Archetype = "curious"
)

// Vector is the catalog's influence direction of an emotion.
type Vector struct {
	X, Y int
}

// Emotion is an immutable catalog entry.
type Emotion struct {
	Kind      Kind
	Name      string
	Color     color.RGBA
	Influence Vector
	Archetype Archetype
}

var catalog = [NumKinds]Emotion{
	{Joy, "Joy", rgb(255, 230, 70), Vector{1, -1}, ArchetypeVital},
	{Fear, "Fear", rgb(90, 130, 255), Vector{-1, 1}, ArchetypeShadow},
	{Anger, "Anger", rgb(255, 60, 60), Vector{1, 0}, ArchetypeShadow},
	{Calm, "Calm", rgb(100, 255, 180), Vector{-1, 0}, ArchetypeNeutral},
	{Envy, "Envy", rgb(200, 100, 255), Vector{0, -1}, ArchetypeEgo},
	{Love, "Love", rgb(255, 160, 210), Vector{0, 1}, ArchetypeVital},
	{Sadness, "Sadness", rgb(130, 150, 255), Vector{-1, -1}, ArchetypeShadow},
	{Hope, "Hope", rgb(100, 255, 200), Vector{1, 1}, ArchetypeHope},
	{Curiosity, "Curiosity", rgb(255, 200, 120), Vector{0, 0}, ArchetypeCurious},
	{Pride, "Pride", rgb(255, 245, 100), Vector{1, 0}, ArchetypeEgo},
}

var allKinds = func() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}()

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Kinds returns every catalog kind in enumeration order. The slice is a copy.
func Kinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// Valid reports whether k belongs to the catalog.
func (k Kind) Valid() bool { return int(k) < NumKinds }

// Lookup returns the catalog entry for k.
func Lookup(k Kind) (Emotion, error) {
	if !k.Valid() {
		return Emotion{}, fmt.Errorf("emotion: kind %d: %w", k, ErrInvalidEmotionKind)
	}
	return catalog[k], nil
}

func mustLookup(k Kind) Emotion {
	e, err := Lookup(k)
	if err != nil {
		panic(err)
	}
	return e
}

// Color returns the base display color of k. It panics for kinds outside the
// catalog.
func (k Kind) Color() color.RGBA { return mustLookup(k).Color }

// Archetype returns the archetype tag of k. It panics for kinds outside the
// catalog.
func (k Kind) Archetype() Archetype { return mustLookup(k).Archetype }

// Influence returns the influence vector of k. It panics for kinds outside
// the catalog.
func (k Kind) Influence() Vector { return mustLookup(k).Influence }

// String returns the display name, "none" for KindNone.
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].Name
}

// ParseKind resolves a display name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			return e.Kind, nil
		}
	}
	return KindNone, fmt.Errorf("emotion: name %q: %w", name, ErrInvalidEmotionKind)
}

// KindSet is a set of catalog kinds.
type KindSet uint16

// NewKindSet builds a set from kinds. Kinds outside the catalog are dropped.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		if k.Valid() {
			s |= 1 << k
		}
	}
	return s
}

// Has reports membership.
func (s KindSet) Has(k Kind) bool { return k.Valid() && s&(1<<k) != 0 }

// Kinds lists the members in catalog order.
func (s KindSet) Kinds() []Kind {
	var out []Kind
	for _, k := range allKinds {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
