package emotion

import (
	"errors"
	"image/color"
	"testing"
)

func TestKindsEnumerationOrder(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != NumKinds || NumKinds != 10 {
		t.Fatalf("expected 10 kinds, got %d", len(kinds))
	}
	for i, k := range kinds {
		if int(k) != i {
			t.Fatalf("kind %d out of order: %v", i, k)
		}
	}
	kinds[0] = Pride
	if Kinds()[0] != Joy {
		t.Fatal("Kinds must return a copy")
	}
}

func TestCatalogEntries(t *testing.T) {
	if got := Anger.Color(); got != (color.RGBA{R: 255, G: 60, B: 60, A: 255}) {
		t.Fatalf("Anger color = %v", got)
	}
	if got := Hope.Archetype(); got != ArchetypeHope {
		t.Fatalf("Hope archetype = %q", got)
	}
	if got := Sadness.Influence(); got != (Vector{-1, -1}) {
		t.Fatalf("Sadness influence = %v", got)
	}
	if Curiosity.String() != "Curiosity" || KindNone.String() != "none" {
		t.Fatal("unexpected display names")
	}
}

func TestLookupInvalidKind(t *testing.T) {
	if _, err := Lookup(Kind(NumKinds)); !errors.Is(err, ErrInvalidEmotionKind) {
		t.Fatalf("expected ErrInvalidEmotionKind, got %v", err)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidEmotionKind) {
			t.Fatalf("expected panic with ErrInvalidEmotionKind, got %v", r)
		}
	}()
	_ = KindNone.Color()
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("love")
	if err != nil || k != Love {
		t.Fatalf("ParseKind(love) = %v, %v", k, err)
	}
	if _, err := ParseKind("boredom"); !errors.Is(err, ErrInvalidEmotionKind) {
		t.Fatalf("expected ErrInvalidEmotionKind, got %v", err)
	}
}

func TestKindSet(t *testing.T) {
	s := NewKindSet(Hope, Love, KindNone)
	if !s.Has(Love) || !s.Has(Hope) || s.Has(Fear) || s.Has(KindNone) {
		t.Fatalf("unexpected membership for %b", s)
	}
	kinds := s.Kinds()
	if len(kinds) != 2 || kinds[0] != Love || kinds[1] != Hope {
		t.Fatalf("Kinds() = %v, want catalog order [Love Hope]", kinds)
	}
}
