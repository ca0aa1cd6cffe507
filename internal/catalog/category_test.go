package catalog

import (
	"errors"
	"testing"
)

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		name LocalizedText
		want string
	}{
		{LocalizedText{"en": "Salad Bowls"}, "salad-bowls"},
		{LocalizedText{"en": "Multi   Space"}, "multi-space"},
		{LocalizedText{"en": "Vases"}, "vases"},
		{LocalizedText{"en": "  Trimmed  Edges  "}, "trimmed-edges"},
		{LocalizedText{"en": "plates", "it": "Piatti"}, "plates"},
	}

	for _, tc := range cases {
		got, err := DeriveSlug(tc.name)
		if err != nil {
			t.Fatalf("DeriveSlug(%v): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("DeriveSlug(%v)=%q want %q", tc.name, got, tc.want)
		}
	}
}

func TestDeriveSlug_MissingEnglish(t *testing.T) {
	for _, name := range []LocalizedText{
		nil,
		{},
		{"it": "Insalatiere"},
		{"en": "   "},
	} {
		if _, err := DeriveSlug(name); !errors.Is(err, ErrMissingEnglishName) {
			t.Fatalf("DeriveSlug(%v) err=%v want ErrMissingEnglishName", name, err)
		}
	}
}

func TestCategoryPatch_ApplyShallow(t *testing.T) {
	c := Category{
		ID:   "c_1",
		Name: LocalizedText{"en": "Plates", "it": "Piatti"},
		Slug: "plates",
	}

	// Shallow policy: a name patch replaces the whole mapping, so the "it"
	// entry goes away.
	out := CategoryPatch{Name: &LocalizedText{"en": "Dishes"}}.Apply(c)
	if out.Name["en"] != "Dishes" {
		t.Fatalf("en=%q", out.Name["en"])
	}
	if _, ok := out.Name["it"]; ok {
		t.Fatalf("shallow merge should have dropped it")
	}
	if out.Slug != "plates" {
		t.Fatalf("slug changed: %q", out.Slug)
	}
	if out.ID != "c_1" {
		t.Fatalf("id changed: %q", out.ID)
	}
}
