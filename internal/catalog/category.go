package catalog

import (
	"errors"
	"strings"
)

// ErrMissingEnglishName means a slug had to be derived but the payload's
// name carries no "en" entry.
var ErrMissingEnglishName = errors.New("english name required to derive slug")

type Category struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
	Slug string        `json:"slug"`
}

func (c Category) RecordID() string { return c.ID }

type CategoryPatch struct {
	Name *LocalizedText `json:"name"`
	Slug *string        `json:"slug"`
}

// Apply overlays the patch on c; same shallow top-level policy as products.
func (patch CategoryPatch) Apply(c Category) Category {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Slug != nil {
		c.Slug = *patch.Slug
	}
	return c
}

// DeriveSlug turns the English name into a URL-safe slug: lower-cased, with
// whitespace runs collapsed to a single hyphen.
func DeriveSlug(name LocalizedText) (string, error) {
	en, ok := name["en"]
	if !ok || strings.TrimSpace(en) == "" {
		return "", ErrMissingEnglishName
	}
	return strings.Join(strings.Fields(strings.ToLower(en)), "-"), nil
}
