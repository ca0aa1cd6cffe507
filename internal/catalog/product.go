package catalog

import "time"

// LocalizedText maps a language code to a display string. Seed data carries
// "en" and "it"; "en" is the only key the service itself depends on.
type LocalizedText map[string]string

type Product struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Image       string        `json:"image,omitempty"`
	Dimensions  string        `json:"dimensions,omitempty"`
	Material    string        `json:"material,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
}

func (p Product) RecordID() string { return p.ID }

// ProductPatch is a partial product as supplied by a create or update
// request. Nil fields were absent from the payload.
type ProductPatch struct {
	Name        *LocalizedText `json:"name"`
	Description *LocalizedText `json:"description"`
	Category    *string        `json:"category"`
	Image       *string        `json:"image"`
	Dimensions  *string        `json:"dimensions"`
	Material    *string        `json:"material"`
}

// Apply overlays the patch on p, shallow at the top level: a present field
// replaces the stored field entirely (a name patch with only "en" drops any
// other languages), an absent field is preserved.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Dimensions != nil {
		p.Dimensions = *patch.Dimensions
	}
	if patch.Material != nil {
		p.Material = *patch.Material
	}
	return p
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
