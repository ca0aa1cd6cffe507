package catalog

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: applying a patch changes exactly the fields the patch carries;
// everything else is preserved bit for bit.
func TestProperty_PatchTouchesOnlyPatchedFields(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("patched fields replace, absent fields persist", prop.ForAll(
		func(base Product, category, material string, patchCategory, patchMaterial bool) bool {
			patch := ProductPatch{}
			if patchCategory {
				patch.Category = &category
			}
			if patchMaterial {
				patch.Material = &material
			}

			out := patch.Apply(base)

			if patchCategory && out.Category != category {
				return false
			}
			if !patchCategory && out.Category != base.Category {
				return false
			}
			if patchMaterial && out.Material != material {
				return false
			}
			if !patchMaterial && out.Material != base.Material {
				return false
			}

			return out.ID == base.ID &&
				out.CreatedAt == base.CreatedAt &&
				out.UpdatedAt == base.UpdatedAt &&
				out.Dimensions == base.Dimensions &&
				out.Image == base.Image
		},
		genProduct(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: derived slugs are lower-case, free of whitespace, and stable
// under re-derivation from themselves.
func TestProperty_DerivedSlugIsNormalized(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("slug has no upper-case and no whitespace", prop.ForAll(
		func(en string) bool {
			slug, err := DeriveSlug(LocalizedText{"en": en})
			if err != nil {
				// Only whitespace-only names may fail.
				return strings.TrimSpace(en) == ""
			}

			if slug != strings.ToLower(slug) {
				return false
			}
			if strings.ContainsAny(slug, " \t\n") {
				return false
			}

			again, err := DeriveSlug(LocalizedText{"en": slug})
			return err == nil && again == slug
		},
		gen.RegexMatch(`[A-Za-z ]{0,20}`),
	))

	properties.TestingRun(t)
}

func genProduct() gopter.Gen {
	return gopter.CombineGens(
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	).Map(func(vs []interface{}) Product {
		return Product{
			ID:         "p_" + vs[0].(string),
			Name:       LocalizedText{"en": vs[1].(string)},
			Category:   vs[2].(string),
			Image:      vs[3].(string),
			Dimensions: vs[4].(string),
			Material:   vs[5].(string),
			CreatedAt:  "2024-01-01T00:00:00Z",
		}
	})
}
