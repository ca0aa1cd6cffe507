package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ArtisanCatalog/internal/upload"
	"ArtisanCatalog/pkg/kit"
)

const (
	maxCategoryBody = 1 << 20
	// JSON payload field plus one image under the 5 MiB cap.
	maxProductForm = 6 << 20
)

type Server struct {
	Products   *Collection[Product]
	Categories *Collection[Category]
	Images     *upload.Store
	Log        *zap.Logger
}

func (s *Server) ProductRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.listProducts)
	r.Post("/", s.createProduct)
	r.Get("/{id}", s.getProduct)
	r.Put("/{id}", s.updateProduct)
	r.Delete("/{id}", s.deleteProduct)

	return r
}

func (s *Server) CategoryRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.listCategories)
	r.Post("/", s.createCategory)
	r.Put("/{id}", s.updateCategory)
	r.Delete("/{id}", s.deleteCategory)

	return r
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Products.List())
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Products.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	patch, uploaded, ok := s.productForm(w, r)
	if !ok {
		return
	}

	p := Product{
		ID:        "p_" + uuid.NewString(),
		CreatedAt: timestamp(),
	}
	p = patch.Apply(p)
	if uploaded != "" {
		p.Image = uploaded
	}

	created, err := s.Products.Insert(p)
	if err != nil {
		s.Log.Error("persist product failed", zap.Error(err), zap.String("id", p.ID))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, uploaded, ok := s.productForm(w, r)
	if !ok {
		return
	}

	updated, found, err := s.Products.Update(id, func(p Product) Product {
		p = patch.Apply(p)
		if uploaded != "" {
			p.Image = uploaded
		}
		p.UpdatedAt = timestamp()
		return p
	})
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	if err != nil {
		s.Log.Error("persist product failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, found, err := s.Products.Delete(id)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	if err != nil {
		s.Log.Error("persist products failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	// Best effort: the record is gone either way.
	if err := s.Images.Remove(removed.Image); err != nil {
		s.Log.Warn("remove product image failed", zap.Error(err), zap.String("image", removed.Image))
	}

	kit.WriteMessage(w, http.StatusOK, "product deleted")
}

// productForm decodes the multipart create/update request: a "data" field
// holding the JSON product payload plus an optional "image" file. On failure
// it writes the response itself and returns ok=false. A malformed payload is
// a processing failure (500); a rejected upload is the client's fault (400).
func (s *Server) productForm(w http.ResponseWriter, r *http.Request) (ProductPatch, string, bool) {
	var patch ProductPatch

	if err := r.ParseMultipartForm(maxProductForm); err != nil {
		kit.WriteError(w, r, http.StatusInternalServerError, "cannot process product payload", map[string]any{"cause": err.Error()})
		return patch, "", false
	}

	raw := r.FormValue("data")
	if raw == "" {
		kit.WriteError(w, r, http.StatusInternalServerError, "cannot process product payload", map[string]any{"cause": "missing data field"})
		return patch, "", false
	}
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		kit.WriteError(w, r, http.StatusInternalServerError, "cannot process product payload", map[string]any{"cause": err.Error()})
		return patch, "", false
	}

	file, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return patch, "", true
	}
	if err != nil {
		kit.WriteError(w, r, http.StatusInternalServerError, "cannot process product payload", map[string]any{"cause": err.Error()})
		return patch, "", false
	}
	defer file.Close()

	path, err := s.Images.Save(file, hdr)
	if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrTooLarge) {
		kit.WriteError(w, r, http.StatusBadRequest, "rejected image upload", map[string]any{"cause": err.Error()})
		return patch, "", false
	}
	if err != nil {
		s.Log.Error("store upload failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return patch, "", false
	}

	return patch, path, true
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Categories.List())
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeCategory(w, r)
	if !ok {
		return
	}

	c := Category{ID: "c_" + uuid.NewString()}
	c = patch.Apply(c)

	if c.Slug == "" {
		slug, err := DeriveSlug(c.Name)
		if err != nil {
			kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		c.Slug = slug
	}

	created, err := s.Categories.Insert(c)
	if err != nil {
		s.Log.Error("persist category failed", zap.Error(err), zap.String("id", c.ID))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, ok := decodeCategory(w, r)
	if !ok {
		return
	}

	// A patch that leaves the slug empty gets a rederived one: from the new
	// name when the patch renames, else from the stored name. A patch
	// touching neither field keeps the stored slug.
	var derived string
	if patch.Slug == nil || *patch.Slug == "" {
		name := patch.Name
		if name == nil && patch.Slug != nil {
			existing, ok := s.Categories.Get(id)
			if !ok {
				kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"id": id})
				return
			}
			name = &existing.Name
		}
		if name != nil {
			slug, err := DeriveSlug(*name)
			if err != nil {
				kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
				return
			}
			derived = slug
		}
	}

	updated, found, err := s.Categories.Update(id, func(c Category) Category {
		c = patch.Apply(c)
		if derived != "" {
			c.Slug = derived
		}
		return c
	})
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"id": id})
		return
	}
	if err != nil {
		s.Log.Error("persist category failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// No cascade: products keep their soft reference to the removed slug.
	_, found, err := s.Categories.Delete(id)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"id": id})
		return
	}
	if err != nil {
		s.Log.Error("persist categories failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteMessage(w, http.StatusOK, "category deleted")
}

func decodeCategory(w http.ResponseWriter, r *http.Request) (CategoryPatch, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCategoryBody)

	var patch CategoryPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return patch, false
	}
	return patch, true
}
