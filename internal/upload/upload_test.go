package upload

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	gifBytes = []byte("GIF89a")
)

// formFile round-trips bytes through a real multipart request so Save sees
// the same multipart.FileHeader a handler would.
func formFile(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	pw, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := pw.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}

	file, hdr, err := req.FormFile("image")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	t.Cleanup(func() { file.Close() })
	return file, hdr
}

func TestSave_AcceptsValidImage(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, 1<<20)

	file, hdr := formFile(t, "bowl.png", "image/png", pngBytes)

	path, err := s.Save(file, hdr)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, URLPrefix) {
		t.Fatalf("path=%q want %s prefix", path, URLPrefix)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("path=%q want original extension", path)
	}

	raw, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, URLPrefix)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(raw, pngBytes) {
		t.Fatalf("stored bytes differ")
	}
}

func TestSave_UniquePaths(t *testing.T) {
	s := NewStore(t.TempDir(), 1<<20)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		file, hdr := formFile(t, "same-name.gif", "image/gif", gifBytes)
		path, err := s.Save(file, hdr)
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate path %s", path)
		}
		seen[path] = true
	}
}

func TestSave_RejectsBadExtension(t *testing.T) {
	s := NewStore(t.TempDir(), 1<<20)

	file, hdr := formFile(t, "notes.txt", "image/png", pngBytes)
	if _, err := s.Save(file, hdr); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err=%v want ErrUnsupportedType", err)
	}
}

func TestSave_RejectsBadDeclaredType(t *testing.T) {
	s := NewStore(t.TempDir(), 1<<20)

	file, hdr := formFile(t, "bowl.png", "application/pdf", pngBytes)
	if _, err := s.Save(file, hdr); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err=%v want ErrUnsupportedType", err)
	}
}

func TestSave_RejectsMismatchedContent(t *testing.T) {
	s := NewStore(t.TempDir(), 1<<20)

	// Right extension and declared type, but the bytes are not an image.
	file, hdr := formFile(t, "fake.png", "image/png", []byte("just some text"))
	if _, err := s.Save(file, hdr); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err=%v want ErrUnsupportedType", err)
	}
}

func TestSave_RejectsOversize(t *testing.T) {
	s := NewStore(t.TempDir(), 64)

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 128)...)
	file, hdr := formFile(t, "big.png", "image/png", big)
	if _, err := s.Save(file, hdr); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err=%v want ErrTooLarge", err)
	}
}

func TestOwns(t *testing.T) {
	s := NewStore(t.TempDir(), 1<<20)

	if !s.Owns(URLPrefix + "abc.png") {
		t.Fatalf("managed path not owned")
	}
	for _, p := range []string{"", "/assets/seed.jpg", "https://cdn.example.com/x.png"} {
		if s.Owns(p) {
			t.Fatalf("external path %q claimed as owned", p)
		}
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, 1<<20)

	file, hdr := formFile(t, "bowl.png", "image/png", pngBytes)
	path, err := s.Save(file, hdr)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(path, URLPrefix))); !os.IsNotExist(err) {
		t.Fatalf("file still present")
	}

	// Second removal is a no-op, not an error.
	if err := s.Remove(path); err != nil {
		t.Fatalf("remove missing: %v", err)
	}

	// External paths are never touched.
	if err := s.Remove("/assets/seed.jpg"); err != nil {
		t.Fatalf("remove external: %v", err)
	}
}
