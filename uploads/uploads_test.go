package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"craftnest/globals"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func addImagePart(t *testing.T, w *multipart.Writer, field, filename, contentType string, data []byte) {
	t.Helper()
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("creating part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing part: %v", err)
	}
}

func redirectDirs(t *testing.T) {
	t.Helper()
	oldUpload, oldThumb := uploadDir, thumbDir
	uploadDir = filepath.Join(t.TempDir(), "uploads")
	thumbDir = filepath.Join(uploadDir, "thumb")
	t.Cleanup(func() { uploadDir, thumbDir = oldUpload, oldThumb })
}

func authedUpload(body *bytes.Buffer, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	ctx := context.WithValue(req.Context(), globals.UserIDKey, "uTester")
	return req.WithContext(ctx)
}

func TestUploadImage(t *testing.T) {
	redirectDirs(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	addImagePart(t, w, "image", "weave.png", "image/png", pngBytes(t))
	w.Close()

	rec := httptest.NewRecorder()
	UploadImage(rec, authedUpload(&body, w.FormDataContentType()), nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["url"] == "" || !strings.HasSuffix(resp["url"], ".png") {
		t.Errorf("url = %q, want a .png path", resp["url"])
	}

	saved, err := os.ReadDir(uploadDir)
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	var found bool
	for _, entry := range saved {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), "uTester-") {
			found = true
		}
	}
	if !found {
		t.Error("no stored file carries the uploader prefix")
	}
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	redirectDirs(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	addImagePart(t, w, "image", "notes.txt", "text/plain", []byte("hello"))
	w.Close()

	rec := httptest.NewRecorder()
	UploadImage(rec, authedUpload(&body, w.FormDataContentType()), nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadImagesBatch(t *testing.T) {
	redirectDirs(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	addImagePart(t, w, "images", "one.png", "image/png", pngBytes(t))
	addImagePart(t, w, "images", "two.png", "image/png", pngBytes(t))
	w.Close()

	rec := httptest.NewRecorder()
	UploadImages(rec, authedUpload(&body, w.FormDataContentType()), nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Files []map[string]string `json:"files"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(resp.Files))
	}
	for _, entry := range resp.Files {
		if entry["url"] == "" {
			t.Errorf("entry missing url: %v", entry)
		}
	}
}

func TestUploadImagesBatchLimit(t *testing.T) {
	redirectDirs(t)

	img := pngBytes(t)
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for i := 0; i < maxBatchFiles+1; i++ {
		addImagePart(t, w, "images", fmt.Sprintf("img%d.png", i), "image/png", img)
	}
	w.Close()

	rec := httptest.NewRecorder()
	UploadImages(rec, authedUpload(&body, w.FormDataContentType()), nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadImagesRequiresFiles(t *testing.T) {
	redirectDirs(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	w.Close()

	rec := httptest.NewRecorder()
	UploadImages(rec, authedUpload(&body, w.FormDataContentType()), nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadImagesRejectsMixedTypes(t *testing.T) {
	redirectDirs(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	addImagePart(t, w, "images", "ok.png", "image/png", pngBytes(t))
	addImagePart(t, w, "images", "bad.txt", "text/plain", []byte("hello"))
	w.Close()

	rec := httptest.NewRecorder()
	UploadImages(rec, authedUpload(&body, w.FormDataContentType()), nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	// Type checks run before any write, so the valid file must not have
	// been stored either.
	if entries, err := os.ReadDir(uploadDir); err == nil && len(entries) > 0 {
		t.Errorf("expected no stored files, found %d", len(entries))
	}
}
