package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := GenerateRandomString(12)
		if len(s) != 12 {
			t.Fatalf("length = %d, want 12", len(s))
		}
		seen[s] = true
	}
	if len(seen) < 45 {
		t.Errorf("expected mostly unique strings, got %d unique of 50", len(seen))
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"", "file"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusNotFound, "Order not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "Order not found" {
		t.Errorf(`body = %v, want {"message":"Order not found"}`, body)
	}
}
