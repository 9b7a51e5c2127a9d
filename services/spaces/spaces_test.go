package spaces

import (
	"strings"
	"testing"
)

func newTestClient(t *testing.T, cdnURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		AccessKey: "test-key",
		SecretKey: "test-secret",
		Bucket:    "school-assets",
		Region:    "blr1",
		Endpoint:  "digitaloceanspaces.com",
		CDNURL:    cdnURL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestFileURL(t *testing.T) {
	client := newTestClient(t, "")
	url := client.FileURL("images/photo.jpg")
	expected := "https://school-assets.digitaloceanspaces.com/images/photo.jpg"
	if url != expected {
		t.Errorf("Expected %s, got %s", expected, url)
	}

	cdnClient := newTestClient(t, "https://cdn.greenvalleyschool.edu")
	url = cdnClient.FileURL("images/photo.jpg")
	expected = "https://cdn.greenvalleyschool.edu/images/photo.jpg"
	if url != expected {
		t.Errorf("Expected %s, got %s", expected, url)
	}
}

func TestKeyFromURL(t *testing.T) {
	client := newTestClient(t, "")

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "bucket host URL",
			url:  "https://school-assets.digitaloceanspaces.com/images/photo.jpg",
			want: "images/photo.jpg",
		},
		{
			name: "nested key",
			url:  "https://school-assets.digitaloceanspaces.com/documents/2026/notice.pdf",
			want: "documents/2026/notice.pdf",
		},
		{
			name: "foreign host",
			url:  "https://example.com/images/photo.jpg",
			want: "",
		},
		{
			name: "other bucket",
			url:  "https://other-bucket.digitaloceanspaces.com/images/photo.jpg",
			want: "",
		},
		{
			name: "empty URL",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.KeyFromURL(tt.url); got != tt.want {
				t.Errorf("KeyFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestKeyFromURLWithCDN(t *testing.T) {
	client := newTestClient(t, "https://cdn.greenvalleyschool.edu")

	key := client.KeyFromURL("https://cdn.greenvalleyschool.edu/images/photo.jpg")
	if key != "images/photo.jpg" {
		t.Errorf("Expected images/photo.jpg, got %q", key)
	}

	// The origin bucket URL still resolves even when a CDN is configured
	key = client.KeyFromURL("https://school-assets.digitaloceanspaces.com/images/photo.jpg")
	if key != "images/photo.jpg" {
		t.Errorf("Expected images/photo.jpg from origin URL, got %q", key)
	}
}

func TestGenerateKey(t *testing.T) {
	key := GenerateKey("images", "school photo.JPG")

	if !strings.HasPrefix(key, "images/") {
		t.Errorf("Expected images/ prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".JPG") {
		t.Errorf("Expected original extension preserved, got %q", key)
	}

	// Keys must be unique per upload
	if GenerateKey("images", "a.png") == GenerateKey("images", "a.png") {
		t.Error("Expected unique keys for repeated uploads of the same filename")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"notice.pdf", "application/pdf"},
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"logo.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"hero.webp", "image/webp"},
		{"unknown.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.filename); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
