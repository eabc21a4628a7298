package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"LabSite/config"
	"LabSite/internal/storage"
)

func setupImageTest(t *testing.T) *memStore {
	t.Helper()
	config.AppConfig.BucketName = "lab-images"
	config.AppConfig.PublicURLBase = "http://localhost:9000/lab-images/"
	config.AppConfig.UploadMaxFiles = 10
	config.AppConfig.UploadMaxBytes = 10 << 20

	store := newMemStore()
	prev := storage.Default
	storage.Default = store
	t.Cleanup(func() { storage.Default = prev })
	return store
}

type uploadFile struct {
	name string
	data []byte
}

// buildFileHeaders writes a multipart form and parses it back, so the
// headers open like a real request's.
func buildFileHeaders(t *testing.T, files []uploadFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("images", f.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"]
}

func TestStoreImageDedup(t *testing.T) {
	store := setupImageTest(t)
	ctx := context.Background()

	url1, err := StoreImage(ctx, []byte("same bytes"), "a.png", "image/png")
	if err != nil {
		t.Fatal(err)
	}
	url2, err := StoreImage(ctx, []byte("same bytes"), "b.png", "image/png")
	if err != nil {
		t.Fatal(err)
	}

	if url1 != url2 {
		t.Fatalf("identical content should reuse the URL: %q vs %q", url1, url2)
	}
	if store.puts != 1 {
		t.Fatalf("expect a single upload, got %d", store.puts)
	}
	if !strings.HasPrefix(url1, config.AppConfig.PublicURLBase) {
		t.Fatalf("url %q not under public base", url1)
	}
	if !strings.HasSuffix(url1, ".png") {
		t.Fatalf("url %q should keep the extension", url1)
	}
}

func TestSaveImagesOrder(t *testing.T) {
	store := setupImageTest(t)

	files := buildFileHeaders(t, []uploadFile{
		{"one.png", []byte("first")},
		{"two.jpg", []byte("second")},
		{"three.gif", []byte("third")},
	})

	urls, err := SaveImages(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}
	if len(urls) != 3 {
		t.Fatalf("expect 3 urls, got %d", len(urls))
	}
	if !strings.HasSuffix(urls[0], ".png") || !strings.HasSuffix(urls[1], ".jpg") || !strings.HasSuffix(urls[2], ".gif") {
		t.Fatalf("urls out of request order: %v", urls)
	}
	seen := make(map[string]struct{})
	for _, u := range urls {
		seen[u] = struct{}{}
	}
	if len(seen) != 3 {
		t.Fatalf("expect distinct urls, got %v", urls)
	}
	if store.puts != 3 {
		t.Fatalf("expect 3 uploads, got %d", store.puts)
	}
}

func TestSaveImagesStoreFailure(t *testing.T) {
	store := setupImageTest(t)
	store.failPut = true

	files := buildFileHeaders(t, []uploadFile{{"a.png", []byte("data")}})
	if _, err := SaveImages(context.Background(), files); err == nil {
		t.Fatal("expect the batch to fail when the store does")
	}
	if store.puts != 0 {
		t.Fatalf("expect no stored objects, got %d", store.puts)
	}
}

func TestSaveImagesEmptyBatch(t *testing.T) {
	setupImageTest(t)
	_, err := SaveImages(context.Background(), nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expect validation error, got %v", err)
	}
}

func TestSaveImagesTooManyFiles(t *testing.T) {
	setupImageTest(t)
	config.AppConfig.UploadMaxFiles = 2

	files := buildFileHeaders(t, []uploadFile{
		{"a.png", []byte("a")},
		{"b.png", []byte("b")},
		{"c.png", []byte("c")},
	})
	_, err := SaveImages(context.Background(), files)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expect validation error, got %v", err)
	}
}

func TestSaveImagesFileTooLarge(t *testing.T) {
	setupImageTest(t)
	config.AppConfig.UploadMaxBytes = 4

	files := buildFileHeaders(t, []uploadFile{{"big.png", []byte("over the limit")}})
	_, err := SaveImages(context.Background(), files)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expect validation error, got %v", err)
	}
}
