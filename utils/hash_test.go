package utils

import (
	"strings"
	"testing"
)

func TestHashBytesDeterministic(t *testing.T) {
	a := HashBytes([]byte("lab site image bytes"))
	b := HashBytes([]byte("lab site image bytes"))
	if a != b {
		t.Fatalf("same bytes hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expect 64 hex chars, got %d", len(a))
	}
	if a != strings.ToLower(a) {
		t.Fatal("digest must be lowercase hex")
	}
}

func TestHashBytesDistinct(t *testing.T) {
	a := HashBytes([]byte("first"))
	b := HashBytes([]byte("second"))
	if a == b {
		t.Fatal("different bytes must not collide")
	}
}

func TestBuildObjectKey(t *testing.T) {
	digest := HashBytes([]byte("x"))

	key := BuildObjectKey(digest, "photo.PNG")
	if key != digest+".png" {
		t.Fatalf("expect lowercased extension, got %s", key)
	}

	key = BuildObjectKey(digest, "noextension")
	if key != digest+".bin" {
		t.Fatalf("expect .bin fallback, got %s", key)
	}

	key = BuildObjectKey(digest, "archive.tar.gz")
	if key != digest+".gz" {
		t.Fatalf("expect last extension, got %s", key)
	}
}
