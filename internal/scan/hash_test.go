package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func mustHash(t *testing.T, path string) string {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}

	digest, err := hashFile(path, info.Size())
	if err != nil {
		t.Fatalf("hashing %s: %v", path, err)
	}

	return digest
}

func TestHashFileIdenticalSmallFiles(t *testing.T) {
	dir := t.TempDir()

	content := []byte("identical content under the sample size")
	writeBytes(t, filepath.Join(dir, "a.txt"), content)
	writeBytes(t, filepath.Join(dir, "b.txt"), content)
	writeBytes(t, filepath.Join(dir, "c.txt"), []byte("something else entirely goes here!!"))

	hashA := mustHash(t, filepath.Join(dir, "a.txt"))
	hashB := mustHash(t, filepath.Join(dir, "b.txt"))
	hashC := mustHash(t, filepath.Join(dir, "c.txt"))

	if hashA != hashB {
		t.Errorf("identical files hashed differently: %s vs %s", hashA, hashB)
	}

	if hashA == hashC {
		t.Errorf("distinct files hashed identically: %s", hashA)
	}
}

func TestHashFileSamplesLargeFiles(t *testing.T) {
	dir := t.TempDir()

	lead := bytes.Repeat([]byte{0xAB}, hashSampleSize)

	// Larger than the sample, differing only in the tail.
	writeBytes(t, filepath.Join(dir, "big1"), append(append([]byte{}, lead...), []byte("tail-one")...))
	writeBytes(t, filepath.Join(dir, "big2"), append(append([]byte{}, lead...), []byte("tail-TWO")...))

	hash1 := mustHash(t, filepath.Join(dir, "big1"))
	hash2 := mustHash(t, filepath.Join(dir, "big2"))

	if hash1 != hash2 {
		t.Errorf("files identical in their leading sample hashed differently: %s vs %s", hash1, hash2)
	}

	// At the sample size or below, the whole content counts.
	small1 := bytes.Repeat([]byte{0xCD}, 4096)
	small2 := append(append([]byte{}, small1[:4095]...), 0xCE)

	writeBytes(t, filepath.Join(dir, "small1"), small1)
	writeBytes(t, filepath.Join(dir, "small2"), small2)

	hash1 = mustHash(t, filepath.Join(dir, "small1"))
	hash2 = mustHash(t, filepath.Join(dir, "small2"))

	if hash1 == hash2 {
		t.Errorf("small files differing in the last byte hashed identically: %s", hash1)
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := hashFile(filepath.Join(t.TempDir(), "gone"), 10); err == nil {
		t.Error("expected an error hashing a missing file")
	}
}
