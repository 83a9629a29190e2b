package config

import (
	"errors"
	"path"
	"sort"
	"testing"
)

func TestFileGetSetDelete(t *testing.T) {
	dir := path.Join(t.TempDir(), "nested")
	f := NewConfigFileWithDir(dir, MainFileFullName)
	// Test 1 - missing file behaves like an empty file.
	var s string
	err := f.Get("log-level", &s)
	if !IsKeyNotFound(err) {
		t.Fatalf("test 1 failed: expected KeyNotFoundError; got: %v", err)
	}
	// Test 2 - values survive a round trip via a fresh File.
	if err = f.Set("log-level", "debug"); err != nil {
		t.Fatalf("test 2 failed: %v", err)
	}
	if err = f.Set("num-mappers", "8"); err != nil {
		t.Fatalf("test 2 failed: %v", err)
	}
	f2 := NewConfigFileWithDir(dir, MainFileFullName)
	if err = f2.Get("log-level", &s); err != nil || s != "debug" {
		t.Fatalf("test 2 failed: expected: debug; got: %v (%v)", s, err)
	}
	var n int
	if err = f2.Get("num-mappers", &n); err != nil || n != 8 {
		t.Fatalf("test 2 failed: expected weakly typed int 8; got: %v (%v)", n, err)
	}
	keys, err := f2.GetAllKeys()
	sort.Strings(keys)
	if err != nil || len(keys) != 2 || keys[0] != "log-level" || keys[1] != "num-mappers" {
		t.Fatalf("test 2 failed: unexpected keys %v (%v)", keys, err)
	}
	// Test 3 - delete.
	if err = f2.Delete("log-level"); err != nil {
		t.Fatalf("test 3 failed: %v", err)
	}
	if err = f2.Delete("log-level"); !IsKeyNotFound(err) {
		t.Fatalf("test 3 failed: expected KeyNotFoundError; got: %v", err)
	}
	// Test 4 - out must be a pointer.
	if err = f2.Get("num-mappers", n); err == nil {
		t.Fatal("test 4 failed: expected error for non-pointer")
	}
	if errors.As(err, &KeyNotFoundError{}) {
		t.Fatal("test 4 failed: unexpected KeyNotFoundError")
	}
}
