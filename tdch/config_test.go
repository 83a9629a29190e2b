package tdch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relloyd/tdch/logger"
)

func TestConfigSetLibJars(t *testing.T) {
	log := logger.NewLogger("tdch", "error", false)
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "lib"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lib", "terajdbc4.jar"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := getValidImportConfig()
	// Test 1 - matches are saved.
	cfg.SetLibJars(log, dir, "./lib/*.jar")
	expected := dir + "/./lib/terajdbc4.jar"
	if cfg.LibJars != expected {
		t.Fatalf("test 1 failed: expected: %v; got: %v", expected, cfg.LibJars)
	}
	got := mustNewParameters(t, cfg).MustArgs()
	if got[0] != "-libjars" || got[1] != expected {
		t.Fatalf("test 1 failed: expected -libjars first; got: %v", got)
	}
	// Test 2 - no matches leaves an empty string and no -libjars flag.
	cfg.SetLibJars(log, dir, "./missing/*")
	if cfg.LibJars != "" {
		t.Fatalf("test 2 failed: expected empty string; got: %q", cfg.LibJars)
	}
	got = mustNewParameters(t, cfg).MustArgs()
	if got[0] != "-url" {
		t.Fatalf("test 2 failed: expected -url first; got: %v", got)
	}
}

func TestConfigStringMasksCredential(t *testing.T) {
	cfg := getValidImportConfig()
	s := cfg.String()
	if strings.Contains(s, cfg.CredentialName) {
		t.Fatalf("credential leaked in %q", s)
	}
	if !strings.HasPrefix(s, "Config [mrParams=, libJars=, jdbcClassName=") {
		t.Fatalf("unexpected field order in %q", s)
	}
	if !strings.Contains(s, "credentialName=**********, ") {
		t.Fatalf("expected masked credential in %q", s)
	}
}
