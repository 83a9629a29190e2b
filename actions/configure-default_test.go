package actions

import (
	"bytes"
	"testing"

	"github.com/relloyd/tdch/config"
)

func TestRunDefaultAddListRemove(t *testing.T) {
	dir := t.TempDir()
	var err error
	f := config.NewConfigFileWithDir(dir, config.MainFileFullName)
	buf := &bytes.Buffer{}
	// Test 1 - add new keys.
	for _, kv := range [][]string{{"td-hostname", "td.example.com"}, {"log-level", "debug"}} {
		if err = RunDefaultAdd(&DefaultAddConfig{ConfigFile: f, Key: kv[0], Value: kv[1], Writer: buf}); err != nil {
			t.Fatalf("test 1 failed: %v", err)
		}
	}
	// Test 2 - existing keys need force.
	if err = RunDefaultAdd(&DefaultAddConfig{ConfigFile: f, Key: "log-level", Value: "warn", Writer: buf}); err == nil {
		t.Fatal("test 2 failed, expected: error; got: nil")
	}
	if err = RunDefaultAdd(&DefaultAddConfig{ConfigFile: f, Key: "log-level", Value: "warn", Force: true, Writer: buf}); err != nil {
		t.Fatalf("test 2 failed: %v", err)
	}
	// Test 3 - list is sorted by key and read from disk.
	buf.Reset()
	reloaded := config.NewConfigFileWithDir(dir, config.MainFileFullName)
	if err = RunDefaultList(&DefaultListConfig{ConfigFile: reloaded, Writer: buf}); err != nil {
		t.Fatal(err)
	}
	expected := "log-level=warn\ntd-hostname=td.example.com\n"
	if buf.String() != expected {
		t.Fatalf("test 3 failed, expected: %q; got: %q", expected, buf.String())
	}
	// Test 4 - remove.
	if err = RunDefaultRemove(&DefaultRemoveConfig{ConfigFile: f, Key: "log-level", Writer: buf}); err != nil {
		t.Fatal(err)
	}
	if err = RunDefaultRemove(&DefaultRemoveConfig{ConfigFile: f, Key: "log-level", Writer: buf}); err == nil {
		t.Fatal("test 4 failed, expected: error removing missing key; got: nil")
	}
	// Test 5 - mandatory values.
	if err = RunDefaultAdd(&DefaultAddConfig{ConfigFile: f, Key: "x"}); err == nil {
		t.Fatal("test 5 failed, expected: error; got: nil")
	}
}
