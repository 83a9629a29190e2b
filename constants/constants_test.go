package constants

import (
	"strings"
	"testing"
)

func TestFlagPrefix(t *testing.T) {
	// Check that every TDCH flag uses the single dash prefix expected by the tool's parser.
	flags := []string{FlagLibJars, FlagUrl, FlagClassName, FlagFileFormat, FlagJobType, FlagUserName, FlagPassword,
		FlagNumMappers, FlagAvroSchemaFile, FlagAvroSchemaInline, FlagSeparator, FlagSourcePaths, FlagTargetTable,
		FlagMethod, FlagTargetPaths, FlagSourceTable, FlagSourceQuery}
	for _, f := range flags {
		if !strings.HasPrefix(f, "-") || strings.HasPrefix(f, "--") {
			t.Fatalf("unexpected flag format: %q", f)
		}
	}
}

func TestJdbcUrlParts(t *testing.T) {
	if !strings.HasSuffix(TeradataJdbcUrlPrefix, "//") {
		t.Fatal("Unexpected JDBC URL prefix - missing host separator.")
	}
	if !strings.HasPrefix(TeradataJdbcUrlCharSetKey, "/") {
		t.Fatal("Unexpected charset key - missing path separator.")
	}
}
