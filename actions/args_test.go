package actions

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/relloyd/tdch/config"
	"github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/logger"
	"github.com/relloyd/tdch/tdch"
)

func getValidExportProperties() config.JobProperties {
	return config.JobProperties{
		JdbcClassName:   constants.TeradataJdbcDriverClassName,
		HostName:        "td.example.com",
		UserName:        "etl_user",
		CredentialName:  "tdWallet",
		JobType:         constants.TdchJobTypeHdfs,
		FileFormat:      "textfile",
		NumMappers:      2,
		SourceTableName: "sales.orders",
		TargetHdfsPath:  "/data/orders",
	}
}

var expectedExportArgs = []string{
	"-url", "jdbc:teradata://td.example.com/CHARSET=UTF8",
	"-classname", constants.TeradataJdbcDriverClassName,
	"-fileformat", "textfile",
	"-jobtype", "hdfs",
	"-username", "etl_user",
	"-password", "tdWallet",
	"-nummappers", "2",
	"-targetpaths", "/data/orders",
	"-sourcetable", "sales.orders",
	"-method", constants.TdchDefaultRetrieveMethod,
}

func TestRunArgsLines(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &ArgsConfig{
		LogLevel:      "error",
		OutputFormat:  OutputFormatLines,
		WithToolClass: true,
		Properties:    getValidExportProperties(),
		Writer:        buf,
	}
	if err := RunArgs(cfg); err != nil {
		t.Fatal(err)
	}
	expected := append([]string{constants.TdchImportToolClass}, expectedExportArgs...)
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected: %v; got: %v", expected, got)
	}
}

func TestRunArgsJsonAndYaml(t *testing.T) {
	// Test 1 - JSON output omits the tool class unless asked for.
	buf := &bytes.Buffer{}
	cfg := &ArgsConfig{LogLevel: "error", OutputFormat: OutputFormatJson, Properties: getValidExportProperties(), Writer: buf}
	if err := RunArgs(cfg); err != nil {
		t.Fatal(err)
	}
	got := ArgsResponse{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ToolClass != "" || !reflect.DeepEqual(got.Args, expectedExportArgs) {
		t.Fatalf("test 1 failed, expected: %v; got: %v", expectedExportArgs, got)
	}
	// Test 2 - YAML output.
	buf.Reset()
	cfg.OutputFormat = "YAML"
	cfg.WithToolClass = true
	if err := RunArgs(cfg); err != nil {
		t.Fatal(err)
	}
	got = ArgsResponse{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ToolClass != constants.TdchImportToolClass || !reflect.DeepEqual(got.Args, expectedExportArgs) {
		t.Fatalf("test 2 failed, got: %v", got)
	}
	// Test 3 - unknown format.
	cfg.OutputFormat = "xml"
	if err := RunArgs(cfg); err == nil {
		t.Fatal("test 3 failed, expected: error; got: nil")
	}
}

func TestRunArgsJobFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	var err error
	if err = os.MkdirAll(filepath.Join(dir, "lib"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"b.jar", "a.jar", "notes.txt"} {
		if err = ioutil.WriteFile(filepath.Join(dir, "lib", f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	job := `
td.jdbc.class.name: com.teradata.jdbc.TeraDriver
td.hostname: td.example.com
td.charset: latin1
td.userid: etl_user
td.credentialName: tdWallet
tdch.jobtype: hdfs
tdch.num.mappers: "8"
avro.schema.path: /schemas/orders.avsc
source.hdfs.path: /data/orders
target.td.tablename: sales.orders
libjars: lib/*.jar
azkaban.flow.name: nightly
`
	jobFile := filepath.Join(dir, "job.yaml")
	if err = ioutil.WriteFile(jobFile, []byte(job), 0644); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	cfg := &ArgsConfig{
		LogLevel:     "error",
		OutputFormat: OutputFormatJson,
		JobFile:      jobFile,
		WorkDir:      dir,
		Properties:   config.JobProperties{NumMappers: 3, InsertMethod: "internal.fastload"},
		Writer:       buf,
	}
	if err = RunArgs(cfg); err != nil {
		t.Fatal(err)
	}
	got := ArgsResponse{}
	if err = json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"-libjars", dir + "/lib/a.jar," + dir + "/lib/b.jar",
		"-url", "jdbc:teradata://td.example.com/CHARSET=latin1",
		"-classname", constants.TeradataJdbcDriverClassName,
		"-fileformat", "avrofile",
		"-jobtype", "hdfs",
		"-username", "etl_user",
		"-password", "tdWallet",
		"-nummappers", "3",
		"-avroschemafile", "/schemas/orders.avsc",
		"-sourcepaths", "/data/orders",
		"-targettable", "sales.orders",
		"-method", "internal.fastload",
	}
	if !reflect.DeepEqual(got.Args, expected) {
		t.Fatalf("expected: %v; got: %v", expected, got.Args)
	}
}

func TestRunArgsErrors(t *testing.T) {
	// Test 1 - nil config.
	if err := RunArgs(nil); err == nil {
		t.Fatal("test 1 failed, expected: error; got: nil")
	}
	// Test 2 - missing output format.
	if err := RunArgs(&ArgsConfig{LogLevel: "error"}); err == nil || !strings.Contains(err.Error(), "output format") {
		t.Fatalf("test 2 failed, expected: output format error; got: %v", err)
	}
	// Test 3 - missing job file.
	cfg := &ArgsConfig{LogLevel: "error", OutputFormat: OutputFormatLines, JobFile: "/no/such/job.yaml", Writer: &bytes.Buffer{}}
	if err := RunArgs(cfg); !errors.As(err, &config.FileNotFoundError{}) {
		t.Fatalf("test 3 failed, expected: FileNotFoundError; got: %v", err)
	}
	// Test 4 - validation errors are returned untouched and never leak the credential name.
	props := getValidExportProperties()
	props.SourceQuery = "select 1"
	cfg = &ArgsConfig{LogLevel: "error", OutputFormat: OutputFormatLines, Properties: props, Writer: &bytes.Buffer{}}
	err := RunArgs(cfg)
	if !errors.Is(err, tdch.ErrValidation) {
		t.Fatalf("test 4 failed, expected: validation error; got: %v", err)
	}
	if strings.Contains(err.Error(), props.CredentialName) {
		t.Fatalf("test 4 failed, credential name found in error: %v", err)
	}
}

func TestBuildArgs(t *testing.T) {
	log := logger.NewLogger(constants.ServiceName, "error", false)
	props := getValidExportProperties()
	props.TargetHdfsPath = ""
	props.SourceTableName = ""
	props.SourceHdfsPath = "/data/in"
	props.TargetTableName = "sales.orders"
	resp, err := BuildArgs(log, props, "", true)
	if err != nil {
		t.Fatal(err)
	}
	if resp.ToolClass != constants.TdchExportToolClass {
		t.Fatalf("expected: %v; got: %v", constants.TdchExportToolClass, resp.ToolClass)
	}
	if resp.Args[len(resp.Args)-1] != "sales.orders" {
		t.Fatalf("expected the target table last; got: %v", resp.Args)
	}
}

func TestRunArgsPrecedence(t *testing.T) {
	dir := t.TempDir()
	job := `
td.jdbc.class.name: com.teradata.jdbc.TeraDriver
td.hostname: td.example.com
td.charset: UTF8
td.userid: etl_user
td.credentialName: tdWallet
tdch.jobtype: hdfs
tdch.fileformat: textfile
tdch.num.mappers: 2
source.hdfs.path: /data/orders
target.td.tablename: sales.orders
`
	jobFile := filepath.Join(dir, "job.yml")
	if err := ioutil.WriteFile(jobFile, []byte(job), 0644); err != nil {
		t.Fatal(err)
	}
	run := func(explicit config.JobProperties) []string {
		buf := &bytes.Buffer{}
		cfg := &ArgsConfig{
			LogLevel:     "error",
			OutputFormat: OutputFormatJson,
			JobFile:      jobFile,
			Properties:   explicit,
			Defaults:     config.JobProperties{CharSet: "LATIN1", InsertMethod: "batch.insert", NumMappers: 9},
			Writer:       buf,
		}
		if err := RunArgs(cfg); err != nil {
			t.Fatal(err)
		}
		got := ArgsResponse{}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		return got.Args
	}
	// Test 1 - job file values win over defaults; defaults fill what the job file leaves empty.
	got := run(config.JobProperties{})
	if got[1] != "jdbc:teradata://td.example.com/CHARSET=UTF8" {
		t.Fatalf("test 1 failed, expected the job file charset; got: %v", got[1])
	}
	if got[13] != "2" {
		t.Fatalf("test 1 failed, expected the job file mappers; got: %v", got)
	}
	if tail := got[len(got)-2:]; !reflect.DeepEqual(tail, []string{"-method", "batch.insert"}) {
		t.Fatalf("test 1 failed, expected the default insert method; got: %v", got)
	}
	// Test 2 - explicit values win over the job file.
	got = run(config.JobProperties{CharSet: "KANJISJIS_0S"})
	if got[1] != "jdbc:teradata://td.example.com/CHARSET=KANJISJIS_0S" {
		t.Fatalf("test 2 failed, expected the explicit charset; got: %v", got[1])
	}
}

func TestBuildArgsSummaryForTerminals(t *testing.T) {
	saved := stderrIsTerminal
	defer func() { stderrIsTerminal = saved }()
	buf := &bytes.Buffer{}
	log := logger.NewLogger(constants.ServiceName, "warn", false)
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)
	// Test 1 - a terminal sees the summary at the default level.
	stderrIsTerminal = func() bool { return true }
	if _, err := BuildArgs(log, getValidExportProperties(), "", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Built TERADATA_TO_HDFS parameters for jdbc:teradata://td.example.com/CHARSET=UTF8") {
		t.Fatalf("test 1 failed, expected summary line; got: %q", buf.String())
	}
	// Test 2 - nothing is logged for pipes.
	buf.Reset()
	stderrIsTerminal = func() bool { return false }
	if _, err := BuildArgs(log, getValidExportProperties(), "", false); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("test 2 failed, expected no output; got: %q", buf.String())
	}
}
