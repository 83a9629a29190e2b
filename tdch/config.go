package tdch

import (
	"fmt"
	"strings"

	om "github.com/cevaris/ordered_map"
	"github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/file"
	"github.com/relloyd/tdch/helper"
	"github.com/relloyd/tdch/logger"
)

// Config accumulates the raw values used to build Parameters.
// Values are stored verbatim; empty strings mean "not set".
// A Config is not safe for concurrent use.
type Config struct {
	JdbcClassName    string `errorTxt:"td.jdbc.class.name" mandatory:"yes"`
	JobType          string `errorTxt:"tdch.jobtype" mandatory:"yes"`
	UserName         string `errorTxt:"td.userid" mandatory:"yes"`
	CredentialName   string `errorTxt:"td.credentialName" mandatory:"yes"`
	HostName         string `errorTxt:"td.hostname" mandatory:"yes"`
	CharSet          string
	MrParams         string
	LibJars          string // comma separated list of files, see SetLibJars
	FileFormat       string
	FieldSeparator   string
	AvroSchemaPath   string
	AvroSchemaInline string
	NumMappers       int
	// HDFS to Teradata.
	SourceHdfsPath  string
	TargetTableName string
	InsertMethod    string
	// Teradata to HDFS.
	SourceTableName string
	SourceQuery     string
	TargetHdfsPath  string
	RetrieveMethod  string
}

// SetLibJars expands the comma separated wildcard specs, relative to root, and saves the
// resulting list of files in LibJars. Nothing matching leaves LibJars empty.
func (c *Config) SetLibJars(log logger.Logger, root string, specs string) *Config {
	c.LibJars = file.ResolveWildcardSpecs(log, root, specs)
	return c
}

// String returns the contents of Config with the credential name masked.
func (c Config) String() string {
	m := om.NewOrderedMap()
	m.Set("mrParams", c.MrParams)
	m.Set("libJars", c.LibJars)
	m.Set("jdbcClassName", c.JdbcClassName)
	m.Set("hostName", c.HostName)
	m.Set("charSet", c.CharSet)
	m.Set("fileFormat", c.FileFormat)
	m.Set("fieldSeparator", c.FieldSeparator)
	m.Set("jobType", c.JobType)
	m.Set("userName", c.UserName)
	m.Set("credentialName", helper.Mask(c.CredentialName, constants.MaskChar))
	m.Set("avroSchemaPath", c.AvroSchemaPath)
	m.Set("avroSchemaInline", c.AvroSchemaInline)
	m.Set("numMappers", c.NumMappers)
	m.Set("sourceHdfsPath", c.SourceHdfsPath)
	m.Set("targetTableName", c.TargetTableName)
	m.Set("insertMethod", c.InsertMethod)
	m.Set("sourceQuery", c.SourceQuery)
	m.Set("sourceTableName", c.SourceTableName)
	m.Set("retrieveMethod", c.RetrieveMethod)
	m.Set("targetHdfsPath", c.TargetHdfsPath)
	return "Config " + orderedMapToString(m)
}

// orderedMapToString renders m as [k1=v1, k2=v2, ...].
func orderedMapToString(m *om.OrderedMap) string {
	b := strings.Builder{}
	iter := m.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v=%v", kv.Key, kv.Value))
	}
	return "[" + b.String() + "]"
}
