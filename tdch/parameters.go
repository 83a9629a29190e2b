package tdch

import (
	"strconv"

	om "github.com/cevaris/ordered_map"
	"github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/helper"
)

// Schema is the Avro schema supplied with the parameters: one of SchemaFile, SchemaInline or SchemaBoth.
type Schema interface {
	isSchema()
}

// SchemaFile refers to an Avro schema stored in a file.
type SchemaFile struct {
	Path string
}

// SchemaInline holds the Avro schema text.
type SchemaInline struct {
	Text string
}

// SchemaBoth carries a schema file and schema text. Only formats other than avrofile accept it.
type SchemaBoth struct {
	Path string
	Text string
}

func (SchemaFile) isSchema()   {}
func (SchemaInline) isSchema() {}
func (SchemaBoth) isSchema()   {}

// Parameters are validated TDCH parameters.
// They can only be built by NewParameters and are read-only afterwards,
// so a single value may be serialized concurrently.
type Parameters struct {
	mrParams       string
	libJars        string
	jdbcClassName  string
	url            string
	fileFormat     string
	fieldSeparator string
	jobType        string
	userName       string
	credentialName string
	schema         Schema
	numMappers     int
	direction      Direction
}

// NewParameters validates cfg and derives the connection URL and transfer direction.
// All errors are of type *ValidationError.
func NewParameters(cfg Config) (*Parameters, error) {
	fail := func(reason string) (*Parameters, error) {
		return nil, &ValidationError{Reason: reason, Diagnostic: cfg.String()}
	}
	// Mandatory values.
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return fail(err.Error())
	}
	// File format and schema.
	fileFormat := cfg.FileFormat
	if fileFormat == "" {
		fileFormat = constants.AvroFileFormat
	}
	hasPath, hasInline := cfg.AvroSchemaPath != "", cfg.AvroSchemaInline != ""
	if fileFormat == constants.AvroFileFormat {
		if !hasPath && !hasInline {
			return fail("either " + constants.KeyAvroSchemaPath + " or " + constants.KeyAvroSchemaInline + " should be provided")
		}
		if hasPath && hasInline {
			return fail("only one of " + constants.KeyAvroSchemaPath + " and " + constants.KeyAvroSchemaInline + " should be provided")
		}
	}
	var schema Schema
	if hasPath && hasInline {
		schema = SchemaBoth{Path: cfg.AvroSchemaPath, Text: cfg.AvroSchemaInline}
	} else if hasPath {
		schema = SchemaFile{Path: cfg.AvroSchemaPath}
	} else if hasInline {
		schema = SchemaInline{Text: cfg.AvroSchemaInline}
	}
	// Parallelism.
	if cfg.NumMappers <= 0 {
		return fail("number of mappers (" + constants.KeyNumMappers + ") needs to be defined and has to be greater than 0")
	}
	// Direction.
	direction, reason := classifyDirection(&cfg)
	if reason != "" {
		return fail(reason)
	}
	return &Parameters{
		mrParams:       cfg.MrParams,
		libJars:        cfg.LibJars,
		jdbcClassName:  cfg.JdbcClassName,
		url:            jdbcUrl(cfg.HostName, cfg.CharSet),
		fileFormat:     fileFormat,
		fieldSeparator: cfg.FieldSeparator,
		jobType:        cfg.JobType,
		userName:       cfg.UserName,
		credentialName: cfg.CredentialName,
		schema:         schema,
		numMappers:     cfg.NumMappers,
		direction:      direction,
	}, nil
}

// jdbcUrl returns the Teradata JDBC URL for host, using the default character set if charSet is empty.
func jdbcUrl(host string, charSet string) string {
	if charSet == "" {
		charSet = constants.TeradataDefaultCharSet
	}
	return constants.TeradataJdbcUrlPrefix + host + constants.TeradataJdbcUrlCharSetKey + charSet
}

func (p *Parameters) MrParams() string       { return p.mrParams }
func (p *Parameters) LibJars() string        { return p.libJars }
func (p *Parameters) JdbcClassName() string  { return p.jdbcClassName }
func (p *Parameters) Url() string            { return p.url }
func (p *Parameters) FileFormat() string     { return p.fileFormat }
func (p *Parameters) FieldSeparator() string { return p.fieldSeparator }
func (p *Parameters) JobType() string        { return p.jobType }
func (p *Parameters) UserName() string       { return p.userName }
func (p *Parameters) CredentialName() string { return p.credentialName }
func (p *Parameters) NumMappers() int        { return p.numMappers }
func (p *Parameters) Schema() Schema         { return p.schema }
func (p *Parameters) Direction() Direction   { return p.direction }

// String returns the parameters with the credential name masked.
func (p *Parameters) String() string {
	m := om.NewOrderedMap()
	m.Set("mrParams", p.mrParams)
	m.Set("libJars", p.libJars)
	m.Set("jdbcClassName", p.jdbcClassName)
	m.Set("url", p.url)
	m.Set("fileFormat", p.fileFormat)
	m.Set("fieldSeparator", p.fieldSeparator)
	m.Set("jobType", p.jobType)
	m.Set("userName", p.userName)
	m.Set("credentialName", helper.Mask(p.credentialName, constants.MaskChar))
	switch s := p.schema.(type) {
	case SchemaFile:
		m.Set("avroSchemaPath", s.Path)
	case SchemaInline:
		m.Set("avroSchemaInline", s.Text)
	case SchemaBoth:
		m.Set("avroSchemaPath", s.Path)
		m.Set("avroSchemaInline", s.Text)
	}
	m.Set("numMappers", strconv.Itoa(p.numMappers))
	if p.direction != nil {
		m.Set("direction", p.direction.String())
	}
	switch d := p.direction.(type) {
	case Import:
		m.Set("sourceHdfsPath", d.SourcePaths)
		m.Set("targetTableName", d.TargetTable)
		m.Set("insertMethod", d.InsertMethod)
	case Export:
		switch s := d.Source.(type) {
		case TableSource:
			m.Set("sourceTableName", s.Table)
			m.Set("retrieveMethod", s.RetrieveMethod)
		case QuerySource:
			m.Set("sourceQuery", s.Query)
		}
		m.Set("targetHdfsPath", d.TargetPaths)
	}
	return "Parameters " + orderedMapToString(m)
}
