package tdch

import (
	"fmt"
	"strconv"

	c "github.com/relloyd/tdch/constants"
)

// Args returns the command-line arguments for the TDCH tool in the order its parser expects.
// An *InternalError is returned if p was not built by NewParameters.
func (p *Parameters) Args() ([]string, error) {
	args := make([]string, 0, 32)
	if p.mrParams != "" {
		args = append(args, p.mrParams)
	}
	if p.libJars != "" {
		args = append(args, c.FlagLibJars, p.libJars)
	}
	args = append(args,
		c.FlagUrl, p.url,
		c.FlagClassName, p.jdbcClassName,
		c.FlagFileFormat, p.fileFormat,
		c.FlagJobType, p.jobType,
		c.FlagUserName, p.userName,
		c.FlagPassword, p.credentialName, // the tool resolves the credential by name
		c.FlagNumMappers, strconv.Itoa(p.numMappers),
	)
	switch s := p.schema.(type) {
	case nil:
	case SchemaFile:
		args = append(args, c.FlagAvroSchemaFile, s.Path)
	case SchemaInline:
		args = append(args, c.FlagAvroSchemaInline, s.Text)
	case SchemaBoth:
		args = append(args, c.FlagAvroSchemaFile, s.Path, c.FlagAvroSchemaInline, s.Text)
	default:
		return nil, &InternalError{Reason: fmt.Sprintf("unsupported schema type %T", s)}
	}
	if p.fieldSeparator != "" {
		args = append(args, c.FlagSeparator, p.fieldSeparator)
	}
	switch d := p.direction.(type) {
	case Import:
		args = append(args, c.FlagSourcePaths, d.SourcePaths, c.FlagTargetTable, d.TargetTable)
		if d.InsertMethod != "" {
			args = append(args, c.FlagMethod, d.InsertMethod)
		}
	case Export:
		args = append(args, c.FlagTargetPaths, d.TargetPaths)
		switch s := d.Source.(type) {
		case TableSource:
			method := s.RetrieveMethod
			if method == "" {
				method = c.TdchDefaultRetrieveMethod
			}
			args = append(args, c.FlagSourceTable, s.Table, c.FlagMethod, method)
		case QuerySource:
			args = append(args, c.FlagSourceQuery, s.Query)
		default:
			return nil, &InternalError{Reason: fmt.Sprintf("no source defined for export: %T", s)}
		}
	default:
		return nil, &InternalError{Reason: fmt.Sprintf("unsupported TDCH direction: %T", d)}
	}
	return args, nil
}

// MustArgs is like Args but panics on an internal consistency error.
func (p *Parameters) MustArgs() []string {
	args, err := p.Args()
	if err != nil {
		panic(err)
	}
	return args
}

// ToolClass returns the TDCH main class that accepts Args for the direction of p.
// TDCH names its tools from the Hadoop point of view, so HDFS to Teradata uses the export tool.
func (p *Parameters) ToolClass() (string, error) {
	switch p.direction.(type) {
	case Import:
		return c.TdchExportToolClass, nil
	case Export:
		return c.TdchImportToolClass, nil
	default:
		return "", &InternalError{Reason: fmt.Sprintf("unsupported TDCH direction: %T", p.direction)}
	}
}
