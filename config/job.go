package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/relloyd/tdch/logger"
	"github.com/relloyd/tdch/tdch"
)

// JobProperties are the TDCH settings of a job, keyed the way job files name them.
type JobProperties struct {
	JdbcClassName    string `mapstructure:"td.jdbc.class.name" json:"td.jdbc.class.name,omitempty"`
	HostName         string `mapstructure:"td.hostname" json:"td.hostname,omitempty"`
	CharSet          string `mapstructure:"td.charset" json:"td.charset,omitempty"`
	UserName         string `mapstructure:"td.userid" json:"td.userid,omitempty"`
	CredentialName   string `mapstructure:"td.credentialName" json:"td.credentialName,omitempty"`
	FileFormat       string `mapstructure:"tdch.fileformat" json:"tdch.fileformat,omitempty"`
	FieldSeparator   string `mapstructure:"tdch.separator" json:"tdch.separator,omitempty"`
	JobType          string `mapstructure:"tdch.jobtype" json:"tdch.jobtype,omitempty"`
	AvroSchemaPath   string `mapstructure:"avro.schema.path" json:"avro.schema.path,omitempty"`
	AvroSchemaInline string `mapstructure:"avro.schema.inline" json:"avro.schema.inline,omitempty"`
	NumMappers       int    `mapstructure:"tdch.num.mappers" json:"tdch.num.mappers,omitempty"`
	MrParams         string `mapstructure:"hadoop.mr.params" json:"hadoop.mr.params,omitempty"`
	LibJars          string `mapstructure:"libjars" json:"libjars,omitempty"` // comma separated wildcard specs
	SourceHdfsPath   string `mapstructure:"source.hdfs.path" json:"source.hdfs.path,omitempty"`
	TargetTableName  string `mapstructure:"target.td.tablename" json:"target.td.tablename,omitempty"`
	InsertMethod     string `mapstructure:"tdch.insert.method" json:"tdch.insert.method,omitempty"`
	SourceTableName  string `mapstructure:"source.td.tablename" json:"source.td.tablename,omitempty"`
	SourceQuery      string `mapstructure:"source.td.sourcequery" json:"source.td.sourcequery,omitempty"`
	TargetHdfsPath   string `mapstructure:"target.hdfs.path" json:"target.hdfs.path,omitempty"`
	RetrieveMethod   string `mapstructure:"tdch.retrieve.method" json:"tdch.retrieve.method,omitempty"`
}

// LoadJobFile reads job properties from a .yaml, .yml or .json file.
// Keys that are not TDCH properties are returned in unused.
func LoadJobFile(fileName string) (j *JobProperties, unused []string, err error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return nil, nil, errors.Errorf("unsupported job file extension %q: use .yaml, .yml or .json", ext)
	}
	b, err := ioutil.ReadFile(fileName)
	if os.IsNotExist(err) {
		return nil, nil, FileNotFoundError{fileName}
	} else if err != nil {
		return nil, nil, errors.Wrapf(err, "error reading job file %v", fileName)
	}
	j, unused, err = ParseJobProperties(b)
	return j, unused, errors.Wrapf(err, "error parsing job file %v", fileName)
}

// ParseJobProperties decodes YAML or JSON bytes into JobProperties.
// Values are weakly typed so that numbers may be quoted.
func ParseJobProperties(b []byte) (*JobProperties, []string, error) {
	m := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, nil, err
	}
	j := &JobProperties{}
	md := &mapstructure.Metadata{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Metadata:         md,
		Result:           j,
	})
	if err != nil {
		return nil, nil, err
	}
	if err = dec.Decode(m); err != nil {
		return nil, nil, err
	}
	return j, md.Unused, nil
}

// Overlay copies the non-zero fields of o over j.
func (j *JobProperties) Overlay(o JobProperties) {
	dst := reflect.ValueOf(j).Elem()
	src := reflect.ValueOf(o)
	for idx := 0; idx < src.NumField(); idx++ {
		if f := src.Field(idx); !f.IsZero() {
			dst.Field(idx).Set(f)
		}
	}
}

// ToConfig converts j into a tdch.Config.
// Library specs are expanded relative to workDir.
func (j *JobProperties) ToConfig(log logger.Logger, workDir string) tdch.Config {
	cfg := tdch.Config{
		JdbcClassName:    j.JdbcClassName,
		JobType:          j.JobType,
		UserName:         j.UserName,
		CredentialName:   j.CredentialName,
		HostName:         j.HostName,
		CharSet:          j.CharSet,
		MrParams:         j.MrParams,
		FileFormat:       j.FileFormat,
		FieldSeparator:   j.FieldSeparator,
		AvroSchemaPath:   j.AvroSchemaPath,
		AvroSchemaInline: j.AvroSchemaInline,
		NumMappers:       j.NumMappers,
		SourceHdfsPath:   j.SourceHdfsPath,
		TargetTableName:  j.TargetTableName,
		InsertMethod:     j.InsertMethod,
		SourceTableName:  j.SourceTableName,
		SourceQuery:      j.SourceQuery,
		TargetHdfsPath:   j.TargetHdfsPath,
		RetrieveMethod:   j.RetrieveMethod,
	}
	if j.LibJars != "" {
		cfg.SetLibJars(log, workDir, j.LibJars)
	}
	return cfg
}
