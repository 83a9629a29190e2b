package constants

// TDCH

const (
	TeradataJdbcUrlPrefix       = "jdbc:teradata://"
	TeradataJdbcUrlCharSetKey   = "/CHARSET="
	TeradataDefaultCharSet      = "UTF8"
	TeradataJdbcDriverClassName = "com.teradata.jdbc.TeraDriver"
	TdchJobTypeHdfs             = "hdfs"
	TdchDefaultRetrieveMethod   = "split.by.amp"
	TdchImportToolClass         = "com.teradata.connector.common.tool.ConnectorImportTool"
	TdchExportToolClass         = "com.teradata.connector.common.tool.ConnectorExportTool"
	AvroFileFormat              = "avrofile"
	LibJarDelimiter             = ","
	MaskChar                    = "*"
	EnvVarPrefix                = "TDCH" // prefixed for environment variables in twelveFactorMode
	ServiceName                 = "tdch"
)

// Job property keys, as found in job files and quoted in validation messages.

const (
	KeyJdbcClassName    = "td.jdbc.class.name"
	KeyHostName         = "td.hostname"
	KeyCharSet          = "td.charset"
	KeyUserName         = "td.userid"
	KeyCredentialName   = "td.credentialName"
	KeyFileFormat       = "tdch.fileformat"
	KeyFieldSeparator   = "tdch.separator"
	KeyJobType          = "tdch.jobtype"
	KeyAvroSchemaPath   = "avro.schema.path"
	KeyAvroSchemaInline = "avro.schema.inline"
	KeyNumMappers       = "tdch.num.mappers"
	KeyMrParams         = "hadoop.mr.params"
	KeyLibJars          = "libjars"
	KeySourceHdfsPath   = "source.hdfs.path"
	KeyTargetTableName  = "target.td.tablename"
	KeyInsertMethod     = "tdch.insert.method"
	KeySourceTableName  = "source.td.tablename"
	KeySourceQuery      = "source.td.sourcequery"
	KeyTargetHdfsPath   = "target.hdfs.path"
	KeyRetrieveMethod   = "tdch.retrieve.method"
)

// TDCH command-line flags in the order the tool expects them.

const (
	FlagLibJars          = "-libjars"
	FlagUrl              = "-url"
	FlagClassName        = "-classname"
	FlagFileFormat       = "-fileformat"
	FlagJobType          = "-jobtype"
	FlagUserName         = "-username"
	FlagPassword         = "-password"
	FlagNumMappers       = "-nummappers"
	FlagAvroSchemaFile   = "-avroschemafile"
	FlagAvroSchemaInline = "-avroschema"
	FlagSeparator        = "-separator"
	FlagSourcePaths      = "-sourcepaths"
	FlagTargetTable      = "-targettable"
	FlagMethod           = "-method"
	FlagTargetPaths      = "-targetpaths"
	FlagSourceTable      = "-sourcetable"
	FlagSourceQuery      = "-sourcequery"
)
