package tdch

// Direction is the transfer direction derived from the populated Config fields.
// It is one of Import or Export.
type Direction interface {
	isDirection()
	String() string
}

// Import copies files from HDFS into a Teradata table.
type Import struct {
	SourcePaths  string
	TargetTable  string
	InsertMethod string // optional; TDCH applies its own default when empty
}

// Export copies the rows of a Teradata table or query into HDFS.
type Export struct {
	TargetPaths string
	Source      ExportSource
}

// ExportSource is one of TableSource or QuerySource.
type ExportSource interface {
	isExportSource()
}

// TableSource reads a whole table using RetrieveMethod.
type TableSource struct {
	Table          string
	RetrieveMethod string // optional; see constants.TdchDefaultRetrieveMethod
}

// QuerySource reads the result of a SQL query.
type QuerySource struct {
	Query string
}

func (Import) isDirection()         {}
func (Export) isDirection()         {}
func (TableSource) isExportSource() {}
func (QuerySource) isExportSource() {}

func (Import) String() string { return "HDFS_TO_TERADATA" }
func (Export) String() string { return "TERADATA_TO_HDFS" }

type directionKind int

const (
	directionNone directionKind = iota
	directionImport
	directionExport
)

// candidates records which directions the populated fields qualify for.
type candidates struct {
	isImport bool
	isExport bool
}

type directionOutcome struct {
	kind   directionKind
	reason string // set when the combination is invalid
}

// directionTable lists every combination of candidates.
var directionTable = map[candidates]directionOutcome{
	{isImport: false, isExport: false}: {reason: "source and target are not defined"},
	{isImport: true, isExport: false}:  {kind: directionImport},
	{isImport: false, isExport: true}:  {kind: directionExport},
	{isImport: true, isExport: true}:   {reason: "cannot choose multiple sources and multiple targets (ambiguous direction)"},
}

// classifyDirection collapses the raw direction fields of c into a Direction.
// It returns a non-empty reason if the fields do not describe exactly one direction.
func classifyDirection(c *Config) (Direction, string) {
	k := candidates{
		isImport: c.SourceHdfsPath != "" && c.TargetTableName != "",
		isExport: c.TargetHdfsPath != "" && (c.SourceTableName != "" || c.SourceQuery != ""),
	}
	outcome := directionTable[k]
	switch outcome.kind {
	case directionImport:
		return Import{
			SourcePaths:  c.SourceHdfsPath,
			TargetTable:  c.TargetTableName,
			InsertMethod: c.InsertMethod,
		}, ""
	case directionExport:
		if c.SourceTableName != "" && c.SourceQuery != "" {
			return nil, "cannot choose multiple sources: supply either a source table or a source query"
		}
		e := Export{TargetPaths: c.TargetHdfsPath}
		if c.SourceTableName != "" {
			e.Source = TableSource{Table: c.SourceTableName, RetrieveMethod: c.RetrieveMethod}
		} else {
			e.Source = QuerySource{Query: c.SourceQuery}
		}
		return e, ""
	default:
		return nil, outcome.reason
	}
}
