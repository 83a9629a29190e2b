package cmd

import (
	"github.com/relloyd/tdch/actions"
	"github.com/relloyd/tdch/config"
	"github.com/spf13/cobra"
)

var argsCfg = actions.ArgsConfig{}

// argsFlagValues holds the property flags before they are split into overrides and defaults.
var argsFlagValues config.JobProperties

var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Print the TDCH arguments for a job",
	Long: `Validate TDCH job properties and print the arguments for the TDCH tool, where:

- Properties are read from an optional job file (see flag --job-file) and 
  any property flags supplied here take priority
- Defaults saved with "config default add" only fill properties the job file leaves empty
- The transfer direction is HDFS to Teradata when a source HDFS path and target 
  table are given, or Teradata to HDFS when a target HDFS path and a source table 
  or query are given
- The credential name is passed through as the TDCH password; secrets are never read`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArgsWith(cmd.Flags().Changed)
	},
}

type propertyFlag struct {
	name         string
	defaultValue string
	field        func(p *config.JobProperties) interface{}
}

var argsPropertyFlags = []propertyFlag{
	{"td-jdbc-class-name", "", func(p *config.JobProperties) interface{} { return &p.JdbcClassName }},
	{"td-hostname", "", func(p *config.JobProperties) interface{} { return &p.HostName }},
	{"td-charset", "", func(p *config.JobProperties) interface{} { return &p.CharSet }},
	{"td-userid", "", func(p *config.JobProperties) interface{} { return &p.UserName }},
	{"td-credential-name", "", func(p *config.JobProperties) interface{} { return &p.CredentialName }},
	{"tdch-jobtype", "", func(p *config.JobProperties) interface{} { return &p.JobType }},
	{"tdch-fileformat", "", func(p *config.JobProperties) interface{} { return &p.FileFormat }},
	{"tdch-separator", "", func(p *config.JobProperties) interface{} { return &p.FieldSeparator }},
	{"avro-schema-path", "", func(p *config.JobProperties) interface{} { return &p.AvroSchemaPath }},
	{"avro-schema-inline", "", func(p *config.JobProperties) interface{} { return &p.AvroSchemaInline }},
	{"tdch-num-mappers", "0", func(p *config.JobProperties) interface{} { return &p.NumMappers }},
	{"hadoop-mr-params", "", func(p *config.JobProperties) interface{} { return &p.MrParams }},
	{"libjars", "", func(p *config.JobProperties) interface{} { return &p.LibJars }},
	{"source-hdfs-path", "", func(p *config.JobProperties) interface{} { return &p.SourceHdfsPath }},
	{"target-td-tablename", "", func(p *config.JobProperties) interface{} { return &p.TargetTableName }},
	{"tdch-insert-method", "", func(p *config.JobProperties) interface{} { return &p.InsertMethod }},
	{"source-td-tablename", "", func(p *config.JobProperties) interface{} { return &p.SourceTableName }},
	{"source-td-sourcequery", "", func(p *config.JobProperties) interface{} { return &p.SourceQuery }},
	{"target-hdfs-path", "", func(p *config.JobProperties) interface{} { return &p.TargetHdfsPath }},
	{"tdch-retrieve-method", "", func(p *config.JobProperties) interface{} { return &p.RetrieveMethod }},
}

// splitArgsProperties copies the flags reported by changed into explicit and all others into defaults.
func splitArgsProperties(values config.JobProperties, changed func(name string) bool) (explicit config.JobProperties, defaults config.JobProperties) {
	for _, pf := range argsPropertyFlags {
		dst := &defaults
		if changed(pf.name) { // if the user supplied the flag...
			dst = &explicit
		}
		switch v := pf.field(&values).(type) {
		case *string:
			*pf.field(dst).(*string) = *v
		case *int:
			*pf.field(dst).(*int) = *v
		}
	}
	return
}

// runArgs treats every property as explicit because 12 factor values come from the environment.
func runArgs() error {
	return runArgsWith(func(string) bool { return true })
}

func runArgsWith(changed func(name string) bool) error {
	argsCfg.StackDumpOnPanic = stackDumpOnPanic
	argsCfg.Properties, argsCfg.Defaults = splitArgsProperties(argsFlagValues, changed)
	return actions.RunArgs(&argsCfg)
}

func init() {
	rootCmd.AddCommand(argsCmd)
	argsCmd.Flags().SortFlags = false
	argsCmd.SilenceUsage = true
	switches.addFlag(argsCmd, &argsCfg.JobFile, "job-file", "", false, "")
	switches.addFlag(argsCmd, &argsCfg.OutputFormat, "output", actions.OutputFormatLines, false, "")
	switches.addFlag(argsCmd, &argsCfg.WithToolClass, "with-class", "false", false, "")
	switches.addFlag(argsCmd, &argsCfg.WorkDir, "work-dir", "", false, "")
	switches.addFlag(argsCmd, &argsCfg.LogLevel, "log-level", "warn", false, "")
	// Job properties.
	for _, pf := range argsPropertyFlags {
		switches.addFlag(argsCmd, pf.field(&argsFlagValues), pf.name, pf.defaultValue, false, "")
	}
	_ = argsCmd.MarkFlagFilename("job-file", "yaml", "yml", "json")
}
