package cmd

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/relloyd/tdch/config"
	"github.com/relloyd/tdch/helper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"mock": cliFlag{name: "mock", shortHand: "m", desc: "mock switch for testing"},
	"job-file": cliFlag{name: "job-file", shortHand: "f",
		desc: "File containing TDCH job properties (.yaml, .yml or .json). Flags take priority \n" +
			"over values found in the file"},
	"output": cliFlag{name: "output", shortHand: "o",
		desc: "Output format: \"lines | json | yaml\" where lines prints one argument per line"},
	"with-class": cliFlag{name: "with-class", shortHand: "c",
		desc: "Print the TDCH tool class before the arguments"},
	"work-dir": cliFlag{name: "work-dir", shortHand: "w",
		desc: "Directory used to resolve relative library paths (default: the current directory)"},
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: \"error | warn | info | debug\""},
	"port": cliFlag{name: "port", shortHand: "p",
		desc: "Port to listen on"},
	"stats": cliFlag{name: "stats", shortHand: "L",
		desc: "Number of seconds between logging request statistics (use 0 to disable)"},
	// Job properties.
	"td-jdbc-class-name": cliFlag{name: "td-jdbc-class-name", shortHand: "",
		desc: "Teradata JDBC driver class name"},
	"td-hostname": cliFlag{name: "td-hostname", shortHand: "H",
		desc: "Teradata host name"},
	"td-charset": cliFlag{name: "td-charset", shortHand: "",
		desc: "Teradata session character set (default UTF8)"},
	"td-userid": cliFlag{name: "td-userid", shortHand: "u",
		desc: "Teradata user name"},
	"td-credential-name": cliFlag{name: "td-credential-name", shortHand: "C",
		desc: "Name of the credential passed to TDCH as the password. The secret itself is \n" +
			"never read by this tool"},
	"tdch-fileformat": cliFlag{name: "tdch-fileformat", shortHand: "F",
		desc: "HDFS file format (default avrofile)"},
	"tdch-separator": cliFlag{name: "tdch-separator", shortHand: "",
		desc: "Field separator for text files"},
	"tdch-jobtype": cliFlag{name: "tdch-jobtype", shortHand: "",
		desc: "TDCH job type"},
	"avro-schema-path": cliFlag{name: "avro-schema-path", shortHand: "",
		desc: "Path of the Avro schema file"},
	"avro-schema-inline": cliFlag{name: "avro-schema-inline", shortHand: "",
		desc: "Avro schema text"},
	"tdch-num-mappers": cliFlag{name: "tdch-num-mappers", shortHand: "n",
		desc: "Number of mappers, must be greater than 0"},
	"hadoop-mr-params": cliFlag{name: "hadoop-mr-params", shortHand: "",
		desc: "Hadoop MapReduce parameters passed as a single argument"},
	"libjars": cliFlag{name: "libjars", shortHand: "j",
		desc: "CSV of library specs of the form [<dir>/]<pattern> e.g. lib/*.jar"},
	"source-hdfs-path": cliFlag{name: "source-hdfs-path", shortHand: "",
		desc: "HDFS path to copy into Teradata"},
	"target-td-tablename": cliFlag{name: "target-td-tablename", shortHand: "",
		desc: "Teradata table to load"},
	"tdch-insert-method": cliFlag{name: "tdch-insert-method", shortHand: "",
		desc: "TDCH insert method (omit to use the TDCH default)"},
	"source-td-tablename": cliFlag{name: "source-td-tablename", shortHand: "",
		desc: "Teradata table to copy into HDFS"},
	"source-td-sourcequery": cliFlag{name: "source-td-sourcequery", shortHand: "",
		desc: "Teradata query to copy into HDFS"},
	"target-hdfs-path": cliFlag{name: "target-hdfs-path", shortHand: "",
		desc: "HDFS path to write"},
	"tdch-retrieve-method": cliFlag{name: "tdch-retrieve-method", shortHand: "",
		desc: "TDCH retrieve method for table sources (default split.by.amp)"},
}

// addFlag add a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// When running in twelveFactorMode, the targetVar is populated using the value of environment variable for the supplied
// name, or if not set then the supplied default value is used.
// When NOT running in twelveFactorMode, the default value is fetched from config if it exists else the supplied
// defaultValue is applied.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue, config.Main.Get) // get the cliFlag details, with defaults taken from config or the supplied defaultValue
	desc := sw.desc + desc2
	// Apply the flag.
	switch p := targetVar.(type) {
	case *string:
		if twelveFactorMode {
			*p = sw.val
		} else {
			c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
			// Mark required flags as set when a default exists so Cobra accepts them.
			// Other flags stay unchanged so callers can tell defaults from user input.
			if required && sw.val != "" {
				mustSetFlag(c.Flags(), sw.name, sw.val)
			}
		}
	case *bool:
		defaultBool := helper.GetTrueFalseStringAsBool(sw.val)
		if twelveFactorMode {
			*p = defaultBool
		} else {
			c.Flags().BoolVarP(p, sw.name, sw.shortHand, defaultBool, desc)
		}
	case *int:
		defaultInt, err := strconv.Atoi(sw.val)
		if err != nil {
			fmt.Printf("the value for flag %q must be an integer: %v\n", sw.name, err)
			os.Exit(1)
		}
		if twelveFactorMode {
			*p = defaultInt
		} else {
			c.Flags().IntVarP(p, sw.name, sw.shortHand, defaultInt, desc)
			if required && sw.val != "" {
				mustSetFlag(c.Flags(), sw.name, sw.val)
			}
		}
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	// Optionally mark the flag as mandatory.
	if required && !twelveFactorMode { // if the flag is required...
		_ = c.MarkFlagRequired(sw.name)
	}
}

// getCliFlag fetches the value of name from the environment, when running in twelveFactorMode,
// else read the Main config file to find it.
// If a value cannot be found then use the supplied defaultValue in its place.
func (f *cliFlags) getCliFlag(name string, defaultValue string, fnGetConfig func(key string, out interface{}) error) cliFlag {
	s, ok := (*f)[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	if twelveFactorMode { // if we should read env vars...
		if err := helper.ReadValueFromEnv(flagNameToEnvVar(name), &s.val); err != nil { // if there's no value for the env var read into the switch val...
			s.val = defaultValue
		}
	} else { // else check the config file or apply default...
		err := fnGetConfig(s.name, &s.val)
		if config.IsKeyNotFound(err) || s.val == "" { // if there was no key found...
			s.val = defaultValue
		} else if err != nil {
			fmt.Printf("unable to read default for flag %q: %v\n", s.name, err)
			s.val = defaultValue
		}
	}
	return s
}

// flagNameToEnvVar will form a sanitised environment variable name using constants.EnvVarPrefix.
func flagNameToEnvVar(name string) string {
	return helper.GetEnvVarName(name)
}

func mustSetFlag(f *pflag.FlagSet, name string, val string) {
	if err := f.Set(name, val); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
