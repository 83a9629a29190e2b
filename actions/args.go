package actions

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/relloyd/tdch/config"
	"github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/helper"
	"github.com/relloyd/tdch/logger"
	"github.com/relloyd/tdch/tdch"
)

const (
	OutputFormatLines = "lines"
	OutputFormatJson  = "json"
	OutputFormatYaml  = "yaml"
)

type ArgsConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	OutputFormat     string `errorTxt:"output format" mandatory:"yes"`
	StackDumpOnPanic bool
	JobFile          string // optional YAML or JSON job properties
	WorkDir          string // root for relative library specs
	WithToolClass    bool
	Properties       config.JobProperties // values that override the job file
	Defaults         config.JobProperties // values used where the job file and Properties leave a field empty
	Writer           io.Writer            // defaults to os.Stdout
}

// stderrIsTerminal reports whether log output reaches a person.
var stderrIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// ArgsResponse is the serialized form of a TDCH command line.
type ArgsResponse struct {
	ToolClass string   `json:"toolClass,omitempty"`
	Args      []string `json:"args"`
}

// RunArgs builds TDCH parameters from the job file and flags and prints the tool arguments.
// Values are taken from cfg.Properties, then the job file, then cfg.Defaults.
func RunArgs(cfg *ArgsConfig) error {
	if cfg == nil {
		return errors.New("nil pointer to args config supplied")
	}
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(constants.ServiceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	props := cfg.Defaults
	if cfg.JobFile != "" { // if there's a job file to start from...
		j, unused, err := config.LoadJobFile(cfg.JobFile)
		if err != nil {
			return err
		}
		if len(unused) > 0 {
			log.Debug("ignoring job file keys: ", strings.Join(unused, ", "))
		}
		props.Overlay(*j)
	}
	props.Overlay(cfg.Properties)
	resp, err := BuildArgs(log, props, cfg.WorkDir, cfg.WithToolClass)
	if err != nil {
		return err
	}
	return writeArgs(writerOrStdout(cfg.Writer), resp, cfg.OutputFormat)
}

// BuildArgs validates props and returns the TDCH arguments.
// Library specs in props are expanded relative to workDir.
func BuildArgs(log logger.Logger, props config.JobProperties, workDir string, withToolClass bool) (*ArgsResponse, error) {
	p, err := tdch.NewParameters(props.ToConfig(log, workDir))
	if err != nil {
		return nil, err
	}
	if stderrIsTerminal() { // if a person is watching...
		log.Warn("Built ", p.Direction(), " parameters for ", p.Url())
	}
	log.Debug(p)
	args, err := p.Args()
	if err != nil {
		return nil, err
	}
	resp := &ArgsResponse{Args: args}
	if withToolClass {
		if resp.ToolClass, err = p.ToolClass(); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
