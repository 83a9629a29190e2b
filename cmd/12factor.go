package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/relloyd/tdch/actions"
	"github.com/relloyd/tdch/config"
	c "github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/file"
	"github.com/relloyd/tdch/helper"
	"github.com/relloyd/tdch/logger"
)

// init will be called first due to the lexical order in which these functions are executed.
// This ensures the value of twelveFactorMode is set such that other init() functions that configure
// Cobra can do the job of processing all environment variables that would contain equivalent of the CLI flag
// structures used by the actions.
func init() {
	setupTwelveFactorMode()
}

// setupTwelveFactorMode will enable or disable 12 factor mode based on environment variable.
func setupTwelveFactorMode() {
	mode := os.Getenv(envVarTwelveFactorMode)
	if mode != "" { // if variable for 12factor mode is set and we should read env vars to determine actions...
		twelveFactorMode = true
		lambdaMode = strings.ToLower(mode) == "lambda"
	} else { // else 12factor mode should be off...
		twelveFactorMode = false // explicitly turn off this mode since tests may have turned it on while others require it off.
		lambdaMode = false
	}
}

const (
	envVarTwelveFactorMode = c.EnvVarPrefix + "_" + "12FACTOR_MODE"
	envVarCommand          = c.EnvVarPrefix + "_" + "COMMAND"
	envVarLogLevel         = c.EnvVarPrefix + "_" + "LOG_LEVEL"
	envVarStackDump        = c.EnvVarPrefix + "_" + "STACK_DUMP"
)

var (
	twelveFactorMode bool // true if os env var envVarTwelveFactorMode is set
	lambdaMode       bool // true if os env var envVarTwelveFactorMode is "lambda"
	twelveFactorVars = map[string]string{
		envVarCommand:   "",
		envVarLogLevel:  "",
		envVarStackDump: "",
	}
)

type twelveFactorAction struct {
	runnerFunc func() error
}

var twelveFactorActions = map[string]twelveFactorAction{
	"args":  {runnerFunc: runArgs},
	"serve": {runnerFunc: runServe},
}

func execute12FactorMode(acts map[string]twelveFactorAction) (err error) {
	logLevel := helper.ReadValueFromEnvWithDefault(envVarLogLevel, "warn")
	log := logger.NewLogger(c.ServiceName, logLevel, stackDumpOnPanic)
	log.Info("tdch is running in 12 Factor mode...")
	for k := range twelveFactorVars { // for each env variable that we need...
		twelveFactorVars[k] = os.Getenv(k)
		log.Debug(k, "=", twelveFactorVars[k])
	}
	stackDumpOnPanic = twelveFactorVars[envVarStackDump] != ""
	a, ok := acts[strings.ToLower(twelveFactorVars[envVarCommand])]
	if !ok {
		err = fmt.Errorf("invalid command %q supplied in %v", twelveFactorVars[envVarCommand], envVarCommand)
		log.Error(err.Error())
		return
	}
	// Run the action.
	err = a.runnerFunc()
	if err != nil {
		log.Error("Error: ", err)
	}
	return err
}

// lambdaArgsHandler builds TDCH arguments for the job properties in a Lambda event.
// Values in the event take priority over those supplied by environment variables.
func lambdaArgsHandler(ctx context.Context, event config.JobProperties) (*actions.ArgsResponse, error) {
	log := logger.NewJSONLogger(c.ServiceName, helper.ReadValueFromEnvWithDefault(envVarLogLevel, "warn"), stackDumpOnPanic)
	if err := file.CheckSpecsWithinRoot(argsCfg.WorkDir, event.LibJars); err != nil {
		return nil, err
	}
	props := argsFlagValues
	props.Overlay(event)
	return actions.BuildArgs(log, props, argsCfg.WorkDir, true)
}
