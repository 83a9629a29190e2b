package helper

import (
	"fmt"
	"os"
	"strings"

	"github.com/relloyd/tdch/constants"
)

// ReadValueFromEnv will read the environment variable name into val.
// If the env var is not set then return an error and leave val untouched.
func ReadValueFromEnv(name string, val *string) error {
	v := os.Getenv(name)
	if v != "" { // if the environment variable was set...
		*val = v // update the callers value
		return nil
	}
	return fmt.Errorf("value for environment variable %v not found", name)
}

// ReadValueFromEnvWithDefault will read the value of name from the environment.
// If it's not set then the supplied defaultValue is returned.
func ReadValueFromEnvWithDefault(name string, defaultValue string) (v string) {
	_ = ReadValueFromEnv(name, &v)
	if v == "" {
		v = defaultValue
	}
	return
}

// GetEnvVarName converts a flag or property name into an environment variable name
// of the form <EnvVarPrefix>_<NAME> where dashes and dots become underscores.
func GetEnvVarName(name string) string {
	r := strings.NewReplacer("-", "_", ".", "_")
	return fmt.Sprintf("%v_%v", constants.EnvVarPrefix, strings.ToUpper(r.Replace(strings.TrimSpace(name))))
}
