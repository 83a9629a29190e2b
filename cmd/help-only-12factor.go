package cmd

import (
	"fmt"

	"github.com/relloyd/tdch/constants"
	"github.com/spf13/cobra"
)

var twelveFactorCmd = &cobra.Command{
	Use:   "12f",
	Short: `View help notes for running in Twelve-Factor mode`,
	Long: fmt.Sprintf(`
tdch can be controlled by environment variables, which suits containers and 
serverless environments.

To enable Twelve-Factor mode, set environment variable %[1]s_12FACTOR_MODE=1. 
Choose the command using %[1]s_COMMAND=args|serve. To supply flags documented 
by the regular command-line usage, set an equivalent environment variable using 
the following convention: 

%[1]s_<flag long-name in upper case with dashes as underscores>

For example, this will print the arguments to copy a Teradata table to HDFS:

export %[1]s_12FACTOR_MODE=1
export %[1]s_COMMAND=args
export %[1]s_OUTPUT=json
export %[1]s_TD_JDBC_CLASS_NAME=com.teradata.jdbc.TeraDriver
export %[1]s_TD_HOSTNAME=td.example.com
export %[1]s_TD_USERID=etl_user
export %[1]s_TD_CREDENTIAL_NAME=tdWallet
export %[1]s_TDCH_JOBTYPE=hdfs
export %[1]s_TDCH_FILEFORMAT=textfile
export %[1]s_TDCH_NUM_MAPPERS=4
export %[1]s_SOURCE_TD_TABLENAME=sales.orders
export %[1]s_TARGET_HDFS_PATH=/data/orders

Then execute the CLI tool without any arguments or flags.

Set %[1]s_12FACTOR_MODE=lambda to run as an AWS Lambda function. Each event is 
a JSON object of job properties (e.g. {"td.hostname": "td.example.com"}) whose 
values take priority over the environment variables above. The response holds 
the tool class and arguments.
`, constants.EnvVarPrefix),
}

func init() {
	rootCmd.AddCommand(twelveFactorCmd)
}
