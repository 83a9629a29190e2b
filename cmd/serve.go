package cmd

import (
	"net"
	"strconv"

	"github.com/relloyd/tdch/actions"
	"github.com/relloyd/tdch/stats"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a web service that builds TDCH arguments from job properties described in JSON",
	Long: `Start a web service that builds TDCH arguments from job properties described in JSON.

POST job properties to /args to receive the TDCH tool class and arguments.
GET /stats for request counts, /health to check the service and /stop to shut it down.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveConfig = actions.WebServerConfig{
	LogLevel: "info",
	Scheme:   "http",
	Addr:     net.IP{0, 0, 0, 0},
	Port:     8080,

	StatsDumpFrequencySeconds: stats.DefaultStatsDumpFrequencySeconds,
}

func runServe() error {
	serveConfig.StackDumpOnPanic = stackDumpOnPanic
	return actions.RunWebServer(&serveConfig)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().SortFlags = false
	serveCmd.Flags().IPVarP(&serveConfig.Addr, "address", "a", net.IP{0, 0, 0, 0}, "Address to listen on")
	switches.addFlag(serveCmd, &serveConfig.Port, "port", "8080", false, "")
	switches.addFlag(serveCmd, &serveConfig.LogLevel, "log-level", "info", false, "")
	switches.addFlag(serveCmd, &serveConfig.WorkDir, "work-dir", "", false, "")
	switches.addFlag(serveCmd, &serveConfig.StatsDumpFrequencySeconds, "stats", strconv.Itoa(stats.DefaultStatsDumpFrequencySeconds), false, "")
}
