package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "docserve [port]",
	Short: "local preview server for the documentation and blog",
	Args:  cobra.MaximumNArgs(1),
	// bare invocation serves the documentation variant
	Run: func(cmd *cobra.Command, args []string) {
		runServe(args, docsTitle, true)
	},
}

func init() {
	viper.SetEnvPrefix("docserve")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(blogCmd)
	serveInit()
}

// Execute primary function for cobra
func Execute() {
	_ = rootCmd.Execute()
}
