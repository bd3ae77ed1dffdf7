package main

import (
	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "the config file to use")
	rootCmd.PersistentFlags().StringP("coverage-file", "f", "", "Path of cobertura XML file or pycobertura .diff.json, globs are accepted")
	rootCmd.PersistentFlags().StringP("repository", "r", "", "owner/name of repository")
	rootCmd.PersistentFlags().StringP("sha", "s", "", "SHA hash of commit")
	rootCmd.PersistentFlags().String("target", string(core.TargetStatus), "Publish as a commit status or a check-run (status, check-run)")
	rootCmd.PersistentFlags().String("api-url", global.DefaultAPIURL, "Base url of the GitHub API")
	rootCmd.PersistentFlags().Duration("timeout", global.DefaultAPITimeout, "Timeout of the API request")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Log the request instead of sending it")
	rootCmd.PersistentFlags().String("logger", "zap", "Logger implementation (zap, logrus)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Run in verbose mode")
}
