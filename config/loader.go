package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "COVERAGE_STATUS"

// LoadConfig loads config from command instance to predefined config variables
func LoadConfig(cmd *cobra.Command) (*StatusConfig, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// default viper configs
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	if err := setEnvBindings(); err != nil {
		return nil, err
	}

	// set default configs
	setDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigName(global.ConfigFileName)
		viper.AddConfigPath("./")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
			fmt.Fprintln(os.Stderr, "Warning: No configuration file found. Proceeding with defaults")
		}
	}

	return populateStatusConfig(new(StatusConfig))
}
