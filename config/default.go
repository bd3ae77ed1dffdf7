package config

import (
	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "info")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./"+global.BinaryName+".log")
	viper.SetDefault("target", "status")
	viper.SetDefault("api-url", global.DefaultAPIURL)
	viper.SetDefault("timeout", global.DefaultAPITimeout)
	viper.SetDefault("Verbose", false)
}

// setEnvBindings maps config keys to the variables set by CI runners
func setEnvBindings() error {
	bindings := map[string][]string{
		global.TokenEnv: {global.TokenEnv},
		"repository":    {envPrefix + "_REPOSITORY", "GITHUB_REPOSITORY"},
		"sha":           {envPrefix + "_SHA", "GITHUB_SHA"},
		"api-url":       {envPrefix + "_API_URL", "GITHUB_API_URL"},
	}
	for key, envs := range bindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}
