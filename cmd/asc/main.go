package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/asc/cmd/asc/commands"
	"github.com/fivetwenty-io/asc/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "asc",
	Short: "App Store Connect API CLI",
	Long: `A command-line interface for the App Store Connect API.

This CLI manages the provisioning resources of a team: apps, bundle IDs,
capabilities, certificates, devices, profiles and users. Requests are
authenticated with an API key (.p8) issued on the App Store Connect
"Users and Access" page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.asc/config.yml)")
	rootCmd.PersistentFlags().String("issuer", "", "API key issuer id")
	rootCmd.PersistentFlags().String("key-id", "", "API key id")
	rootCmd.PersistentFlags().String("key-file", "", "path to the API key .p8 file")
	rootCmd.PersistentFlags().String("base-url", "", "API root URL (default is the production API)")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatAuto, "output format (table, json, yaml, auto)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyIssuer, rootCmd.PersistentFlags().Lookup("issuer"))
	_ = viper.BindPFlag(commands.KeyKeyID, rootCmd.PersistentFlags().Lookup("key-id"))
	_ = viper.BindPFlag(commands.KeyPrivateKeyPath, rootCmd.PersistentFlags().Lookup("key-file"))
	_ = viper.BindPFlag(commands.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(commands.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewAppsCommand())
	rootCmd.AddCommand(commands.NewBundleIDsCommand())
	rootCmd.AddCommand(commands.NewCertificatesCommand())
	rootCmd.AddCommand(commands.NewProfilesCommand())
	rootCmd.AddCommand(commands.NewDevicesCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.asc/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, e.g. ASC_ISSUER
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(commands.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
