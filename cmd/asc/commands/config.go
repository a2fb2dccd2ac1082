package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
	"github.com/fivetwenty-io/asc/pkg/ascclient"
)

// Configuration keys. Each is also read from the environment with the ASC_
// prefix, e.g. ASC_KEY_ID.
const (
	KeyIssuer         = "issuer"
	KeyKeyID          = "key_id"
	KeyPrivateKeyPath = "private_key_path"
	KeyPrivateKey     = "private_key"
	KeyBaseURL        = "base_url"
	KeyOutput         = "output"
	KeyVerbose        = "verbose"
	KeyTimeout        = "timeout"
)

// settableKeys lists the keys accepted by 'config set'.
var settableKeys = []string{KeyIssuer, KeyKeyID, KeyPrivateKeyPath, KeyBaseURL, KeyOutput, KeyTimeout}

// Config represents the CLI configuration.
type Config struct {
	Issuer         string `json:"issuer,omitempty"           yaml:"issuer,omitempty"`
	KeyID          string `json:"key_id,omitempty"           yaml:"key_id,omitempty"`
	PrivateKeyPath string `json:"private_key_path,omitempty" yaml:"private_key_path,omitempty"`
	PrivateKey     string `json:"private_key,omitempty"      yaml:"private_key,omitempty"`
	BaseURL        string `json:"base_url,omitempty"         yaml:"base_url,omitempty"`
	Output         string `json:"output,omitempty"           yaml:"output,omitempty"`
	Timeout        string `json:"timeout,omitempty"          yaml:"timeout,omitempty"`
	Verbose        bool   `json:"verbose"                    yaml:"verbose"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the API key and settings stored in ~/.asc/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration from file, environment and flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config

			if masked.PrivateKey != "" {
				masked.PrivateKey = constants.MaskedSecret
			}

			return writeOutput(cmd, masked, func(writer io.Writer) error {
				return displayConfigTable(writer, &masked)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(settableKeys, ", "),
		Args:  cobra.ExactArgs(constants.KeyValueSplitParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if err := validateConfigValue(key, value); err != nil {
				return err
			}

			if key == KeyPrivateKeyPath {
				absolute, err := filepath.Abs(value)
				if err != nil {
					return fmt.Errorf("failed to resolve key path: %w", err)
				}

				value = absolute
			}

			viper.Set(key, value)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if !isSettableKey(key) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func isSettableKey(key string) bool {
	for _, settable := range settableKeys {
		if key == settable {
			return true
		}
	}

	return false
}

func validateConfigValue(key, value string) error {
	if !isSettableKey(key) {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	switch key {
	case KeyOutput:
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML, constants.FormatAuto:
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, value)
		}
	case KeyTimeout:
		if _, err := parseTimeout(value); err != nil {
			return err
		}
	}

	return nil
}

func loadConfig() *Config {
	return &Config{
		Issuer:         viper.GetString(KeyIssuer),
		KeyID:          viper.GetString(KeyKeyID),
		PrivateKeyPath: viper.GetString(KeyPrivateKeyPath),
		PrivateKey:     viper.GetString(KeyPrivateKey),
		BaseURL:        viper.GetString(KeyBaseURL),
		Output:         viper.GetString(KeyOutput),
		Timeout:        viper.GetString(KeyTimeout),
		Verbose:        viper.GetBool(KeyVerbose),
	}
}

// saveConfig writes the settable keys to the config file in use, creating
// ~/.asc/config.yml when no file was loaded.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, constants.ConfigDirName)

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, constants.ConfigFileName)
	}

	return writeConfigFile(configFile)
}

// writeConfigFile persists only the settable keys so that flag and
// environment values such as the inline private key never reach disk.
func writeConfigFile(configFile string) error {
	persisted := viper.New()

	for _, key := range settableKeys {
		if value := viper.GetString(key); value != "" {
			persisted.Set(key, value)
		}
	}

	if err := persisted.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := os.Chmod(configFile, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}

	return nil
}

func displayConfigTable(writer io.Writer, config *Config) error {
	return renderProperties(writer, [][]string{
		{"Issuer", formatConfigValue(config.Issuer)},
		{"Key ID", formatConfigValue(config.KeyID)},
		{"Private Key Path", formatConfigValue(config.PrivateKeyPath)},
		{"Private Key", formatConfigValue(config.PrivateKey)},
		{"Base URL", formatConfigValue(config.BaseURL)},
		{"Output", formatConfigValue(config.Output)},
		{"Timeout", formatConfigValue(config.Timeout)},
		{"Verbose", strconv.FormatBool(config.Verbose)},
	})
}

func formatConfigValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// createClient builds an API client from the effective configuration.
func createClient() (asc.Client, error) {
	config := loadConfig()

	if config.Issuer == "" && config.KeyID == "" && config.PrivateKeyPath == "" && config.PrivateKey == "" {
		return nil, constants.ErrNoCredentials
	}

	clientConfig, err := buildClientConfig(config)
	if err != nil {
		return nil, err
	}

	client, err := ascclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func buildClientConfig(config *Config) (*asc.Config, error) {
	logger, err := NewZapLogger(config.Verbose)
	if err != nil {
		return nil, err
	}

	timeout, err := parseTimeout(config.Timeout)
	if err != nil {
		return nil, err
	}

	clientConfig := &asc.Config{
		Issuer:         config.Issuer,
		KeyID:          config.KeyID,
		PrivateKeyPath: config.PrivateKeyPath,
		BaseURL:        config.BaseURL,
		HTTPTimeout:    timeout,
		Debug:          config.Verbose,
		Logger:         logger,
	}

	if config.PrivateKey != "" {
		clientConfig.PrivateKey = []byte(config.PrivateKey)
	}

	return clientConfig, nil
}
