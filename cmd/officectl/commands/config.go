package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
)

// Configuration keys, shared by viper, the config file and config set.
const (
	keyAPI         = "api"
	keyOutput      = "output"
	keyNoColor     = "no_color"
	keyNATSURL     = "nats_url"
	keyNATSSubject = "nats_subject"
	keySession     = "session"
)

// ConfigDirName is the directory under the user's home holding config.yml.
const ConfigDirName = ".officectl"

// Config represents the CLI configuration.
type Config struct {
	API         string          `json:"api,omitempty"          yaml:"api,omitempty"`
	Output      string          `json:"output"                 yaml:"output"`
	NoColor     bool            `json:"no_color"               yaml:"no_color"`
	NATSURL     string          `json:"nats_url,omitempty"     yaml:"nats_url,omitempty"`
	NATSSubject string          `json:"nats_subject,omitempty" yaml:"nats_subject,omitempty"`
	Session     []SessionCookie `json:"session,omitempty"      yaml:"session,omitempty"`
}

// SessionCookie is a cookie of the logged in session, kept so later
// invocations stay authenticated.
type SessionCookie struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the officectl settings stored in ~/.officectl/config.yml",
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
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := loadConfig()

			masked := *config
			masked.Session = nil

			for _, cookie := range config.Session {
				masked.Session = append(masked.Session, SessionCookie{Name: cookie.Name, Value: Masked})
			}

			return render(cmd, masked, func(out io.Writer) error {
				return displayConfigTable(out, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: api, output, no_color, nats_url, nats_subject",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch normalizeKey(key) {
	case keyAPI:
		if config.API != value {
			// A session belongs to the server that issued it.
			config.Session = nil
		}

		config.API = value
	case keyOutput:
		config.Output = value
	case keyNoColor:
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.NoColor = noColor
	case keyNATSURL:
		config.NATSURL = value
	case keyNATSSubject:
		config.NATSSubject = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch normalizeKey(key) {
	case keyAPI:
		config.API = ""
		config.Session = nil
	case keyOutput:
		config.Output = ""
	case keyNoColor:
		config.NoColor = false
	case keyNATSURL:
		config.NATSURL = ""
	case keyNATSSubject:
		config.NATSSubject = ""
	case keySession:
		config.Session = nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "_")
}

// loadConfig reads the configuration from viper, so flags and OFFICECTL_*
// variables take precedence over the file.
func loadConfig() *Config {
	config := &Config{
		API:         viper.GetString(keyAPI),
		Output:      viper.GetString(keyOutput),
		NoColor:     viper.GetBool(keyNoColor),
		NATSURL:     viper.GetString(keyNATSURL),
		NATSSubject: viper.GetString(keyNATSSubject),
	}

	err := viper.UnmarshalKey(keySession, &config.Session)
	if err != nil {
		config.Session = nil
	}

	return config
}

// configFilePath returns the file in use, or ~/.officectl/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

// readConfigFile returns what is stored on disk, without flag or
// environment overrides. A missing file yields an empty configuration.
func readConfigFile() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// #nosec G304 -- configFile is the viper config or lives under the home directory
	data, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Reload so the rest of the process sees the saved values.
	viper.SetConfigFile(configFile)

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config file: %w", err)
	}

	return nil
}

func displayConfigTable(out io.Writer, config *Config) error {
	session := "none"
	if len(config.Session) > 0 {
		session = strconv.Itoa(len(config.Session)) + " cookie(s)"
	}

	return renderProperties(out,
		[]string{"API", "Output", "No Color", "NATS URL", "NATS Subject", "Session"},
		[]string{
			config.API,
			config.Output,
			yesNo(config.NoColor),
			config.NATSURL,
			config.NATSSubject,
			session,
		},
	)
}
