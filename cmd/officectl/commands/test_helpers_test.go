package commands_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ashishkumar1990/laywer-client/cmd/officectl/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupCLI resets viper, points it at a config file in a temp dir and, when
// handler is not nil, at an httptest server running it. It returns the
// config file path.
func setupCLI(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)

		viper.Set("api", server.URL)
	}

	return configFile
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes cmd with args, feeding stdin and capturing both outputs.
func run(cmd *cobra.Command, stdin string, args ...string) result {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	if body != nil {
		writer.Header().Set("Content-Type", "application/json")
	}

	writer.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(writer).Encode(body)
	}
}

func readConfigFile(t *testing.T, path string) commands.Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config commands.Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}
