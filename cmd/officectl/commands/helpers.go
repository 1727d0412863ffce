package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Common values used throughout the commands package.
const (
	Yes     = "yes"
	No      = "no"
	Masked  = "***"
	outputs = "table, json, yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrNothingToUpdate     = errors.New("nothing to update, pass at least one flag or --from-file")
)

// outputFormat returns the --output value, falling back to table.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w %q, expected one of %s", ErrUnknownOutputFormat, format, outputs)
	}
}

// render writes value as JSON or YAML, or calls table for the table format.
func render(cmd *cobra.Command, value interface{}, table func(io.Writer) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return outputJSON(out, value)
	case constants.FormatYAML:
		return outputYAML(out, value)
	default:
		return table(out)
	}
}

func outputJSON(out io.Writer, value interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func outputYAML(out io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(out)
	defer func() { _ = encoder.Close() }()

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// renderTable draws rows under headers.
func renderTable(out io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(out)
	table.Header(headers)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties draws a two column Property/Value table.
func renderProperties(out io.Writer, names, values []string) error {
	rows := make([][]string, 0, len(names))

	for i, name := range names {
		value := constants.NotAvailable
		if i < len(values) && values[i] != "" {
			value = values[i]
		}

		rows = append(rows, []string{name, value})
	}

	return renderTable(out, []string{"Property", "Value"}, rows)
}

// orNA returns value, or N/A when it is empty.
func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// yesNo renders a boolean for tables.
func yesNo(value bool) string {
	if value {
		return Yes
	}

	return No
}

// loadYAMLFile decodes a YAML (or JSON) file into target. Fields missing
// from the file keep their current value.
func loadYAMLFile(path string, target interface{}) error {
	// #nosec G304 -- the path is given by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// Notified reports whether err was already shown to the user as an error
// notification by the request pipeline.
func Notified(err error) bool {
	return backoffice.StatusCode(err) != 0 || errors.Is(err, backoffice.ErrTransport)
}
