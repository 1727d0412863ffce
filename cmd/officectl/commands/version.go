package commands

import (
	"io"

	"github.com/spf13/cobra"
)

// cliVersion is sent in the User-Agent header.
var cliVersion = "dev"

// VersionInfo describes the build.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	cliVersion = version

	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about officectl",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			return render(cmd, info, func(out io.Writer) error {
				return renderProperties(out,
					[]string{"Version", "Commit", "Built"},
					[]string{info.Version, info.Commit, info.Built},
				)
			})
		},
	}
}
