package commands

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show how many records each entity holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				counts, err := s.client.Dashboard(ctx)
				if err != nil {
					return err
				}

				return render(cmd, counts, func(out io.Writer) error {
					return renderTable(out, []string{"Entity", "Count"}, [][]string{
						{"Users", strconv.Itoa(counts.Users)},
						{"Companies", strconv.Itoa(counts.Companies)},
						{"Case Types", strconv.Itoa(counts.CaseTypes)},
						{"Work Trackers", strconv.Itoa(counts.WorkTrackers)},
					})
				})
			})
		},
	}
}
