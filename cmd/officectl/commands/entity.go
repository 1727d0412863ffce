package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

// crudClient is the surface every entity client shares.
type crudClient[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, request *C) (string, error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, request *U) error
	Delete(ctx context.Context, id string) (bool, error)
}

// field maps a string flag onto a request field.
type field[R any] struct {
	flag  string
	usage string
	value func(*R) *string
}

// entity describes how one back-office entity is exposed on the command
// line: T is the entity, C its create request and U its update request.
type entity[T, C, U any] struct {
	use      string
	aliases  []string
	singular string
	plural   string
	client   func(*officeclient.Client) crudClient[T, C, U]

	headers []string
	row     func(*T) []string

	// details and detailRow replace headers and row in get, when set.
	details   []string
	detailRow func(*T) []string

	createFields []field[C]
	updateFields []field[U]

	// editable seeds an update request from the stored entity, so the
	// flags only need to name what changes.
	editable func(*T) *U

	// prepareCreate runs after flags are applied, e.g. to prompt for a
	// password.
	prepareCreate func(cmd *cobra.Command, request *C) error
}

// CountResult is printed by the count subcommands.
type CountResult struct {
	Count int `json:"count" yaml:"count"`
}

// IDResult is printed by create, update and delete.
type IDResult struct {
	ID      string `json:"id"                yaml:"id"`
	Deleted *bool  `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

func (e *entity[T, C, U]) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     e.use,
		Aliases: e.aliases,
		Short:   "Manage " + e.plural,
		Long:    "List, inspect, create, update and delete " + e.plural,
	}

	cmd.AddCommand(e.listCommand())
	cmd.AddCommand(e.getCommand())
	cmd.AddCommand(e.countCommand())
	cmd.AddCommand(e.createCommand())
	cmd.AddCommand(e.updateCommand())
	cmd.AddCommand(e.deleteCommand())

	return cmd
}

func (e *entity[T, C, U]) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List " + e.plural,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				items, err := e.client(s.client).List(ctx)
				if err != nil {
					return err
				}

				return render(cmd, items, func(out io.Writer) error {
					if len(items) == 0 {
						_, _ = fmt.Fprintf(out, "No %s found\n", e.plural)

						return nil
					}

					rows := make([][]string, 0, len(items))
					for i := range items {
						rows = append(rows, e.row(&items[i]))
					}

					return renderTable(out, e.headers, rows)
				})
			})
		},
	}
}

func (e *entity[T, C, U]) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a " + e.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				item, err := e.client(s.client).Get(ctx, args[0])
				if err != nil {
					return err
				}

				return render(cmd, item, func(out io.Writer) error {
					if e.detailRow != nil {
						return renderProperties(out, e.details, e.detailRow(item))
					}

					return renderProperties(out, e.headers, e.row(item))
				})
			})
		},
	}
}

func (e *entity[T, C, U]) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count " + e.plural,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				count, err := e.client(s.client).Count(ctx)
				if err != nil {
					return err
				}

				return render(cmd, CountResult{Count: count}, func(out io.Writer) error {
					_, err := fmt.Fprintf(out, "%d %s\n", count, e.plural)

					return err
				})
			})
		},
	}
}

func (e *entity[T, C, U]) createCommand() *cobra.Command {
	var fromFile string

	values := make([]string, len(e.createFields))

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + e.singular,
		Long:  "Create a " + e.singular + " from flags, a YAML file, or both. Fields in the file win.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := new(C)
			applyFields(cmd, e.createFields, values, request)

			if fromFile != "" {
				err := loadYAMLFile(fromFile, request)
				if err != nil {
					return err
				}
			}

			if e.prepareCreate != nil {
				err := e.prepareCreate(cmd, request)
				if err != nil {
					return err
				}
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				id, err := e.client(s.client).Create(ctx, request)
				if err != nil {
					return err
				}

				return render(cmd, IDResult{ID: id}, func(out io.Writer) error {
					_, err := fmt.Fprintf(out, "Created %s '%s'\n", e.singular, id)

					return err
				})
			})
		},
	}

	bindFields(cmd, e.createFields, values)
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "read the "+e.singular+" from a YAML file")

	return cmd
}

func (e *entity[T, C, U]) updateCommand() *cobra.Command {
	var fromFile string

	values := make([]string, len(e.updateFields))

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a " + e.singular,
		Long:  "Update a " + e.singular + ". Fields not given keep their stored value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile == "" && !anyChanged(cmd, e.updateFields) {
				return ErrNothingToUpdate
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				resource := e.client(s.client)

				current, err := resource.Get(ctx, args[0])
				if err != nil {
					return err
				}

				request := e.editable(current)
				applyFields(cmd, e.updateFields, values, request)

				if fromFile != "" {
					err = loadYAMLFile(fromFile, request)
					if err != nil {
						return err
					}
				}

				err = resource.Update(ctx, args[0], request)
				if err != nil {
					return err
				}

				return render(cmd, IDResult{ID: args[0]}, func(out io.Writer) error {
					_, err := fmt.Fprintf(out, "Updated %s '%s'\n", e.singular, args[0])

					return err
				})
			})
		},
	}

	bindFields(cmd, e.updateFields, values)
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "read changes from a YAML file")

	return cmd
}

func (e *entity[T, C, U]) deleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a " + e.singular,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !force && !confirm(cmd, fmt.Sprintf("Really delete %s '%s'? (y/N): ", e.singular, id)) {
				_, _ = io.WriteString(cmd.OutOrStdout(), "Cancelled\n")

				return nil
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				deleted, err := e.client(s.client).Delete(ctx, id)
				if err != nil {
					return err
				}

				return render(cmd, IDResult{ID: id, Deleted: &deleted}, func(out io.Writer) error {
					if deleted {
						_, err := fmt.Fprintf(out, "Successfully deleted %s '%s'\n", e.singular, id)

						return err
					}

					_, err := fmt.Fprintf(out, "Delete of %s '%s' was accepted\n", e.singular, id)

					return err
				})
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "force deletion without confirmation")

	return cmd
}

func bindFields[R any](cmd *cobra.Command, fields []field[R], values []string) {
	for i, f := range fields {
		cmd.Flags().StringVar(&values[i], f.flag, "", f.usage)
	}
}

// applyFields copies the flags the user actually set into request.
func applyFields[R any](cmd *cobra.Command, fields []field[R], values []string, request *R) {
	for i, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.value(request) = values[i]
		}
	}
}

func anyChanged[R any](cmd *cobra.Command, fields []field[R]) bool {
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			return true
		}
	}

	return false
}

// confirm asks question on stdout and reads a y/N answer from stdin.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = io.WriteString(cmd.OutOrStdout(), question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	answer = strings.TrimSpace(answer)

	return answer == "y" || answer == "Y"
}
