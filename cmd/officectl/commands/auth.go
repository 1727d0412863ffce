package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the login session",
		Long:  "Register an account, log in and out, and show the current user",
	}

	cmd.AddCommand(newAuthRegisterCommand())
	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthMeCommand())
	cmd.AddCommand(newAuthLogoutCommand())

	return cmd
}

func newAuthRegisterCommand() *cobra.Command {
	request := &backoffice.RegisterRequest{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			err := askMissing(p, &request.Name, "Name: ")
			if err != nil {
				return err
			}

			err = askMissing(p, &request.Email, "Email: ")
			if err != nil {
				return err
			}

			if request.Password == "" {
				request.Password, err = promptNewPassword(cmd)
				if err != nil {
					return err
				}
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				outcome, err := s.client.Auth().Register(ctx, request)
				if err != nil {
					return err
				}

				return render(cmd, outcome, func(out io.Writer) error {
					_, err := fmt.Fprintf(out, "Registered %s\n", request.Email)

					return err
				})
			})
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.Email, "email", "", "email address")
	cmd.Flags().StringVar(&request.Password, "password", "", "password, prompted for when omitted")

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	request := &backoffice.LoginRequest{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the back-office server",
		Long:  "Log in and keep the session cookie in the config file for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			err := askMissing(p, &request.Email, "Email: ")
			if err != nil {
				return err
			}

			if request.Password == "" {
				request.Password, err = p.password("Password: ")
				if err != nil {
					return err
				}
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				outcome, err := s.client.Auth().Login(ctx, request)
				if err != nil {
					return err
				}

				return render(cmd, outcome, func(out io.Writer) error {
					_, err := fmt.Fprintf(out, "Logged in as %s\n", request.Email)

					return err
				})
			})
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "email address")
	cmd.Flags().StringVar(&request.Password, "password", "", "password, prompted for when omitted")

	return cmd
}

func newAuthMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "me",
		Aliases: []string{"whoami"},
		Short:   "Show the logged in user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				me, err := s.client.Auth().Me(ctx)
				if err != nil {
					return err
				}

				return render(cmd, me, func(out io.Writer) error {
					return renderProperties(out,
						[]string{"ID", "Name", "Email", "Phone"},
						[]string{me.ID, me.Name, me.Email, me.PhoneNumber},
					)
				})
			})
		},
	}
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				if len(s.config.Session) == 0 {
					return constants.ErrNotLoggedIn
				}

				err := s.client.Auth().Logout(ctx)
				if err != nil {
					return err
				}

				// The server may not expire the cookie itself.
				s.forget = true

				_, _ = io.WriteString(cmd.OutOrStdout(), "Logged out\n")

				return nil
			})
		},
	}
}

func askMissing(p *prompter, value *string, label string) error {
	if *value != "" {
		return nil
	}

	answer, err := p.line(label)
	if err != nil {
		return err
	}

	*value = answer

	return nil
}
