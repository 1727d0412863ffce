package commands

import (
	"github.com/spf13/cobra"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	users := &entity[backoffice.User, backoffice.UserCreateRequest, backoffice.UserUpdateRequest]{
		use:      "users",
		aliases:  []string{"user"},
		singular: "user",
		plural:   "users",
		client: func(c *officeclient.Client) crudClient[backoffice.User, backoffice.UserCreateRequest, backoffice.UserUpdateRequest] {
			return c.Users()
		},
		headers: []string{"ID", "Name", "Email", "Phone", "Created"},
		row: func(u *backoffice.User) []string {
			return []string{u.ID, u.Name, u.Email, orNA(u.PhoneNumber), orNA(u.CreatedAt)}
		},
		createFields: []field[backoffice.UserCreateRequest]{
			{flag: "name", usage: "full name", value: func(r *backoffice.UserCreateRequest) *string { return &r.Name }},
			{flag: "email", usage: "email address", value: func(r *backoffice.UserCreateRequest) *string { return &r.Email }},
			{flag: "password", usage: "password, prompted for when omitted", value: func(r *backoffice.UserCreateRequest) *string { return &r.Password }},
		},
		updateFields: []field[backoffice.UserUpdateRequest]{
			{flag: "name", usage: "full name", value: func(r *backoffice.UserUpdateRequest) *string { return &r.Name }},
			{flag: "email", usage: "email address", value: func(r *backoffice.UserUpdateRequest) *string { return &r.Email }},
		},
		editable: func(u *backoffice.User) *backoffice.UserUpdateRequest {
			return &backoffice.UserUpdateRequest{Name: u.Name, Email: u.Email}
		},
		prepareCreate: func(cmd *cobra.Command, r *backoffice.UserCreateRequest) error {
			if r.Password != "" {
				return nil
			}

			password, err := promptNewPassword(cmd)
			if err != nil {
				return err
			}

			r.Password = password

			return nil
		},
	}

	return users.command()
}
