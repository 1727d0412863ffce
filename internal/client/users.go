package client

import (
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// UsersClient implements backoffice.UsersClient.
type UsersClient = Resource[backoffice.User, *backoffice.UserCreateRequest, *backoffice.UserUpdateRequest]

var _ backoffice.UsersClient = (*UsersClient)(nil)

// NewUsersClient creates a new users client.
func NewUsersClient(restClient *rest.Client) *UsersClient {
	return newResource[backoffice.User, *backoffice.UserCreateRequest, *backoffice.UserUpdateRequest](restClient, "/users", "user", "users")
}
