package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/ashishkumar1990/laywer-client/internal/response"
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// AuthClient implements backoffice.AuthClient. The session lives in the
// cookie jar of the transport, so every call after Login is authenticated.
type AuthClient struct {
	rest *rest.Client
}

var _ backoffice.AuthClient = (*AuthClient)(nil)

// NewAuthClient creates a new auth client.
func NewAuthClient(restClient *rest.Client) *AuthClient {
	return &AuthClient{rest: restClient}
}

// Register implements backoffice.AuthClient.Register.
func (c *AuthClient) Register(ctx context.Context, request *backoffice.RegisterRequest) (backoffice.Outcome, error) {
	return c.submit(ctx, "/auth/register", request)
}

// Login implements backoffice.AuthClient.Login.
func (c *AuthClient) Login(ctx context.Context, request *backoffice.LoginRequest) (backoffice.Outcome, error) {
	return c.submit(ctx, "/auth/login", request)
}

// Me implements backoffice.AuthClient.Me. Without a session the server
// answers 401, which is reported as the canned "Login to continue" failure.
func (c *AuthClient) Me(ctx context.Context) (*backoffice.User, error) {
	payload, err := c.rest.Get(ctx, "/auth/me", nil, nil)
	if err != nil {
		if backoffice.IsUnauthorized(err) {
			return nil, fmt.Errorf("getting current user: %w", response.AuthRequired().Err())
		}

		return nil, fmt.Errorf("getting current user: %w", err)
	}

	raw := payload

	user := gjson.GetBytes(payload, "user")
	if user.IsObject() {
		raw = []byte(user.Raw)
	}

	var me backoffice.User

	err = json.Unmarshal(raw, &me)
	if err != nil {
		return nil, fmt.Errorf("parsing current user: %w", err)
	}

	return &me, nil
}

// Logout implements backoffice.AuthClient.Logout.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.rest.Get(ctx, "/auth/logout", nil, nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

func (c *AuthClient) submit(ctx context.Context, path string, request validator) (backoffice.Outcome, error) {
	err := request.Validate()
	if err != nil {
		return invalid(err), err
	}

	result, err := c.rest.Post(ctx, path, nil, request, nil)
	if err != nil {
		return outcomeOf(err), err
	}

	if result.ID != "" {
		return backoffice.SucceededWith(map[string]string{"id": result.ID}), nil
	}

	return backoffice.Succeeded(result.Body), nil
}

func invalid(err error) backoffice.Outcome {
	validation := &backoffice.ValidationError{}
	if errors.As(err, &validation) && len(validation.Fields) == 0 {
		return backoffice.Failed(0, validation.Message)
	}

	return response.AllFieldsRequired()
}

// outcomeOf converts a call error back into the outcome the caller would
// have seen from the classifier.
func outcomeOf(err error) backoffice.Outcome {
	failure := &backoffice.FailureError{}
	if errors.As(err, &failure) {
		return backoffice.Failed(failure.Code, failure.Message)
	}

	return response.ServerDown(err)
}
