package backoffice_test

import (
	"testing"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request backoffice.UserCreateRequest
		wantErr string
	}{
		{
			name:    "valid",
			request: backoffice.UserCreateRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"},
		},
		{
			name:    "missing fields",
			request: backoffice.UserCreateRequest{Email: "asha@example.com"},
			wantErr: "All fields are mandatory! (name, password)",
		},
		{
			name:    "invalid email",
			request: backoffice.UserCreateRequest{Name: "Asha", Email: "not-an-email", Password: "secret1"},
			wantErr: "email: Invalid email",
		},
		{
			name:    "short password",
			request: backoffice.UserCreateRequest{Name: "Asha", Email: "asha@example.com", Password: "123"},
			wantErr: "password: Minimum 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.request.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, backoffice.IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestWorkTrackerRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := backoffice.WorkTrackerRequest{
		EntryType:      backoffice.EntryTypeBulk,
		AllocationDate: "2024-05-01",
		AllocationBy:   "Partner",
		Status:         "OPEN",
		CompanyID:      "c1",
		CaseID:         "k1",
		UserID:         "u1",
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.EntryType = "SOMETIMES"
	require.EqualError(t, invalid.Validate(), "entryType: Invalid entry type")

	missing := valid
	missing.CompanyID = ""
	missing.Status = " "
	require.EqualError(t, missing.Validate(), "All fields are mandatory! (companyId, status)")
}

func TestOtherRequests_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&backoffice.CompanyRequest{Name: "Acme", Code: "ACM"}).Validate())
	require.Error(t, (&backoffice.CompanyRequest{Name: "Acme"}).Validate())
	require.Error(t, (&backoffice.CompanyRequest{Name: "Acme", Code: "ACM", Email: "nope"}).Validate())

	require.NoError(t, (&backoffice.CaseTypeRequest{Name: "Civil"}).Validate())
	require.Error(t, (&backoffice.CaseTypeRequest{Description: "no name"}).Validate())

	require.NoError(t, (&backoffice.UserUpdateRequest{Name: "Only name"}).Validate())
	require.Error(t, (&backoffice.UserUpdateRequest{Email: "bad"}).Validate())

	require.NoError(t, (&backoffice.LoginRequest{Email: "a@b.co", Password: "pw"}).Validate())
	require.Error(t, (&backoffice.LoginRequest{Email: "a@b.co"}).Validate())

	require.NoError(t, (&backoffice.RegisterRequest{Email: "a@b.co", Name: "A", Password: "pw"}).Validate())
	require.Error(t, (&backoffice.RegisterRequest{Email: "a@b.co", Password: "pw"}).Validate())
}
