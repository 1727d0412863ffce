package route_test

import (
	"testing"

	"github.com/ashishkumar1990/laywer-client/internal/route"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     map[string]string
		expected string
		wantErr  error
	}{
		{
			name:     "mustache placeholder",
			template: "/workTracker/{{id}}",
			args:     map[string]string{"id": "42"},
			expected: "/workTracker/42",
		},
		{
			name:     "mustache placeholder with spaces",
			template: "/users/{{ id }}/roles",
			args:     map[string]string{"id": "u1"},
			expected: "/users/u1/roles",
		},
		{
			name:     "rfc 6570 placeholder",
			template: "/companies/{id}",
			args:     map[string]string{"id": "c7"},
			expected: "/companies/c7",
		},
		{
			name:     "no placeholders and nil args",
			template: "/auth/login",
			expected: "/auth/login",
		},
		{
			name:     "extra args are ignored",
			template: "/caseTypes/{{id}}",
			args:     map[string]string{"id": "k1", "unused": "x"},
			expected: "/caseTypes/k1",
		},
		{
			name:     "values are escaped",
			template: "/users/{{id}}",
			args:     map[string]string{"id": "a/b c"},
			expected: "/users/a%2Fb%20c",
		},
		{
			name:     "missing placeholder fails fast",
			template: "/users/{{id}}",
			args:     map[string]string{},
			wantErr:  backoffice.ErrMissingPathArg,
		},
		{
			name:     "missing placeholder with nil args",
			template: "/users/{{id}}",
			wantErr:  backoffice.ErrMissingPathArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uri, err := route.Render(tt.template, tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, uri)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, uri)
		})
	}
}

func TestRoute_Params(t *testing.T) {
	t.Parallel()

	r := route.MustNew("/companies/{{companyId}}/cases/{{caseId}}")
	assert.Equal(t, []string{"companyId", "caseId"}, r.Params())
	assert.Equal(t, "/companies/{{companyId}}/cases/{{caseId}}", r.Pattern())

	_, err := r.Build(map[string]string{"companyId": "c1"})
	require.ErrorIs(t, err, backoffice.ErrMissingPathArg)
	assert.Contains(t, err.Error(), "caseId")
}

func TestNew_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := route.New("/users/{id")
	require.Error(t, err)

	assert.Panics(t, func() { route.MustNew("/users/{id") })
}
