// Package route renders request paths from URI templates.
//
// Templates use mustache-style placeholders ("/workTracker/{{id}}") or
// RFC 6570 level 1 expressions ("/workTracker/{id}"). Unlike a plain
// string substitution, rendering fails when a placeholder has no value
// instead of leaking the placeholder text into the request path.
package route

import (
	"fmt"
	"regexp"

	"github.com/yosida95/uritemplate/v3"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

var mustachePlaceholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Route is a parsed URI template together with the parameters it requires.
type Route struct {
	pattern  string
	template *uritemplate.Template
	params   []string
}

// New parses pattern. Mustache placeholders are rewritten to RFC 6570
// expressions before parsing.
func New(pattern string) (*Route, error) {
	tmpl, err := uritemplate.New(mustachePlaceholder.ReplaceAllString(pattern, "{$1}"))
	if err != nil {
		return nil, fmt.Errorf("parsing route %q: %w", pattern, err)
	}

	return &Route{
		pattern:  pattern,
		template: tmpl,
		params:   tmpl.Varnames(),
	}, nil
}

// MustNew is like New but panics on an invalid pattern. It is meant for
// package level route tables.
func MustNew(pattern string) *Route {
	r, err := New(pattern)
	if err != nil {
		panic(err)
	}

	return r
}

// Pattern returns the pattern the route was built from.
func (r *Route) Pattern() string {
	return r.pattern
}

// Params returns the placeholder names in order of first appearance.
func (r *Route) Params() []string {
	out := make([]string, len(r.params))
	copy(out, r.params)

	return out
}

// Build expands the route. Every placeholder must have an entry in args;
// extra entries are ignored. Values are percent-encoded.
func (r *Route) Build(args map[string]string) (string, error) {
	values := uritemplate.Values{}

	for _, name := range r.params {
		value, ok := args[name]
		if !ok {
			return "", fmt.Errorf("%w: %q in %q", backoffice.ErrMissingPathArg, name, r.pattern)
		}

		values.Set(name, uritemplate.String(value))
	}

	uri, err := r.template.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expanding route %q: %w", r.pattern, err)
	}

	return uri, nil
}

// Render parses template and expands it with pathArgs in one step.
func Render(template string, pathArgs map[string]string) (string, error) {
	r, err := New(template)
	if err != nil {
		return "", err
	}

	return r.Build(pathArgs)
}
