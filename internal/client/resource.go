package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// validator is implemented by every create and update request.
type validator interface {
	Validate() error
}

// Resource is the uniform REST surface shared by every back-office entity:
// T is the entity, C its create request and U its update request.
type Resource[T any, C, U validator] struct {
	rest   *rest.Client
	base   string
	name   string
	plural string
}

func newResource[T any, C, U validator](restClient *rest.Client, base, name, plural string) *Resource[T, C, U] {
	return &Resource[T, C, U]{
		rest:   restClient,
		base:   base,
		name:   name,
		plural: plural,
	}
}

// Path returns the collection path, for example "/users".
func (r *Resource[T, C, U]) Path() string {
	return r.base
}

// List fetches every entity of the collection.
func (r *Resource[T, C, U]) List(ctx context.Context) ([]T, error) {
	payload, err := r.rest.Get(ctx, r.base+"/", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.plural, err)
	}

	items := []T{}

	list := gjson.ParseBytes(payload)
	if !list.IsArray() {
		// Some endpoints wrap the rows in an object, e.g. {"rows": [...]}.
		list.ForEach(func(_, value gjson.Result) bool {
			if value.IsArray() {
				list = value

				return false
			}

			return true
		})
	}

	if !list.IsArray() {
		return items, nil
	}

	err = json.Unmarshal([]byte(list.Raw), &items)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", r.name, err)
	}

	return items, nil
}

// Count returns how many entities the collection holds.
func (r *Resource[T, C, U]) Count(ctx context.Context) (int, error) {
	payload, err := r.rest.Get(ctx, r.base+"/count", nil, nil)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.plural, err)
	}

	count, err := ParseCount(payload)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.plural, err)
	}

	return count, nil
}

// Create validates request, posts it and returns the id of the new entity.
func (r *Resource[T, C, U]) Create(ctx context.Context, request C) (string, error) {
	err := request.Validate()
	if err != nil {
		return "", err
	}

	result, err := r.rest.Post(ctx, r.base+"/", nil, request, nil)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", r.name, err)
	}

	id := result.ID
	if id == "" && len(result.Body) > 0 {
		id = gjson.GetBytes(result.Body, "id").String()
		if id == "" {
			id = gjson.GetBytes(result.Body, "_id").String()
		}
	}

	if id == "" {
		return "", fmt.Errorf("creating %s: %w", r.name, backoffice.ErrEmptyID)
	}

	return id, nil
}

// Get fetches a single entity by id.
func (r *Resource[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, constants.ErrIDRequired
	}

	payload, err := r.rest.Get(ctx, r.base+"/{{id}}", map[string]string{"id": id}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.name, err)
	}

	var entity T

	err = json.Unmarshal(payload, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", r.name, err)
	}

	return &entity, nil
}

// Update validates request and replaces the entity identified by id.
func (r *Resource[T, C, U]) Update(ctx context.Context, id string, request U) error {
	if id == "" {
		return constants.ErrIDRequired
	}

	err := request.Validate()
	if err != nil {
		return err
	}

	_, err = r.rest.Put(ctx, r.base+"/{{id}}", map[string]string{"id": id}, request, nil)
	if err != nil {
		return fmt.Errorf("updating %s: %w", r.name, err)
	}

	return nil
}

// Delete removes the entity identified by id. It reports true when the
// server answered 204.
func (r *Resource[T, C, U]) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, constants.ErrIDRequired
	}

	result, err := r.rest.Delete(ctx, r.base+"/{{id}}", map[string]string{"id": id}, nil, nil)
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", r.name, err)
	}

	return result == constants.DeletedToken, nil
}

// ParseCount reads a count payload. The server answers with a bare number,
// a numeric string, {"count": n}, {"data": n} or {"data": {"count": n}}.
func ParseCount(payload []byte) (int, error) {
	if !gjson.ValidBytes(payload) {
		return 0, fmt.Errorf("%w: %q", backoffice.ErrUnexpectedCount, payload)
	}

	result := gjson.ParseBytes(payload)

	for _, path := range []string{"", "count", "data", "data.count", "total"} {
		value := result
		if path != "" {
			if !result.IsObject() {
				break
			}

			value = result.Get(path)
		}

		count, ok := countValue(value)
		if ok {
			return count, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", backoffice.ErrUnexpectedCount, result.Raw)
}

func countValue(value gjson.Result) (int, bool) {
	switch value.Type {
	case gjson.Number:
		return int(value.Int()), true
	case gjson.String:
		count, err := strconv.Atoi(value.Str)
		if err != nil {
			return 0, false
		}

		return count, true
	default:
		return 0, false
	}
}
