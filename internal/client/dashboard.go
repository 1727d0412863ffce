package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Dashboard fetches the count of every entity concurrently. The first
// failing count cancels the others.
func (c *Client) Dashboard(ctx context.Context) (*backoffice.Counts, error) {
	var counts backoffice.Counts

	group, groupCtx := errgroup.WithContext(ctx)

	counters := []struct {
		count func(context.Context) (int, error)
		into  *int
	}{
		{c.users.Count, &counts.Users},
		{c.companies.Count, &counts.Companies},
		{c.caseTypes.Count, &counts.CaseTypes},
		{c.workTrackers.Count, &counts.WorkTrackers},
	}

	for _, counter := range counters {
		group.Go(func() error {
			n, err := counter.count(groupCtx)
			if err != nil {
				return err
			}

			*counter.into = n

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}

	return &counts, nil
}
