package client

import (
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// WorkTrackersClient implements backoffice.WorkTrackersClient.
type WorkTrackersClient = Resource[backoffice.WorkTracker, *backoffice.WorkTrackerRequest, *backoffice.WorkTrackerRequest]

var _ backoffice.WorkTrackersClient = (*WorkTrackersClient)(nil)

// NewWorkTrackersClient creates a new work trackers client. The work
// tracker collection is singular on the server.
func NewWorkTrackersClient(restClient *rest.Client) *WorkTrackersClient {
	return newResource[backoffice.WorkTracker, *backoffice.WorkTrackerRequest, *backoffice.WorkTrackerRequest](restClient, "/workTracker", "work tracker", "work trackers")
}
