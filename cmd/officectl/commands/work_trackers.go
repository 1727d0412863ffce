package commands

import (
	"github.com/spf13/cobra"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

var workTrackerFields = []field[backoffice.WorkTrackerRequest]{
	{flag: "entry-type", usage: "BULK or INDIVIDUAL", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.EntryType }},
	{flag: "allocation-date", usage: "date the work was allocated", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.AllocationDate }},
	{flag: "allocation-by", usage: "who allocated the work", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.AllocationBy }},
	{flag: "status", usage: "work status", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.Status }},
	{flag: "company-id", usage: "id of the company", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.CompanyID }},
	{flag: "case-id", usage: "id of the case type", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.CaseID }},
	{flag: "user-id", usage: "id of the assigned user", value: func(r *backoffice.WorkTrackerRequest) *string { return &r.UserID }},
}

// NewWorkTrackersCommand creates the work-trackers command group.
func NewWorkTrackersCommand() *cobra.Command {
	workTrackers := &entity[backoffice.WorkTracker, backoffice.WorkTrackerRequest, backoffice.WorkTrackerRequest]{
		use:      "work-trackers",
		aliases:  []string{"work-tracker", "work"},
		singular: "work tracker",
		plural:   "work trackers",
		client: func(c *officeclient.Client) crudClient[backoffice.WorkTracker, backoffice.WorkTrackerRequest, backoffice.WorkTrackerRequest] {
			return c.WorkTrackers()
		},
		headers: []string{"ID", "Entry Type", "Allocated", "By", "Status", "Company", "Case", "User"},
		row: func(w *backoffice.WorkTracker) []string {
			company, caseType, user := workTrackerLinks(w)

			return []string{w.ID, w.EntryType, w.AllocationDate, w.AllocationBy, w.Status, company, caseType, user}
		},
		createFields: workTrackerFields,
		updateFields: workTrackerFields,
		editable: func(w *backoffice.WorkTracker) *backoffice.WorkTrackerRequest {
			request := &backoffice.WorkTrackerRequest{
				ID:             w.ID,
				EntryType:      w.EntryType,
				AllocationDate: w.AllocationDate,
				AllocationBy:   w.AllocationBy,
				Status:         w.Status,
			}

			if w.Company != nil {
				request.CompanyID = w.Company.ID
			}

			if w.Case != nil {
				request.CaseID = w.Case.ID
			}

			if w.User != nil {
				request.UserID = w.User.ID
			}

			return request
		},
	}

	return workTrackers.command()
}

// workTrackerLinks names the linked company, case type and user.
func workTrackerLinks(w *backoffice.WorkTracker) (string, string, string) {
	company, caseType, user := "", "", ""

	if w.Company != nil {
		company = w.Company.Name
	}

	if w.Case != nil {
		caseType = w.Case.Name
	}

	if w.User != nil {
		user = w.User.Name
	}

	return orNA(company), orNA(caseType), orNA(user)
}
