package commands

import (
	"github.com/spf13/cobra"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

var caseTypeFields = []field[backoffice.CaseTypeRequest]{
	{flag: "name", usage: "case type name", value: func(r *backoffice.CaseTypeRequest) *string { return &r.Name }},
	{flag: "description", usage: "what the case type covers", value: func(r *backoffice.CaseTypeRequest) *string { return &r.Description }},
}

// NewCaseTypesCommand creates the case-types command group.
func NewCaseTypesCommand() *cobra.Command {
	caseTypes := &entity[backoffice.CaseType, backoffice.CaseTypeRequest, backoffice.CaseTypeRequest]{
		use:      "case-types",
		aliases:  []string{"case-type", "cases"},
		singular: "case type",
		plural:   "case types",
		client: func(c *officeclient.Client) crudClient[backoffice.CaseType, backoffice.CaseTypeRequest, backoffice.CaseTypeRequest] {
			return c.CaseTypes()
		},
		headers: []string{"ID", "Name", "Description", "Created"},
		row: func(c *backoffice.CaseType) []string {
			return []string{c.ID, c.Name, orNA(c.Description), orNA(c.CreatedAt)}
		},
		createFields: caseTypeFields,
		updateFields: caseTypeFields,
		editable: func(c *backoffice.CaseType) *backoffice.CaseTypeRequest {
			return &backoffice.CaseTypeRequest{Name: c.Name, Description: c.Description}
		},
	}

	return caseTypes.command()
}
