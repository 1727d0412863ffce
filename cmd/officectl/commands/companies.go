package commands

import (
	"github.com/spf13/cobra"

	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
	"github.com/ashishkumar1990/laywer-client/pkg/officeclient"
)

var companyFields = []field[backoffice.CompanyRequest]{
	{flag: "name", usage: "company name", value: func(r *backoffice.CompanyRequest) *string { return &r.Name }},
	{flag: "code", usage: "short company code", value: func(r *backoffice.CompanyRequest) *string { return &r.Code }},
	{flag: "type", usage: "company type", value: func(r *backoffice.CompanyRequest) *string { return &r.Type }},
	{flag: "authorised-person", usage: "name of the authorised person", value: func(r *backoffice.CompanyRequest) *string { return &r.AuthorisedPersonName }},
	{flag: "email", usage: "contact email", value: func(r *backoffice.CompanyRequest) *string { return &r.Email }},
	{flag: "phone", usage: "contact phone number", value: func(r *backoffice.CompanyRequest) *string { return &r.PhoneNumber }},
	{flag: "registered-address", usage: "registered address", value: func(r *backoffice.CompanyRequest) *string { return &r.RegisteredAddress }},
	{flag: "regional-address", usage: "regional address", value: func(r *backoffice.CompanyRequest) *string { return &r.RegionalAddress }},
}

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	companies := &entity[backoffice.Company, backoffice.CompanyRequest, backoffice.CompanyRequest]{
		use:      "companies",
		aliases:  []string{"company"},
		singular: "company",
		plural:   "companies",
		client: func(c *officeclient.Client) crudClient[backoffice.Company, backoffice.CompanyRequest, backoffice.CompanyRequest] {
			return c.Companies()
		},
		headers: []string{"ID", "Name", "Code", "Type", "Email", "Phone"},
		row: func(c *backoffice.Company) []string {
			return []string{c.ID, c.Name, c.Code, orNA(c.Type), orNA(c.Email), orNA(c.PhoneNumber)}
		},
		details: []string{
			"ID", "Name", "Code", "Type", "Authorised Person", "Email", "Phone",
			"Registered Address", "Regional Address", "Created",
		},
		detailRow: func(c *backoffice.Company) []string {
			return []string{
				c.ID, c.Name, c.Code, c.Type, c.AuthorisedPersonName, c.Email, c.PhoneNumber,
				c.RegisteredAddress, c.RegionalAddress, c.CreatedAt,
			}
		},
		createFields: companyFields,
		updateFields: companyFields,
		editable: func(c *backoffice.Company) *backoffice.CompanyRequest {
			return &backoffice.CompanyRequest{
				Name:                 c.Name,
				Code:                 c.Code,
				Type:                 c.Type,
				AuthorisedPersonName: c.AuthorisedPersonName,
				Email:                c.Email,
				PhoneNumber:          c.PhoneNumber,
				RegisteredAddress:    c.RegisteredAddress,
				RegionalAddress:      c.RegionalAddress,
			}
		},
	}

	return companies.command()
}
