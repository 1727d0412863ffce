package client

import (
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// CompaniesClient implements backoffice.CompaniesClient.
type CompaniesClient = Resource[backoffice.Company, *backoffice.CompanyRequest, *backoffice.CompanyRequest]

var _ backoffice.CompaniesClient = (*CompaniesClient)(nil)

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(restClient *rest.Client) *CompaniesClient {
	return newResource[backoffice.Company, *backoffice.CompanyRequest, *backoffice.CompanyRequest](restClient, "/companies", "company", "companies")
}
