package client

import (
	"github.com/ashishkumar1990/laywer-client/internal/rest"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// CaseTypesClient implements backoffice.CaseTypesClient.
type CaseTypesClient = Resource[backoffice.CaseType, *backoffice.CaseTypeRequest, *backoffice.CaseTypeRequest]

var _ backoffice.CaseTypesClient = (*CaseTypesClient)(nil)

// NewCaseTypesClient creates a new case types client.
func NewCaseTypesClient(restClient *rest.Client) *CaseTypesClient {
	return newResource[backoffice.CaseType, *backoffice.CaseTypeRequest, *backoffice.CaseTypeRequest](restClient, "/caseTypes", "case type", "case types")
}
