package backoffice

import (
	"net/mail"
	"sort"
	"strings"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
)

// Entry types accepted by the work tracker.
const (
	EntryTypeBulk       = "BULK"
	EntryTypeIndividual = "INDIVIDUAL"
)

// MinPasswordLength is the shortest password accepted when creating users.
const MinPasswordLength = 6

// User represents a back-office user account.
type User struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Email       string `json:"email"                 yaml:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phone_number,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
}

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	Name     string `json:"name"     yaml:"name"`
	Email    string `json:"email"    yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// UserUpdateRequest is the payload for updating a user.
type UserUpdateRequest struct {
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Company represents a client company of the office.
type Company struct {
	ID                   string `json:"id"                   yaml:"id"`
	Name                 string `json:"name"                 yaml:"name"`
	Code                 string `json:"code"                 yaml:"code"`
	Type                 string `json:"type"                 yaml:"type"`
	AuthorisedPersonName string `json:"authorisedPersonName" yaml:"authorised_person_name"`
	Email                string `json:"email"                yaml:"email"`
	PhoneNumber          string `json:"phoneNumber"          yaml:"phone_number"`
	RegisteredAddress    string `json:"registeredAddress"    yaml:"registered_address"`
	RegionalAddress      string `json:"regionalAddress"      yaml:"regional_address"`
	CreatedAt            string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// CompanyRequest is the payload for creating or updating a company.
type CompanyRequest struct {
	Name                 string `json:"name"                           yaml:"name"`
	Code                 string `json:"code"                           yaml:"code"`
	Type                 string `json:"type,omitempty"                 yaml:"type,omitempty"`
	AuthorisedPersonName string `json:"authorisedPersonName,omitempty" yaml:"authorised_person_name,omitempty"`
	Email                string `json:"email,omitempty"                yaml:"email,omitempty"`
	PhoneNumber          string `json:"phoneNumber,omitempty"          yaml:"phone_number,omitempty"`
	RegisteredAddress    string `json:"registeredAddress,omitempty"    yaml:"registered_address,omitempty"`
	RegionalAddress      string `json:"regionalAddress,omitempty"      yaml:"regional_address,omitempty"`
}

// CaseType represents a category of legal case.
type CaseType struct {
	ID          string `json:"id"                   yaml:"id"`
	Name        string `json:"name"                 yaml:"name"`
	Description string `json:"description"          yaml:"description"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// CaseTypeRequest is the payload for creating or updating a case type.
type CaseTypeRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// WorkTracker links a company, a case type and a user for a piece of work.
type WorkTracker struct {
	ID             string    `json:"id"                   yaml:"id"`
	EntryType      string    `json:"entryType"            yaml:"entry_type"`
	AllocationDate string    `json:"allocationDate"       yaml:"allocation_date"`
	AllocationBy   string    `json:"allocationBy"         yaml:"allocation_by"`
	Status         string    `json:"status"               yaml:"status"`
	Company        *Company  `json:"companies,omitempty"  yaml:"company,omitempty"`
	Case           *CaseType `json:"cases,omitempty"      yaml:"case,omitempty"`
	User           *User     `json:"users,omitempty"      yaml:"user,omitempty"`
	CreatedAt      string    `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// WorkTrackerRequest is the payload for creating or updating a work tracker.
type WorkTrackerRequest struct {
	ID             string `json:"id,omitempty"   yaml:"id,omitempty"`
	EntryType      string `json:"entryType"      yaml:"entry_type"`
	AllocationDate string `json:"allocationDate" yaml:"allocation_date"`
	AllocationBy   string `json:"allocationBy"   yaml:"allocation_by"`
	Status         string `json:"status"         yaml:"status"`
	CompanyID      string `json:"companyId"      yaml:"company_id"`
	CaseID         string `json:"caseId"         yaml:"case_id"`
	UserID         string `json:"userId"         yaml:"user_id"`
}

// RegisterRequest is the payload of /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    yaml:"email"`
	Name     string `json:"name"     yaml:"name"`
	Password string `json:"password" yaml:"password"`
}

// LoginRequest is the payload of /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// Counts summarises how many records of each entity exist.
type Counts struct {
	Users        int `json:"users"         yaml:"users"`
	Companies    int `json:"companies"     yaml:"companies"`
	CaseTypes    int `json:"case_types"    yaml:"case_types"`
	WorkTrackers int `json:"work_trackers" yaml:"work_trackers"`
}

// Validate checks the fields the user form requires.
func (r *UserCreateRequest) Validate() error {
	err := requireFields(map[string]string{"name": r.Name, "email": r.Email, "password": r.Password})
	if err != nil {
		return err
	}

	err = validateEmail(r.Email)
	if err != nil {
		return err
	}

	if len(r.Password) < MinPasswordLength {
		return &ValidationError{Field: "password", Message: "Minimum 6 characters"}
	}

	return nil
}

// Validate checks the fields the user form requires.
func (r *UserUpdateRequest) Validate() error {
	if r.Email == "" {
		return nil
	}

	return validateEmail(r.Email)
}

// Validate checks the fields the company form requires.
func (r *CompanyRequest) Validate() error {
	err := requireFields(map[string]string{"name": r.Name, "code": r.Code})
	if err != nil {
		return err
	}

	if r.Email != "" {
		return validateEmail(r.Email)
	}

	return nil
}

// Validate checks the fields the case type form requires.
func (r *CaseTypeRequest) Validate() error {
	return requireFields(map[string]string{"name": r.Name})
}

// Validate checks the fields the work tracker form requires.
func (r *WorkTrackerRequest) Validate() error {
	err := requireFields(map[string]string{
		"entryType":      r.EntryType,
		"allocationDate": r.AllocationDate,
		"allocationBy":   r.AllocationBy,
		"status":         r.Status,
		"companyId":      r.CompanyID,
		"caseId":         r.CaseID,
		"userId":         r.UserID,
	})
	if err != nil {
		return err
	}

	if r.EntryType != EntryTypeBulk && r.EntryType != EntryTypeIndividual {
		return &ValidationError{Field: "entryType", Message: "Invalid entry type"}
	}

	return nil
}

// Validate checks the fields the register page requires.
func (r *RegisterRequest) Validate() error {
	err := requireFields(map[string]string{"email": r.Email, "name": r.Name, "password": r.Password})
	if err != nil {
		return err
	}

	return validateEmail(r.Email)
}

// Validate checks the fields the login page requires.
func (r *LoginRequest) Validate() error {
	err := requireFields(map[string]string{"email": r.Email, "password": r.Password})
	if err != nil {
		return err
	}

	return validateEmail(r.Email)
}

func requireFields(fields map[string]string) error {
	var missing []string

	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)

	return &ValidationError{Fields: missing, Message: constants.MessageAllFieldsMandatory}
}

func validateEmail(email string) error {
	_, err := mail.ParseAddress(email)
	if err != nil {
		return &ValidationError{Field: "email", Message: "Invalid email"}
	}

	return nil
}
