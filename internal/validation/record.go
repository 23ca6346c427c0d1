package validation

import (
	"regexp"
	"strings"

	"teamroster/internal/model"
)

// Form field names, shared with the HTTP handlers
const (
	FieldCountry       = "country"
	FieldAccountType   = "accountType"
	FieldUsername      = "username"
	FieldFirstName     = "firstName"
	FieldLastName      = "lastName"
	FieldEmail         = "email"
	FieldContactNumber = "contactNumber"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRecord checks a raw field name -> value mapping and returns either
// the typed mutable fields of a record or a field -> first error message map.
// Pure function, no side effects; photoUrl is resolved by the caller.
func ValidateRecord(raw map[string]string) (model.RecordFields, map[string]string) {
	errs := map[string]string{}

	country := strings.TrimSpace(raw[FieldCountry])
	if country == "" {
		errs[FieldCountry] = "Country is required"
	}

	accountType := strings.TrimSpace(raw[FieldAccountType])
	if accountType == "" {
		errs[FieldAccountType] = "Account type is required"
	}

	username := strings.TrimSpace(raw[FieldUsername])
	if username == "" {
		errs[FieldUsername] = "Username is required"
	}

	firstName := strings.TrimSpace(raw[FieldFirstName])
	if firstName == "" {
		errs[FieldFirstName] = "First name is required"
	}

	lastName := strings.TrimSpace(raw[FieldLastName])
	if lastName == "" {
		errs[FieldLastName] = "Last name is required"
	}

	email := strings.TrimSpace(raw[FieldEmail])
	if email == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailRegex.MatchString(email) {
		errs[FieldEmail] = "Invalid email address"
	}

	// Stored as text; no numeric-format check is applied
	contactNumber := strings.TrimSpace(raw[FieldContactNumber])
	if contactNumber == "" {
		errs[FieldContactNumber] = "Contact number is required"
	}

	if len(errs) > 0 {
		return model.RecordFields{}, errs
	}

	return model.RecordFields{
		Country:       country,
		AccountType:   accountType,
		Username:      username,
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		ContactNumber: contactNumber,
	}, nil
}

// UsablePhoto reports whether an uploaded photo payload can be stored:
// it needs a non-empty name and at least one byte of content.
// Anything else is silently ignored, not an error.
func UsablePhoto(name string, size int64) bool {
	return strings.TrimSpace(name) != "" && size > 0
}
