package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRaw() map[string]string {
	return map[string]string{
		FieldCountry:       "Canada",
		FieldAccountType:   "Team Member",
		FieldUsername:      "jdoe",
		FieldFirstName:     "Jane",
		FieldLastName:      "Doe",
		FieldEmail:         "jane@x.com",
		FieldContactNumber: "555-0100",
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	fields, errs := ValidateRecord(validRaw())
	require.Nil(t, errs)
	require.Equal(t, "Canada", fields.Country)
	require.Equal(t, "Team Member", fields.AccountType)
	require.Equal(t, "jdoe", fields.Username)
	require.Equal(t, "Jane", fields.FirstName)
	require.Equal(t, "Doe", fields.LastName)
	require.Equal(t, "jane@x.com", fields.Email)
	require.Equal(t, "555-0100", fields.ContactNumber)
	require.Nil(t, fields.PhotoURL)
}

func TestValidateRecord_RequiredFields(t *testing.T) {
	tests := []struct {
		field   string
		message string
	}{
		{FieldCountry, "Country is required"},
		{FieldAccountType, "Account type is required"},
		{FieldUsername, "Username is required"},
		{FieldFirstName, "First name is required"},
		{FieldLastName, "Last name is required"},
		{FieldEmail, "Email is required"},
		{FieldContactNumber, "Contact number is required"},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			raw := validRaw()
			raw[tc.field] = "   "
			_, errs := ValidateRecord(raw)
			require.Len(t, errs, 1)
			require.Equal(t, tc.message, errs[tc.field])
		})
	}
}

func TestValidateRecord_InvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@x.com"} {
		raw := validRaw()
		raw[FieldEmail] = email
		_, errs := ValidateRecord(raw)
		require.Equal(t, map[string]string{FieldEmail: "Invalid email address"}, errs, "email %q", email)
	}
}

func TestValidateRecord_ContactNumberNotNumericChecked(t *testing.T) {
	// Contact numbers are stored as text; "ext. 12" style values pass
	raw := validRaw()
	raw[FieldContactNumber] = "555-0100 ext. 12"
	_, errs := ValidateRecord(raw)
	require.Nil(t, errs)
}

func TestValidateRecord_AccountTypeNotEnumChecked(t *testing.T) {
	// The enumeration is a UI constraint; the server accepts any non-empty value
	raw := validRaw()
	raw[FieldAccountType] = "Contractor"
	fields, errs := ValidateRecord(raw)
	require.Nil(t, errs)
	require.Equal(t, "Contractor", fields.AccountType)
}

func TestValidateRecord_TrimsWhitespace(t *testing.T) {
	raw := validRaw()
	raw[FieldUsername] = "  jdoe  "
	fields, errs := ValidateRecord(raw)
	require.Nil(t, errs)
	require.Equal(t, "jdoe", fields.Username)
}

func TestValidateRecord_MultipleErrors(t *testing.T) {
	_, errs := ValidateRecord(map[string]string{})
	require.Len(t, errs, 7)
}

func TestUsablePhoto(t *testing.T) {
	require.True(t, UsablePhoto("avatar.png", 1))
	require.False(t, UsablePhoto("avatar.png", 0))
	require.False(t, UsablePhoto("", 100))
	require.False(t, UsablePhoto("   ", 100))
}
