package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
)

func TestParseDocumentStatus(t *testing.T) {
	cases := []struct {
		in   string
		want DocumentStatus
		ok   bool
	}{
		{in: "approved", want: DocumentApproved, ok: true},
		{in: " Rejected ", want: DocumentRejected, ok: true},
		{in: "removed", want: DocumentRemoved, ok: true},
		{in: "pending", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseDocumentStatus(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseCriterionStatus(t *testing.T) {
	cases := []struct {
		in   string
		want CriterionStatus
		ok   bool
	}{
		{in: "fixed", want: CriterionFixed, ok: true},
		{in: "REJECTED", want: CriterionRejected, ok: true},
		{in: "approved", ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseCriterionStatus(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestCreateUserInput_Validate(t *testing.T) {
	valid := CreateUserInput{Login: "dev1", Password: "pw", Role: auth.RoleDeveloper}
	assert.NoError(t, valid.Validate())

	missingLogin := valid
	missingLogin.Login = ""
	assert.Error(t, missingLogin.Validate())

	missingPassword := valid
	missingPassword.Password = ""
	assert.Error(t, missingPassword.Validate())

	badRole := valid
	badRole.Role = "auditor"
	assert.Error(t, badRole.Validate())
}

func TestCreateUserInput_Normalize(t *testing.T) {
	in := CreateUserInput{Login: "  dev1 ", FullName: " Dev One "}
	in.Normalize()
	assert.Equal(t, "dev1", in.Login)
	assert.Equal(t, "Dev One", in.FullName)
}
