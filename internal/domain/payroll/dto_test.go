package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

func TestCreateRequestNetSalary(t *testing.T) {
	req := CreateRequest{
		BasicSalary: 5000,
		Allowances:  750.50,
		Deductions:  320.25,
	}
	assert.Equal(t, 5430.25, req.NetSalary())

	// Deductions may exceed the basic salary
	req = CreateRequest{BasicSalary: 100, Deductions: 250}
	assert.Equal(t, -150.0, req.NetSalary())
}

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{
		UserID:      "8f9c7a1e-0000-0000-0000-000000000000",
		Month:       "2025-06",
		BasicSalary: 5000,
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   CreateRequest
		field string
	}{
		{"missing user", CreateRequest{Month: "2025-06", BasicSalary: 1}, "user_id"},
		{"bad month", CreateRequest{UserID: "x", Month: "June 2025", BasicSalary: 1}, "month"},
		{"negative basic", CreateRequest{UserID: "x", Month: "2025-06", BasicSalary: -1}, "basic_salary"},
		{"negative allowances", CreateRequest{UserID: "x", Month: "2025-06", Allowances: -1}, "allowances"},
		{"negative deductions", CreateRequest{UserID: "x", Month: "2025-06", Deductions: -1}, "deductions"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			assert.Error(t, err)

			var errs validator.ValidationErrors
			assert.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}
