package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDemo() url.Values {
	return url.Values{
		"name":    {" Asha Rao "},
		"email":   {"asha@acme.example"},
		"company": {"Acme"},
		"size":    {"51-200"},
		"message": {"We run payroll in two countries."},
	}
}

func TestDemoFrom(t *testing.T) {
	d := DemoFrom(validDemo())
	assert.Equal(t, "Asha Rao", d.Name)
	assert.Equal(t, "51-200", d.Size)
	assert.Nil(t, d.Validate())
}

func TestDemoValidate(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"missing name", "name", ""},
		{"long name", "name", string(make([]byte, maxName+1))},
		{"missing email", "email", ""},
		{"bad email", "email", "asha@"},
		{"display name email", "email", "Asha <asha@acme.example>"},
		{"email without domain dot", "email", "asha@localhost"},
		{"missing company", "company", ""},
		{"unknown size", "size", "huge"},
		{"long message", "message", string(make([]byte, maxMessage+1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validDemo()
			v.Set(tt.field, tt.value)
			d := DemoFrom(v)
			// DemoFrom trims, so build the oversized values directly.
			switch tt.field {
			case "name":
				d.Name = tt.value
			case "message":
				d.Message = tt.value
			}
			errs := d.Validate()
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}
}

func TestSignupValidate(t *testing.T) {
	assert.Nil(t, SignupFrom(url.Values{"email": {"ravi@acme.example"}}).Validate())
	assert.Contains(t, SignupFrom(url.Values{}).Validate(), "email")
	assert.Contains(t, SignupFrom(url.Values{"email": {"not-an-email"}}).Validate(), "email")
}
