// Package forms decodes and validates the demo booking and newsletter forms.
package forms

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

const (
	maxName    = 100
	maxCompany = 120
	maxMessage = 2000
)

// Errors maps a field name to a user-facing message.
type Errors map[string]string

// Demo is a demo booking request.
type Demo struct {
	Name    string
	Email   string
	Company string
	Size    string
	Message string
}

// DemoFrom reads a demo request from submitted form values.
func DemoFrom(v url.Values) Demo {
	return Demo{
		Name:    strings.TrimSpace(v.Get("name")),
		Email:   strings.TrimSpace(v.Get("email")),
		Company: strings.TrimSpace(v.Get("company")),
		Size:    strings.TrimSpace(v.Get("size")),
		Message: strings.TrimSpace(v.Get("message")),
	}
}

// Validate returns the field errors of the request, or nil.
func (d Demo) Validate() Errors {
	errs := Errors{}
	switch {
	case d.Name == "":
		errs["name"] = "Please tell us your name."
	case len(d.Name) > maxName:
		errs["name"] = "Name is too long."
	}
	if msg := checkEmail(d.Email); msg != "" {
		errs["email"] = msg
	}
	switch {
	case d.Company == "":
		errs["company"] = "Please tell us your company."
	case len(d.Company) > maxCompany:
		errs["company"] = "Company name is too long."
	}
	if !slices.Contains(content.CompanySizes, d.Size) {
		errs["size"] = "Please pick a company size."
	}
	if len(d.Message) > maxMessage {
		errs["message"] = "Message is too long."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Signup is a newsletter subscription.
type Signup struct {
	Email string
}

// SignupFrom reads a newsletter signup from submitted form values.
func SignupFrom(v url.Values) Signup {
	return Signup{Email: strings.TrimSpace(v.Get("email"))}
}

// Validate returns the field errors of the signup, or nil.
func (s Signup) Validate() Errors {
	if msg := checkEmail(s.Email); msg != "" {
		return Errors{"email": msg}
	}
	return nil
}

func checkEmail(email string) string {
	if email == "" {
		return "Please enter your work email."
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "Please enter a valid email address."
	}
	return ""
}
