package site

import (
	"log/slog"
	"net/http"

	"github.com/mchmarny/hrsite/pkg/session"
	"github.com/mchmarny/hrsite/pkg/site/components"
	"github.com/mchmarny/hrsite/pkg/site/content"
	"github.com/mchmarny/hrsite/pkg/site/forms"
)

const (
	formDemo       = "demo"
	formNewsletter = "newsletter"

	resultAccepted = "accepted"
	resultInvalid  = "invalid"
	resultLimited  = "limited"
)

// allowForm applies the visitor's form rate limit, rendering a 429 page
// when it is exceeded.
func (s *Site) allowForm(w http.ResponseWriter, r *http.Request, form string) bool {
	allowed := true
	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		allowed = ss.AllowForm()
	})
	if allowed {
		return true
	}

	s.submissions.Increment(form, resultLimited)
	s.page(w, r, http.StatusTooManyRequests, components.PageConfig{Title: "Too many requests - " + content.Company},
		components.Message("Please slow down", "You have sent several forms in a short time. Try again in a minute."),
	)
	return false
}

func (s *Site) demo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !s.allowForm(w, r, formDemo) {
		return
	}

	d := forms.DemoFrom(r.PostForm)
	if errs := d.Validate(); errs != nil {
		s.submissions.Increment(formDemo, resultInvalid)
		s.page(w, r, http.StatusUnprocessableEntity, components.PageConfig{Title: "Book a Demo - " + content.Company},
			components.DemoForm(d, errs),
		)
		return
	}

	s.submissions.Increment(formDemo, resultAccepted)
	slog.Info("demo requested",
		"company", d.Company,
		"size", d.Size,
		"session", session.FromContext(r.Context()).ID,
	)

	s.page(w, r, http.StatusOK, components.PageConfig{Title: "Thank you - " + content.Company},
		components.Message("Thanks, "+d.Name+"!", "A product specialist will email you within one business day to schedule your demo."),
	)
}

func (s *Site) newsletter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !s.allowForm(w, r, formNewsletter) {
		return
	}

	sub := forms.SignupFrom(r.PostForm)
	if errs := sub.Validate(); errs != nil {
		s.submissions.Increment(formNewsletter, resultInvalid)
		s.page(w, r, http.StatusUnprocessableEntity, components.PageConfig{Title: "Newsletter - " + content.Company},
			components.NewsletterSignup(sub, errs),
		)
		return
	}

	s.submissions.Increment(formNewsletter, resultAccepted)
	slog.Info("newsletter signup", "session", session.FromContext(r.Context()).ID)

	s.page(w, r, http.StatusOK, components.PageConfig{Title: "Subscribed - " + content.Company},
		components.Message("You're subscribed", "Look out for our next issue at the start of the month."),
	)
}
