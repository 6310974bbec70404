package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

// SignInView carries sign-in form state.
type SignInView struct {
	Loc     Localizer
	Email   string
	Next    string
	Error   string
	Success string
}

// SignUpView carries sign-up form state.
type SignUpView struct {
	Loc      Localizer
	Email    string
	Username string
	Error    string
	Success  string
}

type authField struct {
	id           string
	inputType    string
	labelKey     string
	placeholder  string
	value        string
	autocomplete string
}

// SignInForm renders the sign-in card.
func SignInForm(view SignInView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := view.Loc
		writeAuthHeader(h, loc, "signin.heading", "signin.subheading", view.Error, view.Success)
		h.raw(`<form class="auth-form" method="post" data-pending-form`)
		h.attr("action", routepath.SignIn)
		h.raw(">")
		if view.Next != "" {
			h.raw(`<input type="hidden"`)
			h.attr("name", routepath.NextQueryKey)
			h.attr("value", view.Next)
			h.raw(">")
		}
		writeAuthField(h, loc, authField{id: "email", inputType: "email", labelKey: "auth.email", placeholder: "auth.email_placeholder", value: view.Email, autocomplete: "email"})
		writeAuthField(h, loc, authField{id: "password", inputType: "password", labelKey: "auth.password", placeholder: "auth.password_placeholder", autocomplete: "current-password"})
		writeSubmit(h, T(loc, "signin.submit"), T(loc, "signin.pending"), "btn btn-primary btn-block")
		h.raw("</form>")
		writeAuthSwitch(h, T(loc, "signin.no_account"), routepath.SignUp, T(loc, "signin.sign_up_link"))
		h.raw("</section>")
		return h.err
	})
}

// SignUpForm renders the sign-up card.
func SignUpForm(view SignUpView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := view.Loc
		writeAuthHeader(h, loc, "signup.heading", "signup.subheading", view.Error, view.Success)
		h.raw(`<form class="auth-form" method="post" data-pending-form`)
		h.attr("action", routepath.SignUp)
		h.raw(">")
		writeAuthField(h, loc, authField{id: "email", inputType: "email", labelKey: "auth.email", placeholder: "auth.email_placeholder", value: view.Email, autocomplete: "email"})
		writeAuthField(h, loc, authField{id: "username", inputType: "text", labelKey: "auth.username", placeholder: "auth.username_placeholder", value: view.Username, autocomplete: "username"})
		writeAuthField(h, loc, authField{id: "password", inputType: "password", labelKey: "auth.password", placeholder: "auth.password_placeholder", autocomplete: "new-password"})
		writeSubmit(h, T(loc, "signup.submit"), T(loc, "signup.pending"), "btn btn-primary btn-block")
		h.raw("</form>")
		writeAuthSwitch(h, T(loc, "signup.have_account"), routepath.SignIn, T(loc, "signup.sign_in_link"))
		h.raw("</section>")
		return h.err
	})
}

// writeAuthHeader opens the auth card; callers close the section.
func writeAuthHeader(h *htmlWriter, loc Localizer, headingKey, subheadingKey, errorText, successText string) {
	h.raw(`<section class="card auth-card">`)
	h.element("h1", "auth-title", T(loc, headingKey))
	h.element("p", "muted", T(loc, subheadingKey))
	if errorText != "" {
		writeAlert(h, "error", errorText)
	}
	if successText != "" {
		writeAlert(h, "success", successText)
	}
}

func writeAuthField(h *htmlWriter, loc Localizer, field authField) {
	h.raw(`<div class="field"><label`)
	h.attr("for", field.id)
	h.raw(">")
	h.text(T(loc, field.labelKey))
	h.raw("</label><input required")
	h.attr("id", field.id)
	h.attr("name", field.id)
	h.attr("type", field.inputType)
	h.attr("placeholder", T(loc, field.placeholder))
	h.attr("autocomplete", field.autocomplete)
	if field.value != "" {
		h.attr("value", field.value)
	}
	h.raw("></div>")
}

func writeSubmit(h *htmlWriter, label, pendingLabel, class string) {
	h.raw(`<button type="submit"`)
	h.attr("class", class)
	h.attr("data-pending-label", pendingLabel)
	h.raw(">")
	h.text(label)
	h.raw("</button>")
}

func writeAuthSwitch(h *htmlWriter, prompt, href, linkText string) {
	h.raw(`<p class="auth-switch">`)
	h.text(prompt)
	h.raw(` <a`)
	h.attr("href", href)
	h.raw(">")
	h.text(linkText)
	h.raw("</a></p>")
}
