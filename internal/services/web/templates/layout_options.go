package templates

import (
	"time"

	module "github.com/mindpath/mindpath/internal/services/web/module"
)

// LayoutOptions configures the shared page shell.
type LayoutOptions struct {
	Title           string
	MetaDescription string
	Lang            string
	Loc             Localizer
	Viewer          module.Viewer
	Toast           *Toast
	Redirect        *Redirect
	MainClass       string
}

// Toast is a one-time notice shown above the page content.
type Toast struct {
	Kind    string
	Message string
}

// Redirect asks the browser to navigate to URL after Delay.
type Redirect struct {
	URL   string
	Delay time.Duration
}
