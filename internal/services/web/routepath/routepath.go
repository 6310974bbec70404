// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                    = "/"
	SignIn                  = "/signin"
	SignUp                  = "/signup"
	Logout                  = "/logout"
	Health                  = "/up"
	LegacyDashboard         = "/dashboard"
	StaticPrefix            = "/static/"
	AppPrefix               = "/app/"
	AppDashboard            = "/app/dashboard"
	DashboardPrefix         = "/app/dashboard/"
	DashboardEntries        = "/app/dashboard/entries"
	DashboardWeeklyAnalysis = "/app/dashboard/weekly-analysis"
	NextQueryKey            = "next"
)

// Landing section anchors.
const (
	AnchorFeatures = "#features"
	AnchorHowTo    = "#how-to-use"
	AnchorAbout    = "#about"
)

// SignInWithNext returns the sign-in route that returns to next after
// authentication. Unsafe targets are dropped.
func SignInWithNext(next string) string {
	next, ok := LocalAppPath(next)
	if !ok || next == AppDashboard {
		return SignIn
	}
	return SignIn + "?" + NextQueryKey + "=" + url.QueryEscape(next)
}

// LocalAppPath reports whether raw is a same-site path under the app prefix
// and returns it cleaned of scheme or host parts.
func LocalAppPath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return "", false
	}
	if parsed.Path != strings.TrimSuffix(AppPrefix, "/") && !strings.HasPrefix(parsed.Path, AppPrefix) {
		return "", false
	}
	if strings.Contains(parsed.Path, "/../") || strings.HasSuffix(parsed.Path, "/..") {
		return "", false
	}
	out := parsed.Path
	if parsed.RawQuery != "" {
		out += "?" + parsed.RawQuery
	}
	return out, true
}
