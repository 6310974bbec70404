package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

const journalContentID = "journal-content"

// DashboardView is the rendered state of the dashboard page.
type DashboardView struct {
	Loc                Localizer
	DisplayName        string
	Chart              []ChartPoint
	AverageScore       string
	AveragePercent     int
	Emotion            string
	Advice             string
	Recent             []RecentEntry
	TotalEntries       int
	EntriesUnavailable bool
}

// RecentEntry is one row in the recent entries card.
type RecentEntry struct {
	Date    string
	Emotion string
	Score   int
	Preview string
}

var emotionClasses = map[string]string{
	"happy":      "emotion-happy",
	"sad":        "emotion-sad",
	"anxious":    "emotion-anxious",
	"hopeful":    "emotion-hopeful",
	"frustrated": "emotion-frustrated",
	"calm":       "emotion-calm",
	"motivated":  "emotion-motivated",
}

// EmotionBadgeClass returns the badge color class for an emotion label.
func EmotionBadgeClass(emotion string) string {
	if class, ok := emotionClasses[strings.ToLower(strings.TrimSpace(emotion))]; ok {
		return class
	}
	return "emotion-neutral"
}

// CapitalizeEmotion upper-cases the first letter of an emotion label.
func CapitalizeEmotion(emotion string) string {
	emotion = strings.TrimSpace(emotion)
	if emotion == "" {
		return ""
	}
	runes := []rune(emotion)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// DashboardPage renders the journal form, weekly chart and side cards.
func DashboardPage(view DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := view.Loc

		h.raw(`<div class="dashboard"><header class="dashboard-header"><div>`)
		h.element("h1", "dashboard-title", T(loc, "dashboard.heading"))
		welcome := T(loc, "dashboard.welcome")
		if name := strings.TrimSpace(view.DisplayName); name != "" {
			welcome += ", " + name
		}
		h.element("p", "muted", welcome)
		h.raw("</div>")
		writeSignOutForm(h, loc, "btn btn-outline")
		h.raw("</header>")
		if view.EntriesUnavailable {
			writeAlert(h, "warning", T(loc, "dashboard.entries_unavailable"))
		}

		h.raw(`<div class="dashboard-grid"><div class="dashboard-main">`)
		writeJournalCard(h, loc, view.TotalEntries > 0)
		writeWeeklyCard(ctx, h, view)
		h.raw(`</div><aside class="dashboard-side">`)
		if view.Emotion != "" {
			h.raw(`<section class="card">`)
			h.element("h2", "card-title", T(loc, "dashboard.emotion.title"))
			h.element("span", "badge badge-lg "+EmotionBadgeClass(view.Emotion), CapitalizeEmotion(view.Emotion))
			h.element("p", "muted small", T(loc, "dashboard.emotion.caption"))
			h.raw("</section>")
		}
		if view.Advice != "" {
			h.raw(`<section class="card card-advice">`)
			h.element("h2", "card-title", T(loc, "dashboard.advice.title"))
			h.element("p", "advice", view.Advice)
			h.raw("</section>")
		}
		writeRecentCard(h, loc, view.Recent)
		h.raw(`<section class="card">`)
		h.element("h2", "card-title", T(loc, "dashboard.progress.title"))
		h.raw(`<dl class="stats"><div class="stat">`)
		h.element("dt", "", T(loc, "dashboard.progress.total"))
		h.element("dd", "stat-value", strconv.Itoa(view.TotalEntries))
		h.raw(`</div><div class="stat">`)
		h.element("dt", "", T(loc, "dashboard.progress.week"))
		h.element("dd", "stat-value", T(loc, "dashboard.progress.week_value"))
		h.raw("</div></dl></section>")
		h.raw("</aside></div></div>")
		return h.err
	})
}

func writeJournalCard(h *htmlWriter, loc Localizer, hasEntries bool) {
	h.raw(`<section class="card" id="journal">`)
	h.element("h2", "card-title", T(loc, "dashboard.journal.title"))
	h.element("p", "muted", T(loc, "dashboard.journal.description"))
	h.raw(`<form class="journal-form" method="post" data-pending-form`)
	h.attr("action", routepath.DashboardEntries)
	h.raw(`><textarea name="content" rows="8"`)
	h.attr("id", journalContentID)
	h.attr("placeholder", T(loc, "dashboard.journal.placeholder"))
	h.attr("data-count-target", "journal-count")
	h.raw(`></textarea><div class="journal-actions"><span id="journal-count" class="muted small"`)
	zero := T(loc, "dashboard.journal.characters", 0)
	h.attr("data-count-suffix", strings.TrimPrefix(zero, "0"))
	h.raw(">")
	h.text(zero)
	h.raw(`</span><button type="submit" class="btn btn-primary"`)
	h.attr("data-pending-label", T(loc, "dashboard.saving"))
	h.attr("data-requires-content", journalContentID)
	h.raw(">")
	h.text(T(loc, "dashboard.save"))
	h.raw("</button></div></form>")
	h.raw(`<form class="inline-form" method="post" data-pending-form`)
	h.attr("action", routepath.DashboardWeeklyAnalysis)
	h.raw(`><button type="submit" class="btn btn-outline"`)
	h.attr("data-pending-label", T(loc, "dashboard.analyzing"))
	if !hasEntries {
		h.raw(" disabled")
	}
	h.raw(">")
	h.text(T(loc, "dashboard.analyze_week"))
	h.raw("</button></form></section>")
}

func writeWeeklyCard(ctx context.Context, h *htmlWriter, view DashboardView) {
	loc := view.Loc
	h.raw(`<section class="card" id="weekly">`)
	h.element("h2", "card-title", T(loc, "dashboard.chart.title"))
	h.element("p", "muted", T(loc, "dashboard.chart.description"))
	if len(view.Chart) == 0 {
		h.element("p", "empty-state", T(loc, "dashboard.chart.empty"))
	} else {
		h.component(ctx, EmotionChart(view.Chart, T(loc, "dashboard.chart.label")))
	}
	average := view.AverageScore
	if average == "" {
		average = "—"
	}
	h.raw(`<div class="average"><span>`)
	h.text(T(loc, "dashboard.chart.average"))
	h.raw(`</span> <strong>`)
	h.text(T(loc, "dashboard.chart.average_value", average))
	h.raw(`</strong><div class="progress" role="progressbar" aria-valuemin="0" aria-valuemax="100"`)
	h.attr("aria-valuenow", strconv.Itoa(view.AveragePercent))
	h.raw(`><div class="progress-bar"`)
	h.attr("style", "width: "+strconv.Itoa(view.AveragePercent)+"%")
	h.raw("></div></div></div></section>")
}

func writeRecentCard(h *htmlWriter, loc Localizer, entries []RecentEntry) {
	h.raw(`<section class="card">`)
	h.element("h2", "card-title", T(loc, "dashboard.recent.title"))
	if len(entries) == 0 {
		h.element("p", "empty-state", T(loc, "dashboard.recent.empty"))
		h.raw("</section>")
		return
	}
	h.raw(`<ul class="entries">`)
	for _, entry := range entries {
		h.raw(`<li class="entry"><div class="entry-meta">`)
		h.element("span", "muted small", entry.Date)
		if entry.Emotion != "" {
			h.element("span", "badge "+EmotionBadgeClass(entry.Emotion), CapitalizeEmotion(entry.Emotion))
		}
		h.raw("</div>")
		h.element("p", "entry-preview", entry.Preview)
		h.raw("</li>")
	}
	h.raw("</ul></section>")
}
