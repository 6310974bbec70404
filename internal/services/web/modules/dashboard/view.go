package dashboard

import (
	"math"
	"strconv"

	"github.com/mindpath/mindpath/internal/journalapi"
	webtemplates "github.com/mindpath/mindpath/internal/services/web/templates"
)

const (
	recentEntryLimit = 3
	previewRuneLimit = 100
)

func buildDashboardView(loc webtemplates.Localizer, data dashboardData) webtemplates.DashboardView {
	view := webtemplates.DashboardView{
		Loc:                loc,
		DisplayName:        data.DisplayName,
		TotalEntries:       len(data.Entries),
		EntriesUnavailable: data.EntriesUnavailable,
	}
	if data.Analysis != nil {
		view.Emotion = data.Analysis.Emotion
		view.Advice = data.Analysis.Advice
	}
	for _, point := range data.Weekly {
		view.Chart = append(view.Chart, webtemplates.ChartPoint{Label: point.Date, Emotion: point.Emotion, Score: point.Score})
	}
	if average, ok := averageScore(data.Weekly); ok {
		view.AverageScore = strconv.FormatFloat(average, 'f', 1, 64)
		view.AveragePercent = clampPercent(average)
	}
	for i, entry := range data.Entries {
		if i == recentEntryLimit {
			break
		}
		view.Recent = append(view.Recent, webtemplates.RecentEntry{
			Date:    entry.Date,
			Emotion: entry.Emotion,
			Score:   entry.EmotionScore,
			Preview: previewText(entry.Content),
		})
	}
	return view
}

func averageScore(points []journalapi.EmotionPoint) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	total := 0
	for _, point := range points {
		total += point.Score
	}
	return float64(total) / float64(len(points)), true
}

func clampPercent(value float64) int {
	rounded := int(math.Round(value))
	switch {
	case rounded < 0:
		return 0
	case rounded > 100:
		return 100
	default:
		return rounded
	}
}

// previewText keeps the first runes of content and always appends an ellipsis.
func previewText(content string) string {
	runes := []rune(content)
	if len(runes) > previewRuneLimit {
		runes = runes[:previewRuneLimit]
	}
	return string(runes) + "..."
}
