package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ChartPoint is one plotted emotion score.
type ChartPoint struct {
	Label   string
	Emotion string
	Score   int
}

const (
	chartWidth   = 600
	chartHeight  = 240
	chartPadX    = 40
	chartPadTop  = 16
	chartPadBot  = 32
	chartMaxTick = 100
)

// EmotionChart renders points as an SVG line chart on a 0-100 scale.
func EmotionChart(points []ChartPoint, label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<svg class="chart" role="img" viewBox="0 0 `, strconv.Itoa(chartWidth), " ", strconv.Itoa(chartHeight), `"`)
		h.attr("aria-label", label)
		h.raw(">")
		for tick := 0; tick <= chartMaxTick; tick += 25 {
			y := chartY(tick)
			h.raw(`<line class="chart-grid" x1="`, strconv.Itoa(chartPadX), `" x2="`, strconv.Itoa(chartWidth-chartPadX), `" y1="`, y, `" y2="`, y, `"></line>`)
			h.raw(`<text class="chart-tick" x="`, strconv.Itoa(chartPadX-8), `" y="`, y, `" text-anchor="end" dominant-baseline="middle">`, strconv.Itoa(tick), "</text>")
		}
		coords := make([]string, len(points))
		for i, point := range points {
			coords[i] = chartX(i, len(points)) + "," + chartY(point.Score)
		}
		if len(points) > 1 {
			h.raw(`<polyline class="chart-line" fill="none" points="`)
			for i, coord := range coords {
				if i > 0 {
					h.raw(" ")
				}
				h.raw(coord)
			}
			h.raw(`"></polyline>`)
		}
		for i, point := range points {
			x := chartX(i, len(points))
			h.raw(`<circle class="chart-point" r="5" cx="`, x, `" cy="`, chartY(point.Score), `"><title>`)
			title := point.Label + ": " + strconv.Itoa(point.Score)
			if point.Emotion != "" {
				title += " (" + point.Emotion + ")"
			}
			h.text(title)
			h.raw("</title></circle>")
			h.raw(`<text class="chart-label" text-anchor="middle" x="`, x, `" y="`, strconv.Itoa(chartHeight-8), `">`)
			h.text(point.Label)
			h.raw("</text>")
		}
		h.raw("</svg>")
		return h.err
	})
}

func chartX(index, count int) string {
	plotWidth := chartWidth - 2*chartPadX
	if count <= 1 {
		return strconv.Itoa(chartPadX + plotWidth/2)
	}
	return strconv.Itoa(chartPadX + index*plotWidth/(count-1))
}

func chartY(score int) string {
	if score < 0 {
		score = 0
	}
	if score > chartMaxTick {
		score = chartMaxTick
	}
	plotHeight := chartHeight - chartPadTop - chartPadBot
	return strconv.Itoa(chartPadTop + (chartMaxTick-score)*plotHeight/chartMaxTick)
}
