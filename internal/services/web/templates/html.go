package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// element writes <tag class="class">text</tag>.
func (h *htmlWriter) element(tag, class, value string) {
	h.raw("<", tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(value)
	h.raw("</", tag, ">")
}

// children renders the component children carried by ctx.
func (h *htmlWriter) children(ctx context.Context) {
	children := templ.GetChildren(ctx)
	h.component(templ.ClearChildren(ctx), children)
}
