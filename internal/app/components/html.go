// Package components holds the shared HTML building blocks of the UI.
package components

import (
	"context"
	"io"
	"slices"
	"strconv"

	"github.com/a-h/templ"
)

// Attrs are extra HTML attributes. Keys render sorted so output is stable.
type Attrs map[string]string

// HTML writes markup and keeps the first write error.
type HTML struct {
	ctx context.Context
	w   io.Writer
	err error
}

// Component adapts a markup function into a templ component.
func Component(fn func(h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &HTML{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// Raw writes trusted markup as is.
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes escaped text content.
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (h *HTML) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// URLAttr writes a URL attribute, replacing unsafe schemes.
func (h *HTML) URLAttr(name, value string) {
	h.Attr(name, string(templ.URL(value)))
}

// Attrs writes every attribute in key order.
func (h *HTML) Attrs(a Attrs) {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		h.Attr(k, a[k])
	}
}

// Int writes an integer as text.
func (h *HTML) Int(n int) {
	h.Raw(strconv.Itoa(n))
}

// Render writes a nested component.
func (h *HTML) Render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}
