package render

import (
	"io"

	"github.com/vango-dev/renderprop/pkg/vdom"
)

// PageData is a full HTML document wrapped around Body.
type PageData struct {
	Body  *vdom.VNode
	Title string
	Lang  string // defaults to "en"

	StyleSheets []string // linked in the head
	Styles      []string // inlined in the head
	Scripts     []ScriptTag
}

// ScriptTag is a <script> written at the end of the body. Inline is
// written unescaped.
type ScriptTag struct {
	Src    string
	Module bool
	Defer  bool
	Inline string
}

// RenderPage writes page as a complete document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	for _, part := range []func(io.Writer, PageData) error{r.renderHead, r.renderBody, r.renderTail} {
		if err := part(w, page); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	h := &htmlWriter{w: w, cfg: &r.config}
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	h.str("<!DOCTYPE html>\n<html lang=\"" + escapeAttr(lang) + "\">\n<head>\n")
	h.str("  <meta charset=\"utf-8\">\n")
	h.str("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		h.str("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}
	for _, href := range page.StyleSheets {
		h.str("  <link rel=\"stylesheet\" href=\"" + escapeAttr(href) + "\">\n")
	}
	for _, css := range page.Styles {
		h.str("  <style>" + css + "</style>\n")
	}
	h.str("</head>\n")
	return h.err
}

func (r *Renderer) renderBody(w io.Writer, page PageData) error {
	h := &htmlWriter{w: w, cfg: &r.config}
	h.str("<body>\n")
	h.node(page.Body, 0)
	if !r.config.Pretty && page.Body != nil {
		h.str("\n")
	}
	return h.err
}

func (r *Renderer) renderTail(w io.Writer, page PageData) error {
	h := &htmlWriter{w: w, cfg: &r.config}
	for _, s := range page.Scripts {
		h.str("  <script")
		if s.Src != "" {
			h.str(` src="` + escapeAttr(s.Src) + `"`)
		}
		if s.Module {
			h.str(` type="module"`)
		}
		if s.Defer {
			h.str(" defer")
		}
		h.str(">" + s.Inline + "</script>\n")
	}
	h.str("</body>\n</html>\n")
	return h.err
}
