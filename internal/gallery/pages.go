package gallery

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/renderprop/pkg/render"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

const galleryStyles = `body { font-family: system-ui, sans-serif; margin: 2rem; }
.gallery-preview { border: 1px dashed #bbb; padding: 1rem; margin: 1rem 0; }
.gallery-error { color: #b00020; }
pre { background: #f6f6f6; padding: 1rem; overflow: auto; }`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	items := make([]any, 0)
	for _, name := range s.Names() {
		e, ok := s.lookup(name)
		if !ok {
			continue
		}
		items = append(items, vdom.Li(
			vdom.Key(name),
			vdom.A(vdom.Href("/fixtures/"+name), name),
			" ",
			vdom.Code(e.fixture.Variant),
			vdom.AttrIf(e.err != nil, vdom.ClassName("gallery-error")),
			description(e.fixture.Description),
		))
	}

	var list *vdom.VNode
	if len(items) == 0 {
		list = vdom.P("No fixtures in " + s.config.FixturesPath())
	} else {
		list = vdom.Ul(items...)
	}
	body := vdom.Main(vdom.H1("Fixtures"), list)
	s.writePage(w, "Fixtures", body)
}

func (s *Server) handleFixture(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	fragment := strings.HasSuffix(name, ".html")
	name = strings.TrimSuffix(name, ".html")

	e, ok := s.lookup(name)
	if !ok {
		http.Error(w, "no fixture named "+name, http.StatusNotFound)
		return
	}

	if fragment {
		s.writeFragment(w, e)
		return
	}

	preview := vdom.Section(vdom.ClassName("gallery-preview"), e.tree)
	if e.err != nil {
		preview = vdom.Section(vdom.ClassName("gallery-preview", "gallery-error"),
			vdom.CustomElement("pre", e.err.Error()))
	}

	source, err := e.fixture.Source()
	if err != nil {
		source = err.Error()
	}

	body := vdom.Main(
		vdom.Nav(vdom.A(vdom.Href("/"), "All fixtures")),
		vdom.H1(e.fixture.Name),
		description(e.fixture.Description),
		preview,
		vdom.H2("Source"),
		vdom.CustomElement("pre", vdom.Code(source)),
	)
	s.writePage(w, e.fixture.Name, body)
}

func (s *Server) writeFragment(w http.ResponseWriter, e *entry) {
	if e.err != nil {
		http.Error(w, e.err.Error(), http.StatusUnprocessableEntity)
		return
	}
	html, err := render.NewRenderer(s.rendererConfig()).RenderToString(e.tree)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *Server) writePage(w http.ResponseWriter, title string, body *vdom.VNode) {
	sr := render.NewStreamingRenderer(w, s.rendererConfig())
	err := sr.RenderPage(render.PageData{
		Body:    body,
		Title:   title,
		Styles:  []string{galleryStyles},
		Scripts: []render.ScriptTag{{Inline: reloadScript}},
	})
	if err != nil {
		s.logger.Error("page render failed", "title", title, "error", err)
	}
}

func (s *Server) rendererConfig() render.RendererConfig {
	return render.RendererConfig{Pretty: s.config.Gallery.Pretty}
}

func description(text string) *vdom.VNode {
	if text == "" {
		return nil
	}
	return vdom.P(text)
}
