package render

import (
	"io"
	"net/http"
)

// StreamingRenderer writes pages to an HTTP response and flushes after
// the head, the body, and the closing scripts, so the browser can start
// on the head while the fixture tree is still being written.
type StreamingRenderer struct {
	r  *Renderer
	w  http.ResponseWriter
	rc *http.ResponseController
}

// NewStreamingRenderer creates a streaming renderer for w.
func NewStreamingRenderer(w http.ResponseWriter, config RendererConfig) *StreamingRenderer {
	return &StreamingRenderer{
		r:  NewRenderer(config),
		w:  w,
		rc: http.NewResponseController(w),
	}
}

// RenderPage writes page as a complete document. It sets an HTML content
// type unless the handler already chose one.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	if s.w.Header().Get("Content-Type") == "" {
		s.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	parts := []func(io.Writer, PageData) error{s.r.renderHead, s.r.renderBody, s.r.renderTail}
	for _, part := range parts {
		if err := part(s.w, page); err != nil {
			return err
		}
		// Writers that cannot flush still get the full page.
		_ = s.rc.Flush()
	}
	return nil
}
