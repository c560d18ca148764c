package gallery

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/renderprop/internal/config"
	"github.com/vango-dev/renderprop/internal/errors"
)

const cardFixture = `name: card
description: A plain card.
base:
  className: card
props:
  children: hi
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFixture(t *testing.T, dir, file, src string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "card.yaml", cardFixture)

	cfg := config.Default()
	cfg.Fixtures = dir
	s, err := New(context.Background(), Options{Config: cfg, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		path     string
		status   int
		contains []string
	}{
		{"/", http.StatusOK, []string{`<a href="/fixtures/card">card</a>`, "<p>A plain card.</p>"}},
		{"/fixtures/card", http.StatusOK, []string{
			`<section class="gallery-preview"><div class="card">hi</div></section>`,
			"/_gallery/reload",
			"className: card",
		}},
		{"/fixtures/card.html", http.StatusOK, []string{`<div class="card">hi</div>`}},
		{"/fixtures/nope", http.StatusNotFound, nil},
		{"/metrics", http.StatusOK, []string{"renderprop_renders_total"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			body := rec.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}

func TestFragmentIsExact(t *testing.T) {
	s, _ := newTestServer(t)
	if got := get(t, s, "/fixtures/card.html").Body.String(); got != `<div class="card">hi</div>` {
		t.Errorf("fragment = %s", got)
	}
}

func TestNewMissingDir(t *testing.T) {
	cfg := config.Default()
	cfg.Fixtures = filepath.Join(t.TempDir(), "absent")
	if _, err := New(context.Background(), Options{Config: cfg, Logger: quietLogger()}); !errors.HasCode(err, "E033") {
		t.Errorf("err = %v, want E033", err)
	}
}

func TestRenderErrorShownOnPage(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "broken.yaml", "variant: stateful\nstate: {}\nbase:\n  className: '{{.missing}}'\n")

	cfg := config.Default()
	cfg.Fixtures = dir
	s, err := New(context.Background(), Options{Config: cfg, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if rec := get(t, s, "/fixtures/broken.html"); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("fragment status = %d", rec.Code)
	}
	if body := get(t, s, "/fixtures/broken").Body.String(); !strings.Contains(body, "gallery-error") {
		t.Errorf("page does not show the error:\n%s", body)
	}
}

func TestReload(t *testing.T) {
	s, dir := newTestServer(t)
	path := filepath.Join(dir, "card.yaml")
	ctx := context.Background()

	// Description is not part of the rendered tree.
	writeFixture(t, dir, "card.yaml", strings.Replace(cardFixture, "A plain card.", "Still a card.", 1))
	changed, err := s.Reload(ctx, Change{Path: path})
	if err != nil || changed {
		t.Errorf("description edit: changed = %v, err = %v", changed, err)
	}

	writeFixture(t, dir, "card.yaml", strings.Replace(cardFixture, "className: card", "className: card wide", 1))
	changed, err = s.Reload(ctx, Change{Path: path})
	if err != nil || !changed {
		t.Errorf("class edit: changed = %v, err = %v", changed, err)
	}
	if got := get(t, s, "/fixtures/card.html").Body.String(); got != `<div class="card wide">hi</div>` {
		t.Errorf("fragment after reload = %s", got)
	}

	writeFixture(t, dir, "card.yaml", "tag: [\n")
	if _, err := s.Reload(ctx, Change{Path: path}); !errors.HasCode(err, "E030") {
		t.Errorf("broken file: err = %v, want E030", err)
	}

	os.Remove(path)
	changed, _ = s.Reload(ctx, Change{Path: path, Removed: true})
	if !changed {
		t.Error("removal not reported as a change")
	}
	if rec := get(t, s, "/fixtures/card"); rec.Code != http.StatusNotFound {
		t.Errorf("status after removal = %d", rec.Code)
	}
}

func TestReloadRename(t *testing.T) {
	s, dir := newTestServer(t)
	path := filepath.Join(dir, "card.yaml")

	writeFixture(t, dir, "card.yaml", strings.Replace(cardFixture, "name: card", "name: panel", 1))
	if _, err := s.Reload(context.Background(), Change{Path: path}); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := strings.Join(s.Names(), ","); got != "panel" {
		t.Errorf("Names() = %s, want panel", got)
	}
}

func dialReload(t *testing.T, s *Server) (*websocket.Conn, func()) {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_gallery/reload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("Dial: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Reloads().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("reload client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn, func() {
		conn.Close()
		ts.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return msg
}

func TestReloadBroadcast(t *testing.T) {
	s, dir := newTestServer(t)
	conn, closeAll := dialReload(t, s)
	defer closeAll()

	path := writeFixture(t, dir, "card.yaml", strings.Replace(cardFixture, "children: hi", "children: hello", 1))
	if _, err := s.Reload(context.Background(), Change{Path: path}); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeFull || msg.Fixture != "card" {
		t.Errorf("message = %+v", msg)
	}

	writeFixture(t, dir, "card.yaml", "variant: grid\n")
	s.Reload(context.Background(), Change{Path: path})
	msg = readMessage(t, conn)
	if msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "E031") {
		t.Errorf("message = %+v", msg)
	}
}

func TestReloadConcurrentBroadcasts(t *testing.T) {
	s, _ := newTestServer(t)
	conn, closeAll := dialReload(t, s)
	defer closeAll()

	const senders, perSender = 16, 20
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				s.Reloads().NotifyReload("card")
			}
		}()
	}

	for n := 0; n < senders*perSender; n++ {
		if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
			t.Fatalf("message %d = %+v", n, msg)
		}
	}
	wg.Wait()
	if got := s.Reloads().ClientCount(); got != 1 {
		t.Errorf("ClientCount() = %d, want 1", got)
	}
}

func TestListenAndServeAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	s, _ := newTestServer(t)
	s.config.Gallery.Host = "127.0.0.1"
	s.config.Gallery.Port = ln.Addr().(*net.TCPAddr).Port

	if err := s.ListenAndServe(context.Background()); !errors.HasCode(err, "E040") {
		t.Errorf("err = %v, want E040", err)
	}
}

func TestServeStopsWithContext(t *testing.T) {
	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/fixtures/card.html")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
