package gallery

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ReloadMessageType is the type of a reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers over the reload socket.
type ReloadMessage struct {
	Type    ReloadMessageType `json:"type"`
	Fixture string            `json:"fixture,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// ReloadServer tracks gallery pages connected to the reload socket.
// Broadcasts may come from several goroutines at once.
type ReloadServer struct {
	mu       sync.RWMutex
	clients  map[string]*reloadClient
	upgrader websocket.Upgrader
	logger   *slog.Logger
	metrics  *Metrics
}

// NewReloadServer creates a reload server. metrics may be nil.
func NewReloadServer(logger *slog.Logger, metrics *Metrics) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[string]*reloadClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The gallery is a local development tool.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger,
		metrics: metrics,
	}
}

// HandleWebSocket upgrades the request and holds the connection until
// the page goes away.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	r.add(id, conn)
	r.logger.Debug("reload client connected", "client", id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.remove(id)
	r.logger.Debug("reload client disconnected", "client", id)
}

// NotifyReload asks every page to reload after fixture changed.
func (r *ReloadServer) NotifyReload(fixture string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull, Fixture: fixture})
}

// NotifyError shows an error overlay on every page.
func (r *ReloadServer) NotifyError(fixture, msg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Fixture: fixture, Error: msg})
}

// ClearError removes the error overlay.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// reloadClient is one connected page. A websocket connection allows a
// single writer at a time, so writes hold wmu.
type reloadClient struct {
	conn *websocket.Conn
	wmu  sync.Mutex
}

func (c *reloadClient) write(data []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make(map[string]*reloadClient, len(r.clients))
	for id, c := range r.clients {
		clients[id] = c
	}
	r.mu.RUnlock()

	for id, c := range clients {
		if err := c.write(data); err != nil {
			r.logger.Debug("reload write failed", "client", id, "error", err)
			r.remove(id)
		}
	}
	if r.metrics != nil {
		r.metrics.reloads.WithLabelValues(string(msg.Type)).Inc()
	}
}

func (r *ReloadServer) add(id string, conn *websocket.Conn) {
	r.mu.Lock()
	r.clients[id] = &reloadClient{conn: conn}
	n := len(r.clients)
	r.mu.Unlock()
	r.setClients(n)
}

func (r *ReloadServer) remove(id string) {
	r.mu.Lock()
	c, ok := r.clients[id]
	delete(r.clients, id)
	n := len(r.clients)
	r.mu.Unlock()
	if ok {
		c.conn.Close()
	}
	r.setClients(n)
}

func (r *ReloadServer) setClients(n int) {
	if r.metrics != nil {
		r.metrics.reloadClients.Set(float64(n))
	}
}

// ClientCount returns the number of connected pages.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes every connection.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	for id, c := range r.clients {
		c.conn.Close()
		delete(r.clients, id)
	}
	r.mu.Unlock()
	r.setClients(0)
}

// reloadScript connects a gallery page to the reload socket.
const reloadScript = `(function() {
    'use strict';

    var delay = 1000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_gallery/reload');

        ws.onopen = function() {
            delay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            switch (msg.type) {
                case 'reload':
                    location.reload();
                    break;
                case 'error':
                    showError(msg.fixture, msg.error);
                    break;
                case 'clear':
                    clearError();
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
    }

    function showError(fixture, error) {
        clearError();
        var pre = document.createElement('pre');
        pre.id = 'gallery-error';
        pre.style.cssText = 'position:fixed;left:0;right:0;bottom:0;margin:0;padding:16px;background:#1a1a1a;color:#ff5555;white-space:pre-wrap;';
        pre.textContent = (fixture ? fixture + ': ' : '') + error;
        document.body.appendChild(pre);
    }

    function clearError() {
        var el = document.getElementById('gallery-error');
        if (el) {
            el.remove();
        }
    }

    connect();
})();`
