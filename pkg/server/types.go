package server

import (
	"errors"
	"sync"

	"github.com/matst80/slask-delivery/pkg/messaging"
	"github.com/matst80/slask-delivery/pkg/storage"
)

// DefaultDateWindow is how many candidate days the options endpoint walks
// when the request does not specify one.
const DefaultDateWindow = 14

var ErrNoConfig = errors.New("server: no schedule config loaded")

// WebServer serves delivery availability and checkout validation from an
// in-memory snapshot of the scheduling config. The snapshot is swapped
// wholesale on Reload; request handlers only ever read it.
type WebServer struct {
	Storage storage.ConfigStorage
	// Notify, when set, is called after every admin mutation so the
	// change can be broadcast to other nodes.
	Notify func(messaging.ChangeNotice)

	mu  sync.RWMutex
	cfg *storage.ScheduleConfig
}

func NewWebServer(s storage.ConfigStorage) *WebServer {
	return &WebServer{Storage: s}
}

// Reload replaces the in-memory snapshot from storage.
func (ws *WebServer) Reload() error {
	cfg, err := ws.Storage.Load()
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.cfg = cfg
	ws.mu.Unlock()
	configReloads.Inc()
	return nil
}

// Config returns the current snapshot, or ErrNoConfig before the first
// successful Reload.
func (ws *WebServer) Config() (*storage.ScheduleConfig, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.cfg == nil {
		return nil, ErrNoConfig
	}
	return ws.cfg, nil
}

// SetConfig installs a snapshot directly (admin mutations, tests).
func (ws *WebServer) SetConfig(cfg *storage.ScheduleConfig) {
	ws.mu.Lock()
	ws.cfg = cfg
	ws.mu.Unlock()
}

func (ws *WebServer) notify(notice messaging.ChangeNotice) {
	if ws.Notify != nil {
		ws.Notify(notice)
	}
}
