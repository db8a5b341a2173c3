package spectate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong/internal/game"
)

// Feed recebe os snapshots de um Hub e guarda só o mais recente.
type Feed struct {
	ws   *websocket.Conn
	done chan struct{}

	mu     sync.Mutex
	latest game.Snapshot
	ok     bool
	err    error
}

func Dial(ctx context.Context, url string) (*Feed, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}

	f := &Feed{ws: ws, done: make(chan struct{})}
	go f.read()
	return f, nil
}

func (f *Feed) read() {
	defer close(f.done)

	for {
		msgType, msgData, err := f.ws.ReadMessage()
		if err != nil {
			f.mu.Lock()
			f.err = err
			f.mu.Unlock()
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		sn, err := Decode(msgData)
		if err != nil {
			slog.Warn("error to decode snapshot", "error", err)
			continue
		}

		f.mu.Lock()
		f.latest = sn
		f.ok = true
		f.mu.Unlock()
	}
}

// Latest devolve o último snapshot recebido; ok é false enquanto nenhum
// chegou.
func (f *Feed) Latest() (game.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.ok
}

// Done fecha quando a conexão cai. Err diz o motivo.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Feed) Close() error {
	return f.ws.Close()
}
