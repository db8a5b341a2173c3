// Package spectate transmite o estado da partida local, só para leitura,
// para quem estiver assistindo via websocket.
package spectate

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong/internal/game"
)

const (
	writeWait       = 250 * time.Millisecond
	shutdownTimeout = 2 * time.Second
	queueSize       = 100
)

// Eventos que o loop do Hub aceita
type eventType int

const (
	eventJoin eventType = iota
	eventLeave
	eventPublish
)

type event struct {
	typ  eventType
	conn *websocket.Conn
	snap game.Snapshot
}

// Hub é dono da lista de espectadores. Só a goroutine de Run mexe nela e
// só ela escreve nas conexões; o resto conversa com ela pelo canal.
type Hub struct {
	events   chan event
	done     chan struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		events: make(chan event, queueSize),
		done:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run processa os eventos até ctx acabar e então fecha todas as conexões.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	// Mapa de clientes local
	clients := make(map[*websocket.Conn]int)
	nextID := 0

	leave := func(c *websocket.Conn) {
		if id, ok := clients[c]; ok {
			delete(clients, c)
			c.Close()
			slog.Info("spectator left", "id", id, "total", len(clients))
		}
	}

	for {
		select {
		case <-ctx.Done():
			for c := range clients {
				c.Close()
			}
			return

		case evt := <-h.events:
			switch evt.typ {
			case eventJoin:
				nextID++
				clients[evt.conn] = nextID
				slog.Info("spectator joined", "id", nextID, "total", len(clients))

			case eventLeave:
				leave(evt.conn)

			case eventPublish:
				if len(clients) == 0 {
					continue
				}

				msg, err := Encode(evt.snap)
				if err != nil {
					slog.Error("error to encode snapshot", "error", err)
					continue
				}

				for c := range clients {
					if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
						slog.Info("error to set write deadline", "error", err)
						leave(c)
						continue
					}
					if err := c.WriteMessage(websocket.BinaryMessage, msg); err != nil {
						slog.Info("error to write to spectator", "error", err)
						leave(c)
					}
				}
			}
		}
	}
}

// Publish entrega o snapshot ao loop sem bloquear. Se a fila estiver
// cheia o snapshot é descartado; o próximo frame manda outro.
func (h *Hub) Publish(sn game.Snapshot) bool {
	select {
	case h.events <- event{typ: eventPublish, snap: sn}:
		return true
	default:
		return false
	}
}

func (h *Hub) send(evt event) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	select {
	case h.events <- evt:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("error to upgrade to websocket", "error", err)
		return
	}

	if !h.send(event{typ: eventJoin, conn: ws}) {
		ws.Close()
		return
	}

	// Espectador não manda nada; a leitura só serve para notar a
	// desconexão.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			h.send(event{typ: eventLeave, conn: ws})
			return
		}
	}
}

// Serve atende /ws em addr até ctx acabar.
func Serve(ctx context.Context, addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("error to shutdown spectator feed", "error", err)
		}
	}()

	slog.Info("spectator feed running at " + addr + "/ws")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func Encode(sn game.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sn); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decode(data []byte) (game.Snapshot, error) {
	var sn game.Snapshot
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sn)
	return sn, err
}
