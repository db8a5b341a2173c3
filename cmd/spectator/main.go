package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/render"
	"github.com/wvoliveira/pong/internal/spectate"
)

const dialTimeout = 5 * time.Second

type Game struct {
	feed     *spectate.Feed
	renderer *render.Renderer
	cfg      configs.Config
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case <-g.feed.Done():
		slog.Info("disconnected from server.", "error", g.feed.Err())
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	sn, ok := g.feed.Latest()
	if !ok {
		g.renderer.DrawWaiting(screen, "waiting for the game...")
		return
	}
	g.renderer.Draw(screen, sn)
}

// O tamanho lógico segue o da partida que está sendo assistida.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if sn, ok := g.feed.Latest(); ok && sn.Width > 0 && sn.Height > 0 {
		return int(sn.Width), int(sn.Height)
	}
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

// defaultURL monta a URL a partir do SpectateAddr da config (":8080" vira
// "ws://localhost:8080/ws").
func defaultURL(addr string) string {
	if addr == "" {
		addr = ":8080"
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return fmt.Sprintf("ws://%s/ws", addr)
}

func run() error {
	cfg, err := configs.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	serverURL := flag.String("url", defaultURL(cfg.SpectateAddr), "spectator feed URL")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	// Conecta ao servidor
	feed, err := spectate.Dial(ctx, *serverURL)
	if err != nil {
		return err
	}
	defer feed.Close()

	renderer, err := render.NewRenderer("Spectating (read-only)")
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Pong spectator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{feed: feed, renderer: renderer, cfg: cfg}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("error to run spectator", "error", err)
		os.Exit(1)
	}
}
