package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/game"
	"github.com/wvoliveira/pong/internal/render"
	"github.com/wvoliveira/pong/internal/spectate"
)

// Controles player 1 (w/s) e player 2 (setas)
var keys = []struct {
	key  ebiten.Key
	move game.Key
}{
	{ebiten.KeyW, game.KeyW},
	{ebiten.KeyS, game.KeyS},
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
}

type Game struct {
	ctx      context.Context
	state    *game.State
	renderer *render.Renderer
	clock    frameClock

	// nil quando o feed de espectadores está desligado
	hub *spectate.Hub
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.state.Press(k.move)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.state.Release(k.move)
		}
	}

	ev := g.state.Update(g.clock.tick(time.Now()))

	if ev.Has(game.EventScoreLeft) {
		slog.Info("point", "side", game.SideLeft, "left", g.state.Score.Left, "right", g.state.Score.Right)
	}
	if ev.Has(game.EventScoreRight) {
		slog.Info("point", "side", game.SideRight, "left", g.state.Score.Left, "right", g.state.Score.Right)
	}

	if g.hub != nil {
		g.hub.Publish(g.state.Snapshot())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.state.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file (default $PONG_CONFIG)")
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	renderer, err := render.NewRenderer("Player 1: W/S  |  Player 2: Arrows")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := &Game{
		ctx:      ctx,
		state:    game.NewState(cfg),
		renderer: renderer,
		clock: frameClock{
			fallback: 1 / float64(ebiten.TPS()),
			max:      cfg.MaxFrameDelta,
		},
	}

	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub()
		go hub.Run(ctx)
		go func() {
			if err := spectate.Serve(ctx, cfg.SpectateAddr, hub); err != nil {
				slog.Error("error to serve spectators", "error", err)
			}
		}()
		g.hub = hub
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting pong", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight,
		"collision", cfg.Collision, "steer", cfg.Steer, "serve", cfg.Serve)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("error to run pong", "error", err)
		os.Exit(1)
	}
}
