// Package game tem o estado da partida e o passo de atualização por frame:
// movimento das raquetes, integração da bola, colisões e placar.
package game

import (
	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/geom"
)

type Ball struct {
	Pos geom.Vec2
	Vel geom.Vec2
}

type Score struct {
	Left  uint64
	Right uint64
}

// Borders são as quatro bordas da janela. Cruzar a esquerda ou a direita
// é ponto; topo e fundo rebatem a bola.
type Borders struct {
	Top    geom.Segment
	Bottom geom.Segment
	Left   geom.Segment
	Right  geom.Segment
}

func BordersFor(size geom.Vec2) Borders {
	w, h := size.X, size.Y
	return Borders{
		Top:    geom.Segment{A: geom.V(0, 0), B: geom.V(w, 0)},
		Bottom: geom.Segment{A: geom.V(0, h), B: geom.V(w, h)},
		Left:   geom.Segment{A: geom.V(0, 0), B: geom.V(0, h)},
		Right:  geom.Segment{A: geom.V(w, 0), B: geom.V(w, h)},
	}
}

// Estado do mundo.
type State struct {
	cfg configs.Config

	Ball   Ball
	LeftY  float64
	RightY float64
	Score  Score
	Input  Input

	// Tamanho da janela em pixels lógicos.
	Size geom.Vec2

	borders  Borders
	contacts contacts
}

func NewState(cfg configs.Config) *State {
	size := geom.V(cfg.ScreenWidth, cfg.ScreenHeight)
	return &State{
		cfg: cfg,
		Ball: Ball{
			Pos: size.Scale(0.5),
			Vel: geom.V(cfg.BallSpeed, 0),
		},
		LeftY:   cfg.ScreenHeight / 2,
		RightY:  cfg.ScreenHeight / 2,
		Size:    size,
		borders: BordersFor(size),
	}
}

func (s *State) Borders() Borders {
	return s.borders
}

// Resize guarda o novo tamanho da janela e recalcula as bordas. Com
// LagBorders as bordas são calculadas com o tamanho anterior, antes de
// guardar o novo, e ficam sempre um frame atrasadas.
func (s *State) Resize(w, h float64) {
	if s.cfg.LagBorders {
		s.borders = BordersFor(s.Size)
		s.Size = geom.V(w, h)
		return
	}

	s.Size = geom.V(w, h)
	s.borders = BordersFor(s.Size)
}

func (s *State) Press(k Key) {
	s.Input.Press(k)
}

func (s *State) Release(k Key) {
	s.Input.Release(k)
}

func (s *State) BallBox() geom.AABB {
	r := s.cfg.BallRadius
	return geom.BoxAround(s.Ball.Pos, geom.V(r, r))
}

// PaddleBox é o retângulo da raquete exatamente como é desenhado.
func (s *State) PaddleBox(side Side) geom.AABB {
	y := s.LeftY
	if side == SideRight {
		y = s.RightY
	}
	return paddleRect(side, s.Size.X, y, s.cfg)
}

func paddleX(side Side, width float64, cfg configs.Config) float64 {
	if side == SideRight {
		return width - cfg.Padding - cfg.PaddleWidth
	}
	return cfg.Padding
}

func paddleRect(side Side, width, y float64, cfg configs.Config) geom.AABB {
	return geom.BoxFromRect(paddleX(side, width, cfg), y, cfg.PaddleWidth, cfg.PaddleHeight)
}

// serve recoloca a bola no centro da janela.
func (s *State) serve(towards Side) {
	s.Ball.Pos = s.Size.Scale(0.5)
	s.contacts.reset()

	if s.cfg.Serve != configs.ServeReset {
		return
	}

	switch towards {
	case SideRight:
		s.Ball.Vel = geom.V(s.cfg.ServeSpeed, 0)
	case SideLeft:
		s.Ball.Vel = geom.V(-s.cfg.ServeSpeed, 0)
	}
}
