package game

import (
	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/geom"
)

// Snapshot é tudo que o desenho precisa de um frame. É um valor simples
// para poder ser enviado (gob) aos espectadores.
type Snapshot struct {
	Width  float64
	Height float64

	BallX      float64
	BallY      float64
	BallRadius float64

	LeftY        float64
	RightY       float64
	PaddleWidth  float64
	PaddleHeight float64
	Padding      float64

	LeftScore  uint64
	RightScore uint64
	ShowScore  bool
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Width:  s.Size.X,
		Height: s.Size.Y,

		BallX:      s.Ball.Pos.X,
		BallY:      s.Ball.Pos.Y,
		BallRadius: s.cfg.BallRadius,

		LeftY:        s.LeftY,
		RightY:       s.RightY,
		PaddleWidth:  s.cfg.PaddleWidth,
		PaddleHeight: s.cfg.PaddleHeight,
		Padding:      s.cfg.Padding,

		LeftScore:  s.Score.Left,
		RightScore: s.Score.Right,
		ShowScore:  s.cfg.ShowScore,
	}
}

func (sn Snapshot) paddleCfg() configs.Config {
	return configs.Config{
		Padding:      sn.Padding,
		PaddleWidth:  sn.PaddleWidth,
		PaddleHeight: sn.PaddleHeight,
	}
}

func (sn Snapshot) LeftPaddleRect() geom.AABB {
	return paddleRect(SideLeft, sn.Width, sn.LeftY, sn.paddleCfg())
}

func (sn Snapshot) RightPaddleRect() geom.AABB {
	return paddleRect(SideRight, sn.Width, sn.RightY, sn.paddleCfg())
}

func (sn Snapshot) BallCenter() geom.Vec2 {
	return geom.V(sn.BallX, sn.BallY)
}
