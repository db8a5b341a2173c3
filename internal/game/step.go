package game

import (
	"math"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/geom"
)

// Events diz o que aconteceu num passo de Update.
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventScoreLeft
	EventScoreRight
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Update avança o jogo em dt segundos: raquetes, bola, colisões com as
// raquetes, teto/chão e ponto, nessa ordem.
func (s *State) Update(dt float64) Events {
	var ev Events

	s.movePaddle(SideLeft, dt)
	s.movePaddle(SideRight, dt)

	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel.Scale(dt))
	ball := s.BallBox()

	// Raquetes
	for _, side := range [...]Side{SideLeft, SideRight} {
		b := bodyLeftPaddle
		if side == SideRight {
			b = bodyRightPaddle
		}

		paddle := s.PaddleBox(side)
		if !ball.Intersects(paddle) {
			s.contacts.end(b)
			continue
		}

		if s.contacts.begin(b) && s.facesCourt(side, paddle) {
			s.Ball.Vel.X = -s.Ball.Vel.X
			ev |= EventPaddleHit
		}
		s.steer(side)
	}

	// Teto/Chão. A resposta depende só do lado da parede, então aplicar de
	// novo num frame em que a bola continua encostada não muda nada.
	if ball.Min.Y <= s.borders.Top.A.Y && s.Ball.Vel.Y < 0 {
		s.Ball.Vel.Y = math.Abs(s.Ball.Vel.Y)
		ev |= EventWallBounce
	}
	if ball.Max.Y >= s.borders.Bottom.A.Y && s.Ball.Vel.Y > 0 {
		s.Ball.Vel.Y = -math.Abs(s.Ball.Vel.Y)
		ev |= EventWallBounce
	}

	// Ponto / Reset. Semiplanos: passos longos ou uma janela que encolheu
	// não deixam a bola atravessar a borda sem pontuar.
	if ball.Min.X <= s.borders.Left.A.X {
		s.Score.Right++
		s.serve(SideRight)
		ev |= EventScoreRight
	}
	if ball.Max.X >= s.borders.Right.A.X {
		s.Score.Left++
		s.serve(SideLeft)
		ev |= EventScoreLeft
	}

	return ev
}

func (s *State) movePaddle(side Side, dt float64) {
	step := s.Input.Active(side).dir() * s.cfg.PaddleSpeed * dt
	switch side {
	case SideLeft:
		s.LeftY += step
	case SideRight:
		s.RightY += step
	}
}

// facesCourt confirma que a bola bateu na face da raquete virada para a
// quadra, e não no topo ou no fundo dela.
func (s *State) facesCourt(side Side, paddle geom.AABB) bool {
	if s.cfg.Collision == configs.CollisionOverlap {
		return true
	}

	dir := paddle.Center().Sub(s.Ball.Pos)
	if dir.IsZero() {
		return true
	}

	hit, ok := paddle.CastRay(geom.Ray{Origin: s.Ball.Pos, Dir: dir})
	if !ok {
		return false
	}

	want := geom.V(1, 0)
	if side == SideRight {
		want = geom.V(-1, 0)
	}
	return hit.Normal == want
}

// steer desvia a bola no sentido em que a raquete está andando.
func (s *State) steer(side Side) {
	d := s.Input.Active(side).dir()
	if d == 0 {
		return
	}

	switch s.cfg.Steer {
	case configs.SteerNudge:
		s.Ball.Vel.Y += d * s.cfg.NudgeStep
	default:
		s.Ball.Vel.Y = d * s.cfg.PushSpeed
	}
}
