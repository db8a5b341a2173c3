package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/geom"
)

const eps = 1e-9

func newTestState(mutate ...func(*configs.Config)) *State {
	cfg := configs.New()
	for _, m := range mutate {
		m(&cfg)
	}
	return NewState(cfg)
}

func TestNewState(t *testing.T) {
	s := newTestState()

	assert.Equal(t, geom.V(200, 200), s.Ball.Pos)
	assert.Equal(t, geom.V(200, 0), s.Ball.Vel)
	assert.Equal(t, 200.0, s.LeftY)
	assert.Equal(t, 200.0, s.RightY)
	assert.Equal(t, Score{}, s.Score)
	assert.Equal(t, geom.V(400, 400), s.Size)
	assert.Equal(t, BordersFor(geom.V(400, 400)), s.Borders())
}

func TestUpdateIntegratesBallWithoutCollision(t *testing.T) {
	s := newTestState()
	s.Ball.Vel = geom.V(30, -40)

	ev := s.Update(0.5)

	assert.Equal(t, Events(0), ev)
	assert.InDelta(t, 215.0, s.Ball.Pos.X, eps)
	assert.InDelta(t, 180.0, s.Ball.Pos.Y, eps)
	assert.Equal(t, geom.V(30, -40), s.Ball.Vel)
}

func TestUpdateRightBoundaryScores(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(200, 200)
	s.Ball.Vel = geom.V(200, 0)

	ev := s.Update(1.0)

	assert.True(t, ev.Has(EventScoreLeft))
	assert.False(t, ev.Has(EventScoreRight))
	assert.Equal(t, uint64(1), s.Score.Left)
	assert.Equal(t, uint64(0), s.Score.Right)
	assert.Equal(t, geom.V(200, 200), s.Ball.Pos)
	assert.Equal(t, geom.V(-200, 0), s.Ball.Vel, "serve goes back to the left")
}

func TestUpdateLeftBoundaryScores(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(10, 200)
	s.Ball.Vel = geom.V(-200, 0)

	ev := s.Update(0.05)

	assert.True(t, ev.Has(EventScoreRight))
	assert.Equal(t, Score{Left: 0, Right: 1}, s.Score)
	assert.Equal(t, geom.V(200, 200), s.Ball.Pos)
	assert.Equal(t, geom.V(200, 0), s.Ball.Vel)
}

func TestUpdateLongStepStillScores(t *testing.T) {
	s := newTestState()
	s.LeftY = 1000
	s.Ball.Pos = geom.V(26, 200)
	s.Ball.Vel = geom.V(-200, 0)

	ev := s.Update(0.25)

	assert.True(t, ev.Has(EventScoreRight))
	assert.Equal(t, uint64(1), s.Score.Right)
	assert.Equal(t, geom.V(200, 200), s.Ball.Pos)

	s.Ball.Pos = geom.V(370, 100)
	s.Ball.Vel = geom.V(200, 0)
	ev = s.Update(0.25)

	assert.True(t, ev.Has(EventScoreLeft))
	assert.Equal(t, uint64(1), s.Score.Left)
}

func TestUpdateScoresWhenWindowShrinksPastBall(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(300, 200)
	s.Ball.Vel = geom.V(200, 0)

	s.Resize(250, 400)
	ev := s.Update(0.001)

	assert.True(t, ev.Has(EventScoreLeft))
	assert.Equal(t, uint64(1), s.Score.Left)
	assert.Equal(t, geom.V(125, 200), s.Ball.Pos)
}

func TestUpdateServeKeepLeavesVelocity(t *testing.T) {
	s := newTestState(func(c *configs.Config) { c.Serve = configs.ServeKeep })
	s.Ball.Pos = geom.V(10, 200)
	s.Ball.Vel = geom.V(-200, 30)

	s.Update(0.05)

	assert.Equal(t, uint64(1), s.Score.Right)
	assert.Equal(t, geom.V(200, 200), s.Ball.Pos)
	assert.Equal(t, geom.V(-200, 30), s.Ball.Vel)
}

func TestUpdateRecentersOnCurrentSize(t *testing.T) {
	s := newTestState()
	s.Resize(600, 300)
	s.Ball.Pos = geom.V(590, 100)
	s.Ball.Vel = geom.V(200, 0)

	s.Update(0.05)

	assert.Equal(t, uint64(1), s.Score.Left)
	assert.Equal(t, geom.V(300, 150), s.Ball.Pos)
}

func TestUpdateLeftPaddleHitWithSteering(t *testing.T) {
	s := newTestState()
	s.LeftY = 200
	s.Ball.Pos = geom.V(25, 250)
	s.Ball.Vel = geom.V(-200, 0)
	s.Press(KeyW)

	ev := s.Update(0.001)

	assert.True(t, ev.Has(EventPaddleHit))
	assert.Equal(t, 200.0, s.Ball.Vel.X, "horizontal velocity should flip")
	assert.Equal(t, -200.0, s.Ball.Vel.Y, "W pushes the ball upwards")
	assert.InDelta(t, 199.7, s.LeftY, eps)
}

func TestUpdateRightPaddleHitWithSteering(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(370, 250)
	s.Ball.Vel = geom.V(200, 0)
	s.Press(KeyDown)

	ev := s.Update(0.01)

	assert.True(t, ev.Has(EventPaddleHit))
	assert.Equal(t, -200.0, s.Ball.Vel.X)
	assert.Equal(t, 200.0, s.Ball.Vel.Y)
	assert.InDelta(t, 203.0, s.RightY, eps)
}

func TestUpdateSteerNudgeAccumulates(t *testing.T) {
	s := newTestState(func(c *configs.Config) { c.Steer = configs.SteerNudge })
	s.Ball.Pos = geom.V(25, 250)
	s.Ball.Vel = geom.V(-200, 10)
	s.Press(KeyW)

	s.Update(0.001)

	assert.Equal(t, 200.0, s.Ball.Vel.X)
	assert.InDelta(t, -40.0, s.Ball.Vel.Y, eps)
}

func TestUpdateNoSteeringWithoutKey(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(25, 250)
	s.Ball.Vel = geom.V(-200, 15)

	s.Update(0.001)

	assert.Equal(t, 200.0, s.Ball.Vel.X)
	assert.Equal(t, 15.0, s.Ball.Vel.Y)
}

func TestUpdateReflectsOncePerOverlap(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(25, 250)
	s.Ball.Vel = geom.V(-1, 0)

	flips := 0
	for i := 0; i < 5; i++ {
		before := s.Ball.Vel.X
		s.Update(0.001)
		if before*s.Ball.Vel.X < 0 {
			flips++
		}
	}
	assert.Equal(t, 1, flips, "sustained overlap must flip only on entry")
	assert.Equal(t, 1.0, s.Ball.Vel.X)

	// sai da raquete e volta: novo contato, nova reflexão
	s.Ball.Pos = geom.V(100, 250)
	s.Update(0.001)
	s.Ball.Pos = geom.V(25, 250)
	s.Ball.Vel = geom.V(-1, 0)
	ev := s.Update(0.001)

	assert.True(t, ev.Has(EventPaddleHit))
	assert.Equal(t, 1.0, s.Ball.Vel.X)
}

func TestUpdateRayCastRejectsPaddleTop(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(22.5, 194)
	s.Ball.Vel = geom.V(-50, 100)

	ev := s.Update(0.01)

	require.True(t, s.BallBox().Intersects(s.PaddleBox(SideLeft)), "ball should touch the paddle top")
	assert.False(t, ev.Has(EventPaddleHit))
	assert.Equal(t, -50.0, s.Ball.Vel.X, "hits on the top face are not reflected")
}

func TestUpdateOverlapPolicyReflectsPaddleTop(t *testing.T) {
	s := newTestState(func(c *configs.Config) { c.Collision = configs.CollisionOverlap })
	s.Ball.Pos = geom.V(22.5, 194)
	s.Ball.Vel = geom.V(-50, 100)

	ev := s.Update(0.01)

	assert.True(t, ev.Has(EventPaddleHit))
	assert.Equal(t, 50.0, s.Ball.Vel.X)
}

func TestUpdateWallBounceWhileTouching(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(200, 6)
	s.Ball.Vel = geom.V(0, -100)

	ev := s.Update(0.02)
	assert.True(t, ev.Has(EventWallBounce))
	assert.Equal(t, 100.0, s.Ball.Vel.Y)

	// ainda encostado no topo
	ev = s.Update(0.01)
	assert.False(t, ev.Has(EventWallBounce))
	assert.Equal(t, 100.0, s.Ball.Vel.Y)
}

func TestUpdateWallPushesBackBallSteeredIntoIt(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(200, 4)
	s.Ball.Vel = geom.V(0, -100)

	s.Update(0.001)
	require.Equal(t, 100.0, s.Ball.Vel.Y)

	// raquete empurrou a bola de volta para o teto no mesmo contato
	s.Ball.Vel.Y = -200
	ev := s.Update(0.001)

	assert.True(t, ev.Has(EventWallBounce))
	assert.Equal(t, 200.0, s.Ball.Vel.Y, "top wall always sends the ball down")
}

func TestBallStaysInCourtWhenSteeredAlongWall(t *testing.T) {
	s := newTestState()
	s.LeftY = -50
	s.Ball.Pos = geom.V(31.5, 3)
	s.Ball.Vel = geom.V(-60, -30)
	s.Press(KeyW)

	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
		require.GreaterOrEqual(t, s.Ball.Pos.Y, -20.0, "ball escaped through the top")
		require.LessOrEqual(t, s.Ball.Pos.Y, 420.0, "ball escaped through the bottom")
	}
}

func TestUpdateBottomWallBounce(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = geom.V(200, 394)
	s.Ball.Vel = geom.V(0, 100)

	ev := s.Update(0.02)

	assert.True(t, ev.Has(EventWallBounce))
	assert.Equal(t, -100.0, s.Ball.Vel.Y)
}

func TestPaddleMovesOnlyWhileHeld(t *testing.T) {
	s := newTestState()

	s.Update(0.1)
	assert.Equal(t, 200.0, s.LeftY)
	assert.Equal(t, 200.0, s.RightY)

	s.Press(KeyS)
	s.Update(0.1)
	assert.InDelta(t, 230.0, s.LeftY, eps)
	assert.Equal(t, 200.0, s.RightY)

	s.Release(KeyS)
	s.Update(0.1)
	assert.InDelta(t, 230.0, s.LeftY, eps)

	s.Press(KeyUp)
	s.Update(0.1)
	assert.InDelta(t, 170.0, s.RightY, eps)
}

func TestPaddleIsNotClamped(t *testing.T) {
	s := newTestState()
	s.Press(KeyW)

	s.Update(1.0)

	assert.InDelta(t, -100.0, s.LeftY, eps)
}

func TestResizeBorders(t *testing.T) {
	s := newTestState()

	s.Resize(600, 300)

	assert.Equal(t, geom.V(600, 300), s.Size)
	assert.Equal(t, BordersFor(geom.V(600, 300)), s.Borders())
}

func TestResizeLagBorders(t *testing.T) {
	s := newTestState(func(c *configs.Config) { c.LagBorders = true })

	s.Resize(600, 300)
	assert.Equal(t, geom.V(600, 300), s.Size)
	assert.Equal(t, BordersFor(geom.V(400, 400)), s.Borders(), "borders lag one resize behind")

	s.Resize(600, 300)
	assert.Equal(t, BordersFor(geom.V(600, 300)), s.Borders())
}

func TestScoresNeverDecreaseAndBallNeverStops(t *testing.T) {
	s := newTestState()
	rng := rand.New(rand.NewSource(7))
	keys := []Key{KeyUp, KeyDown, KeyW, KeyS}

	var last Score
	for i := 0; i < 5000; i++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			s.Press(k)
		} else {
			s.Release(k)
		}

		s.Update(1.0 / 60)

		require.GreaterOrEqual(t, s.Score.Left, last.Left)
		require.GreaterOrEqual(t, s.Score.Right, last.Right)
		require.False(t, s.Ball.Vel.IsZero())
		last = s.Score
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestState()
	s.LeftY = 120
	s.Score = Score{Left: 3, Right: 4}

	sn := s.Snapshot()

	assert.Equal(t, 400.0, sn.Width)
	assert.Equal(t, geom.V(200, 200), sn.BallCenter())
	assert.Equal(t, 5.0, sn.BallRadius)
	assert.Equal(t, geom.BoxFromRect(20, 120, 5, 100), sn.LeftPaddleRect())
	assert.Equal(t, geom.BoxFromRect(375, 200, 5, 100), sn.RightPaddleRect())
	assert.Equal(t, s.PaddleBox(SideLeft), sn.LeftPaddleRect())
	assert.Equal(t, uint64(3), sn.LeftScore)
	assert.Equal(t, uint64(4), sn.RightScore)
	assert.True(t, sn.ShowScore)
}
