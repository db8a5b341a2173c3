package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrInvalidConfig = errors.New("invalid config")
)

// Como a bola reage ao encostar numa raquete.
type CollisionPolicy string

const (
	// Qualquer sobreposição inverte a velocidade horizontal.
	CollisionOverlap CollisionPolicy = "overlap"
	// Lança um raio do centro da bola até o centro da raquete e só
	// rebate se a face atingida for a de frente para a quadra.
	CollisionRayCast CollisionPolicy = "raycast"
)

// Como a raquete em movimento desvia a bola.
type SteerPolicy string

const (
	SteerOverwrite SteerPolicy = "overwrite"
	SteerNudge     SteerPolicy = "nudge"
)

// O que acontece com a velocidade depois de um ponto.
type ServePolicy string

const (
	ServeReset ServePolicy = "reset"
	ServeKeep  ServePolicy = "keep"
)

// Constantes do jogo.
type Config struct {
	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`

	PaddleSpeed  float64 `toml:"paddle_speed"`
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	Padding      float64 `toml:"padding"`

	BallRadius float64 `toml:"ball_radius"`
	BallSpeed  float64 `toml:"ball_speed"`
	PushSpeed  float64 `toml:"push_speed"`
	NudgeStep  float64 `toml:"nudge_step"`
	ServeSpeed float64 `toml:"serve_speed"`

	Collision CollisionPolicy `toml:"collision"`
	Steer     SteerPolicy     `toml:"steer"`
	Serve     ServePolicy     `toml:"serve"`

	ShowScore  bool `toml:"show_score"`
	LagBorders bool `toml:"lag_borders"`

	// Em segundos.
	MaxFrameDelta float64 `toml:"max_frame_delta"`

	// Endereço do feed de espectadores (ex: ":8080"). Vazio desliga.
	SpectateAddr string `toml:"spectate_addr"`
}

func New() Config {
	return Config{
		ScreenWidth:  400,
		ScreenHeight: 400,

		PaddleSpeed:  300,
		PaddleWidth:  5,
		PaddleHeight: 100,
		Padding:      20,

		BallRadius: 5,
		BallSpeed:  200,
		PushSpeed:  200,
		NudgeStep:  50,
		ServeSpeed: 200,

		Collision: CollisionRayCast,
		Steer:     SteerOverwrite,
		Serve:     ServeReset,

		ShowScore:     true,
		MaxFrameDelta: 0.25,
	}
}

// Load parte dos valores padrão e aplica, nessa ordem: o .env (se existir),
// o arquivo TOML (path, ou PONG_CONFIG se path for vazio) e por fim
// PONG_SPECTATE_ADDR.
func Load(path string) (Config, error) {
	cfg := New()

	// godotenv não sobrescreve o que já está no ambiente.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("PONG_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if addr := os.Getenv("PONG_SPECTATE_ADDR"); addr != "" {
		cfg.SpectateAddr = addr
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Collision {
	case CollisionOverlap, CollisionRayCast:
	default:
		return fmt.Errorf("%w: collision %q", ErrUnknownPolicy, c.Collision)
	}

	switch c.Steer {
	case SteerOverwrite, SteerNudge:
	default:
		return fmt.Errorf("%w: steer %q", ErrUnknownPolicy, c.Steer)
	}

	switch c.Serve {
	case ServeReset, ServeKeep:
	default:
		return fmt.Errorf("%w: serve %q", ErrUnknownPolicy, c.Serve)
	}

	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.BallRadius <= 0 || c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("%w: ball and paddle sizes must be positive", ErrInvalidConfig)
	}
	if c.BallSpeed == 0 {
		return fmt.Errorf("%w: ball speed must not be zero", ErrInvalidConfig)
	}
	if c.Serve == ServeReset && c.ServeSpeed == 0 {
		return fmt.Errorf("%w: serve speed must not be zero", ErrInvalidConfig)
	}

	return nil
}
