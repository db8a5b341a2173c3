// Package render desenha um game.Snapshot numa imagem do ebiten.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wvoliveira/pong/internal/game"
	"github.com/wvoliveira/pong/internal/geom"
)

var (
	Background  = color.RGBA{0x20, 0x20, 0x30, 0xff}
	PaddleColor = color.White
	BallColor   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	ScoreColor  = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
)

const (
	scoreSize   = 24
	scoreMargin = 12
)

type Renderer struct {
	score text.Face
	help  text.Face

	// Texto de ajuda no canto superior esquerdo. Vazio não desenha nada.
	Help string
}

// NewRenderer carrega a fonte embutida do placar. Só falha se o TTF
// estiver corrompido.
func NewRenderer(help string) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load score font: %w", err)
	}

	return &Renderer{
		score: &text.GoTextFace{Source: src, Size: scoreSize},
		help:  text.NewGoXFace(basicfont.Face7x13),
		Help:  help,
	}, nil
}

func (r *Renderer) Draw(screen *ebiten.Image, sn game.Snapshot) {
	screen.Fill(Background)

	// Raquetes
	for _, p := range [...]geom.AABB{sn.LeftPaddleRect(), sn.RightPaddleRect()} {
		vector.DrawFilledRect(screen, float32(p.Min.X), float32(p.Min.Y), float32(p.Width()), float32(p.Height()), PaddleColor, false)
	}

	// Bola
	c := sn.BallCenter()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(sn.BallRadius), BallColor, true)

	if sn.ShowScore {
		r.drawScore(screen, strconv.FormatUint(sn.LeftScore, 10), sn.Width/4)
		r.drawScore(screen, strconv.FormatUint(sn.RightScore, 10), sn.Width*3/4)
	}

	if r.Help != "" {
		text.Draw(screen, r.Help, r.help, &text.DrawOptions{})
	}
}

func (r *Renderer) drawScore(screen *ebiten.Image, s string, x float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, scoreMargin)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ScoreColor)
	text.Draw(screen, s, r.score, op)
}
