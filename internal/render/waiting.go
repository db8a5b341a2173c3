package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawWaiting é usado pelo espectador enquanto nenhum snapshot chegou.
func (r *Renderer) DrawWaiting(screen *ebiten.Image, msg string) {
	screen.Fill(Background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ScoreColor)
	text.Draw(screen, msg, r.help, op)
}
