package geom

// AABB é uma caixa alinhada aos eixos, de Min (canto superior esquerdo)
// até Max (canto inferior direito).
type AABB struct {
	Min Vec2
	Max Vec2
}

// BoxFromRect monta a caixa a partir do canto superior esquerdo, do mesmo
// jeito que o retângulo é desenhado.
func BoxFromRect(x, y, w, h float64) AABB {
	return AABB{Min: V(x, y), Max: V(x+w, y+h)}
}

// BoxAround monta a caixa a partir do centro e das meias-extensões.
func BoxAround(center, half Vec2) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (b AABB) Center() Vec2 {
	return V((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
}

func (b AABB) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b AABB) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Intersects diz se as duas caixas se sobrepõem. Bordas encostadas contam
// como sobreposição, senão a bola passaria rente à borda sem pontuar.
func (b AABB) Intersects(o AABB) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}

// Segment é um segmento de reta entre A e B.
type Segment struct {
	A Vec2
	B Vec2
}
