package geom

import "math"

// Ray parte de Origin na direção Dir (não precisa ser normalizada; T é
// medido em múltiplos de Dir).
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Hit descreve onde o raio entra na caixa e a normal (para fora) da face
// de entrada.
type Hit struct {
	T      float64
	Point  Vec2
	Normal Vec2
}

// CastRay faz o teste de slabs do raio contra a caixa. Se a origem já está
// dentro (ou sobre a borda), o T fica em zero e a normal é a da última face
// cruzada pela reta, que é a face por onde a bola entrou.
func (b AABB) CastRay(r Ray) (Hit, bool) {
	if r.Dir.IsZero() {
		return Hit{}, false
	}

	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	var normal Vec2

	axes := [2]struct {
		o, d, lo, hi float64
		unit         Vec2
	}{
		{r.Origin.X, r.Dir.X, b.Min.X, b.Max.X, V(1, 0)},
		{r.Origin.Y, r.Dir.Y, b.Min.Y, b.Max.Y, V(0, 1)},
	}

	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return Hit{}, false
			}
			continue
		}

		t1 := (a.lo - a.o) / a.d
		t2 := (a.hi - a.o) / a.d
		enter, exit := min(t1, t2), max(t1, t2)

		if enter > tNear {
			tNear = enter
			// Indo no sentido positivo do eixo, a face de entrada é a de
			// menor coordenada, cuja normal aponta para o lado negativo.
			if a.d > 0 {
				normal = a.unit.Scale(-1)
			} else {
				normal = a.unit
			}
		}
		tFar = min(tFar, exit)
	}

	if tNear > tFar || tFar < 0 {
		return Hit{}, false
	}

	t := max(tNear, 0)
	return Hit{T: t, Point: r.At(t), Normal: normal}, true
}
