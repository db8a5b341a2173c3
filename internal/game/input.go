package game

// Input guarda no máximo uma tecla ativa por lado.
type Input struct {
	Left  Key
	Right Key
}

// Press troca a tecla ativa do lado da tecla, mesmo que outra já esteja
// pressionada. Teclas sem lado são ignoradas.
func (in *Input) Press(k Key) {
	switch k.Side() {
	case SideLeft:
		in.Left = k
	case SideRight:
		in.Right = k
	}
}

// Release limpa o lado da tecla, seja qual for a tecla ativa nele.
func (in *Input) Release(k Key) {
	switch k.Side() {
	case SideLeft:
		in.Left = KeyNone
	case SideRight:
		in.Right = KeyNone
	}
}

func (in Input) Active(side Side) Key {
	switch side {
	case SideLeft:
		return in.Left
	case SideRight:
		return in.Right
	}
	return KeyNone
}
