package game

// Key é uma das teclas de movimento que o jogo entende.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyW
	KeyS
)

var keyName = map[Key]string{
	KeyNone: "none",
	KeyUp:   "up",
	KeyDown: "down",
	KeyW:    "w",
	KeyS:    "s",
}

func (k Key) String() string {
	if name, ok := keyName[k]; ok {
		return name
	}
	return "unknown"
}

// Side diz qual raquete a tecla controla: W/S a esquerda, setas a direita.
func (k Key) Side() Side {
	switch k {
	case KeyW, KeyS:
		return SideLeft
	case KeyUp, KeyDown:
		return SideRight
	}
	return SideNone
}

// dir é o sentido do movimento no eixo Y da tela (cresce para baixo).
func (k Key) dir() float64 {
	switch k {
	case KeyUp, KeyW:
		return -1
	case KeyDown, KeyS:
		return 1
	}
	return 0
}

type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

var sideName = map[Side]string{
	SideNone:  "none",
	SideLeft:  "left",
	SideRight: "right",
}

func (s Side) String() string {
	if name, ok := sideName[s]; ok {
		return name
	}
	return "unknown"
}
