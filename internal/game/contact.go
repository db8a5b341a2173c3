package game

type body int

const (
	bodyLeftPaddle body = iota
	bodyRightPaddle
	bodyCount
)

// contacts marca quais raquetes estão encostadas na bola. Uma resposta só
// dispara quando o contato começa, não a cada frame em que ele continua.
type contacts [bodyCount]bool

// begin devolve true só se o contato é novo.
func (c *contacts) begin(b body) bool {
	if c[b] {
		return false
	}
	c[b] = true
	return true
}

func (c *contacts) end(b body) {
	c[b] = false
}

func (c *contacts) reset() {
	*c = contacts{}
}
