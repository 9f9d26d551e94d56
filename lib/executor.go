package lib

type toggleState int

const (
	stateDo toggleState = iota
	stateDont
)

// executor replays commands in order. Arithmetic wraps at 32 bits.
type executor struct {
	state toggleState
	sum   uint32
}

func newExecutor() *executor {
	return &executor{
		state: stateDo,
		sum:   0,
	}
}

func (e *executor) execute(cmd Command) {
	switch c := cmd.(type) {
	case Mul:
		if e.state == stateDo {
			e.sum += c.A * c.B
		}
	case Do:
		e.state = stateDo
	case Dont:
		e.state = stateDont
	default:
		// nothing else changes the sum or the state
	}
}

// RunCommands returns the sum of the products of every mul that is enabled
// when it runs. Memory starts enabled.
func RunCommands(commands []Command) uint32 {
	e := newExecutor()
	for _, cmd := range commands {
		e.execute(cmd)
	}
	return e.sum
}

// SumProducts ignores do() and don't() and adds up every mul.
func SumProducts(commands []Command) uint32 {
	var sum uint32
	for _, cmd := range commands {
		if m, ok := cmd.(Mul); ok {
			sum += m.A * m.B
		}
	}
	return sum
}
