package lib

import "fmt"

// Command is an instruction recovered from corrupted memory.
type Command interface {
	isCommand()
	String() string
}

type Mul struct {
	A uint32
	B uint32
}

type Do struct{}

type Dont struct{}

func (m Mul) isCommand()  {}
func (d Do) isCommand()   {}
func (d Dont) isCommand() {}

func (m Mul) String() string  { return fmt.Sprintf("mul(%d,%d)", m.A, m.B) }
func (d Do) String() string   { return "do()" }
func (d Dont) String() string { return "don't()" }
