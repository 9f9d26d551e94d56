package lib

import (
	"fmt"
)

// ParseCommands scans corrupted memory and returns every well-formed
// command in the order it appears. Anything else is dropped.
func ParseCommands(memory string) []Command {
	buffer := newTokenBuffer()
	lex(memory, buffer.Write)
	p := parser{reader: buffer}
	return p.scan()
}

func parseTokens(tokens []token) []Command {
	p := parser{reader: newTokenBufferFrom(tokens)}
	return p.scan()
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() []Command {
	commands := []Command{}

	for {
		tok, done := p.reader.Next()
		if done {
			break
		}

		var cmd Command
		var ok bool
		switch tok.tokType {
		case tokenTypeMul:
			cmd, ok = p.scanMul()
		case tokenTypeDo:
			cmd, ok = p.scanToggle(Do{})
		case tokenTypeDont:
			cmd, ok = p.scanToggle(Dont{})
		default:
			// not the start of a command
		}

		if ok {
			commands = append(commands, cmd)
		}
	}

	return commands
}

// Reads after "mul"
func (p *parser) scanMul() (Command, bool) {
	if _, ok := p.requireToken(tokenTypeLParen); !ok {
		return nil, false
	}
	a, ok := p.requireToken(tokenTypeNumber)
	if !ok {
		return nil, false
	}
	if _, ok := p.requireToken(tokenTypeComma); !ok {
		return nil, false
	}
	b, ok := p.requireToken(tokenTypeNumber)
	if !ok {
		return nil, false
	}
	if _, ok := p.requireToken(tokenTypeRParen); !ok {
		return nil, false
	}
	return Mul{A: a.value, B: b.value}, true
}

// Reads after "do" or "don't"
func (p *parser) scanToggle(cmd Command) (Command, bool) {
	if _, ok := p.requireToken(tokenTypeLParen); !ok {
		return nil, false
	}
	if _, ok := p.requireToken(tokenTypeRParen); !ok {
		return nil, false
	}
	return cmd, true
}

// requireToken consumes the next token only if it has the given type, so a
// mismatch is left in place to start the next attempt.
func (p *parser) requireToken(tokType tokenType) (token, bool) {
	next, done := p.reader.Peek()
	if done || next.tokType != tokType {
		return token{}, false
	}
	_, _ = p.reader.Next()
	return next, true
}

func tokenString(tok token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.location.line,
		tok.location.col,
		tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeMul:
		return "mul"
	case tokenTypeDo:
		return "do"
	case tokenTypeDont:
		return "don't"
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypeComma:
		return ","
	case tokenTypeNumber:
		return fmt.Sprintf("number: %d", tok.value)
	default:
		return "?"
	}
}
