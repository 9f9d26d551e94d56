package lib

import (
	"math"
)

type charInfo struct {
	ch       rune
	location charLocation
}

func lex(memory string, emit func(token)) {
	l := newLexer(memory, emit)
	l.scan()
}

// scanTokens is lex with the tokens gathered into a slice.
func scanTokens(memory string) []token {
	tokens := []token{}
	lex(memory, func(t token) {
		tokens = append(tokens, t)
	})
	return tokens
}

type lexer struct {
	memory           []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(token)
}

func newLexer(memory string, emit func(token)) *lexer {
	runes := []rune(memory)
	return &lexer{
		memory:           runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tokType tokenType, location charLocation) {
	l.emitCallback(token{tokType: tokType, location: location})
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.memory[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if !ok {
		return info, false
	}
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, true
}

// advanceIf consumes the next char only when it is ch.
func (l *lexer) advanceIf(ch rune) bool {
	next, ok := l.peek(0)
	if !ok || next.ch != ch {
		return false
	}
	_, _ = l.advance()
	return true
}

func (l *lexer) scan() {
	for l.next() {
	}
}

func (l *lexer) next() bool {
	chInfo, ok := l.advance()
	if !ok {
		return false
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emit(tokenTypeLParen, chInfo.location)
	case ')':
		l.emit(tokenTypeRParen, chInfo.location)
	case ',':
		l.emit(tokenTypeComma, chInfo.location)
	case 'm':
		l.emit(l.scanKeyword("ul", tokenTypeMul), chInfo.location)
	case 'd':
		l.emit(l.scanDo(), chInfo.location)
	default:
		if isDigit(ch) {
			l.scanNumber(chInfo)
		} else {
			l.emit(tokenTypeOther, chInfo.location)
		}
	}

	return true
}

// scanKeyword matches rest one char at a time after the keyword's first
// char. Whatever matched before a mismatch stays consumed.
func (l *lexer) scanKeyword(rest string, tokType tokenType) tokenType {
	for _, ch := range rest {
		if !l.advanceIf(ch) {
			return tokenTypeOther
		}
	}
	return tokType
}

// Reads after "d". Both "do" and "don't" share the prefix.
func (l *lexer) scanDo() tokenType {
	if !l.advanceIf('o') {
		return tokenTypeOther
	}
	if !l.advanceIf('n') {
		return tokenTypeDo
	}
	return l.scanKeyword("'t", tokenTypeDont)
}

// A run too large for uint32 can never be an operand, so it is consumed
// whole and reported as other.
func (l *lexer) scanNumber(first charInfo) {
	value := uint64(first.ch - '0')
	overflow := false

	for {
		next, ok := l.peek(0)
		if !ok || !isDigit(next.ch) {
			break
		}
		_, _ = l.advance()
		if !overflow {
			value = value*10 + uint64(next.ch-'0')
			overflow = value > math.MaxUint32
		}
	}

	if overflow {
		l.emit(tokenTypeOther, first.location)
		return
	}
	l.emitCallback(token{tokType: tokenTypeNumber, value: uint32(value), location: first.location})
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
