package lib

// tokenBuffer holds every token of an input before parsing starts. The
// cursor only moves forward.
type tokenBuffer struct {
	tokens  []token
	current int
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokens:  []token{},
		current: 0,
	}
}

func newTokenBufferFrom(tokens []token) *tokenBuffer {
	return &tokenBuffer{tokens: tokens}
}

func (tb *tokenBuffer) Next() (tok token, done bool) {
	tok, done = tb.Peek()
	if !done {
		tb.current++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (token, bool) {
	if tb.current >= len(tb.tokens) {
		return token{}, true
	}
	return tb.tokens[tb.current], false
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokens = append(tb.tokens, tok)
}

func (tb *tokenBuffer) Len() int {
	return len(tb.tokens)
}
