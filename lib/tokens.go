package lib

type tokenType int

const (
	tokenTypeMul tokenType = iota
	tokenTypeDo
	tokenTypeDont
	tokenTypeLParen
	tokenTypeComma
	tokenTypeRParen
	tokenTypeNumber
	tokenTypeOther
)

type charLocation struct {
	line int
	col  int
}

// Only number tokens carry a value.
type token struct {
	tokType  tokenType
	value    uint32
	location charLocation
}
