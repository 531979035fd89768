package tibs

// TokenType identifies the lexical category a Token belongs to.
type TokenType int

const (
	Null TokenType = iota
	Boolean
	Number
	Bytes
	String
	Ref
	MapBegin
	MapEnd
	ListBegin
	ListEnd
	ScopeBegin
	ScopeEnd
	EOS
	Error
)

// String returns the token type's name, for diagnostics.
func (t TokenType) String() string {
	switch t {
	case Null:
		return "NULL"
	case Boolean:
		return "BOOLEAN"
	case Number:
		return "NUMBER"
	case Bytes:
		return "BYTES"
	case String:
		return "STRING"
	case Ref:
		return "REF"
	case MapBegin:
		return "MAP_BEGIN"
	case MapEnd:
		return "MAP_END"
	case ListBegin:
		return "LIST_BEGIN"
	case ListEnd:
		return "LIST_END"
	case ScopeBegin:
		return "SCOPE_BEGIN"
	case ScopeEnd:
		return "SCOPE_END"
	case EOS:
		return "EOS"
	default:
		return "ERROR"
	}
}

// Token is a lexical unit recognized within an input buffer: Offset points
// at the token's first byte, and Length spans it inclusively. Indexed
// (ARRAY/TRIE) open markers report Length 2 to cover the "#" prefix byte.
type Token struct {
	Type   TokenType
	Offset int
	Length int
}

// Indexed reports whether a LIST_BEGIN or MAP_BEGIN token opened the
// indexed (ARRAY/TRIE) form, signaled by the tokenizer via Length 2.
func (tok Token) Indexed() bool {
	return (tok.Type == ListBegin || tok.Type == MapBegin) && tok.Length == 2
}

// End returns the offset one past the token's last byte, the position a
// subsequent Scan call should resume from.
func (tok Token) End() int {
	return tok.Offset + tok.Length
}
