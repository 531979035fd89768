package tibs

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/cache"
	"github.com/arloliu/nibs/codec"
	"github.com/arloliu/nibs/errs"
	"github.com/arloliu/nibs/internal/pool"
)

// Parse drives the tokenizer over buf and recursively decodes exactly one
// top-level value, returning the Nibs node for it and the offset just past
// the value's final token.
func Parse(a *arena.Arena, buf []byte) (*arena.SliceNode, int, error) {
	return parseValue(a, buf, 0, nil)
}

// ParseWithCache behaves like Parse, but consults c before encoding each
// STRING or BYTES literal, reusing the encoded bytes already produced for
// the same literal earlier in the document (or in an earlier
// ParseWithCache call sharing c) instead of encoding them again. Each
// occurrence still gets its own SliceNode in the chain. Passing a nil c
// makes this identical to Parse.
func ParseWithCache(a *arena.Arena, buf []byte, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	return parseValue(a, buf, 0, c)
}

func parseValue(a *arena.Arena, buf []byte, offset int, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	tok := Scan(buf, offset)

	switch tok.Type {
	case Null:
		node, err := codec.EncodeNull(a)
		return node, tok.End(), err
	case Boolean:
		node, err := codec.EncodeBoolean(a, buf[tok.Offset] == 't')
		return node, tok.End(), err
	case Number:
		return parseNumber(a, buf, tok)
	case String:
		return parseString(a, buf, tok, c)
	case Bytes:
		return parseBytes(a, buf, tok, c)
	case Ref:
		return parseRef(a, buf, tok)
	case ListBegin:
		return parseList(a, buf, tok, c)
	case MapBegin:
		return parseMap(a, buf, tok, c)
	case ScopeBegin:
		return parseScope(a, buf, tok, c)
	case EOS:
		return nil, tok.End(), fmt.Errorf("%w: unexpected end of input", errs.ErrInvalidTibs)
	default:
		return nil, tok.End(), fmt.Errorf("%w: unrecognized token at offset %d", errs.ErrInvalidTibs, tok.Offset)
	}
}

func parseNumber(a *arena.Arena, buf []byte, tok Token) (*arena.SliceNode, int, error) {
	text := string(buf[tok.Offset:tok.End()])

	switch text {
	case "inf":
		node, err := codec.EncodeDouble(a, math.Inf(1))
		return node, tok.End(), err
	case "-inf":
		node, err := codec.EncodeDouble(a, math.Inf(-1))
		return node, tok.End(), err
	case "nan":
		node, err := codec.EncodeDouble(a, math.NaN())
		return node, tok.End(), err
	}

	if !strings.ContainsAny(text, ".eE") {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, tok.End(), fmt.Errorf("%w: %q: %s", errs.ErrOverflow, text, err)
			}

			return nil, tok.End(), fmt.Errorf("%w: %q: %s", errs.ErrInvalidTibs, text, err)
		}

		node, err := codec.EncodeInteger(a, n)
		return node, tok.End(), err
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, tok.End(), fmt.Errorf("%w: %q: %s", errs.ErrInvalidTibs, text, err)
	}

	node, err := codec.EncodeDouble(a, f)
	return node, tok.End(), err
}

func parseString(a *arena.Arena, buf []byte, tok Token, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	raw := buf[tok.Offset+1 : tok.End()-1] // strip the surrounding quotes

	unescaped, err := unescapeString(raw)
	if err != nil {
		return nil, tok.End(), err
	}

	node, err := codec.EncodeStringCached(a, unescaped, c)

	return node, tok.End(), err
}

// unescapeString resolves backslash escapes in a quoted STRING literal's
// interior. Recognized escapes mirror JSON's: \" \\ \/ \n \t \r \b \f; any
// other escaped byte passes through unchanged.
func unescapeString(raw []byte) (string, error) {
	if !strings.ContainsRune(string(raw), '\\') {
		return string(raw), nil
	}

	b := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(b)
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			_ = b.WriteByte(c)
			continue
		}

		if i+1 >= len(raw) {
			return "", fmt.Errorf("%w: dangling escape in string literal", errs.ErrInvalidTibs)
		}

		i++
		switch raw[i] {
		case 'n':
			_ = b.WriteByte('\n')
		case 't':
			_ = b.WriteByte('\t')
		case 'r':
			_ = b.WriteByte('\r')
		case 'b':
			_ = b.WriteByte('\b')
		case 'f':
			_ = b.WriteByte('\f')
		default:
			_ = b.WriteByte(raw[i])
		}
	}

	return string(b.Bytes()), nil
}

func parseBytes(a *arena.Arena, buf []byte, tok Token, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	interior := buf[tok.Offset+1 : tok.End()-1]

	hex := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(hex)
	hex.Grow(len(interior))

	for _, ch := range interior {
		if isHexDigit(ch) {
			_ = hex.WriteByte(ch)
		}
	}

	node, err := codec.EncodeBytesFromHexCached(a, string(hex.Bytes()), c)

	return node, tok.End(), err
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func parseRef(a *arena.Arena, buf []byte, tok Token) (*arena.SliceNode, int, error) {
	text := string(buf[tok.Offset+1 : tok.End()])

	idx, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, tok.End(), fmt.Errorf("%w: bad ref index %q: %s", errs.ErrInvalidTibs, text, err)
	}

	node, err := codec.EncodeRef(a, idx)

	return node, tok.End(), err
}

func parseList(a *arena.Arena, buf []byte, open Token, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	offset := open.End()

	var children []*arena.SliceNode
	for {
		peek := Scan(buf, offset)
		if peek.Type == ListEnd {
			offset = peek.End()
			break
		}
		if peek.Type == EOS {
			return nil, offset, fmt.Errorf("%w: unterminated list", errs.ErrInvalidTibs)
		}

		child, next, err := parseValue(a, buf, offset, c)
		if err != nil {
			return nil, next, err
		}

		children = append(children, child)
		offset = next
	}

	if open.Indexed() {
		node, err := codec.EncodeArray(a, nil, children...)
		return node, offset, err
	}

	node, err := codec.EncodeList(a, children...)

	return node, offset, err
}

func parseMap(a *arena.Arena, buf []byte, open Token, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	offset := open.End()

	var children []*arena.SliceNode
	for {
		peek := Scan(buf, offset)
		if peek.Type == MapEnd {
			offset = peek.End()
			break
		}
		if peek.Type == EOS {
			return nil, offset, fmt.Errorf("%w: unterminated map", errs.ErrInvalidTibs)
		}

		child, next, err := parseValue(a, buf, offset, c)
		if err != nil {
			return nil, next, err
		}

		children = append(children, child)
		offset = next
	}

	if len(children)%2 != 0 {
		return nil, offset, fmt.Errorf("%w: map has an odd number of children", errs.ErrInvalidTibs)
	}

	if open.Indexed() {
		node, err := codec.EncodeTrie(a, nil, children...)
		return node, offset, err
	}

	node, err := codec.EncodeMap(a, children...)

	return node, offset, err
}

func parseScope(a *arena.Arena, buf []byte, open Token, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	value, offset, err := parseValue(a, buf, open.End(), c)
	if err != nil {
		return nil, offset, err
	}

	refs, offset, err := parseValue(a, buf, offset, c)
	if err != nil {
		return nil, offset, err
	}

	end := Scan(buf, offset)
	if end.Type != ScopeEnd {
		return nil, offset, fmt.Errorf("%w: scope expects exactly two sub-values", errs.ErrInvalidTibs)
	}

	node, err := codec.EncodeScope(a, value, refs)

	return node, end.End(), err
}
