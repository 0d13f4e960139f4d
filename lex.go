package vocal

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a run of digits, decimal points and commas between digits,
	// possibly signed. It contains at least one digit but is not necessarily a
	// valid number.
	tokenNum
	// tokenWord is a run of letters, e.g. an operator keyword.
	tokenWord
	// tokenOpen is an open bracket, (.
	tokenOpen
	// tokenClose is a close bracket, ).
	tokenClose
	// tokenPunct is any other non-space rune or run of decimal points.
	tokenPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenWord:
		return "Word"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenPunct:
		return "Punct"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src []rune
	// k is the index of the next rune to scan. Columns are k+1.
	k   int
	buf strings.Builder
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// peek returns the rune n places past the next one, or -1 past the end.
func (l *lexer) peek(n int) rune {
	if l.k+n >= len(l.src) {
		return -1
	}
	return l.src[l.k+n]
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isNumRune(r rune) bool {
	return isDigit(r) || r == '.'
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns an EOF token.
func (l *lexer) next() lexToken {
	defer l.buf.Reset()
	for l.k < len(l.src) && unicode.IsSpace(l.src[l.k]) {
		l.k++
	}
	tok := lexToken{pos: l.k + 1}
	r := l.peek(0)
	switch {
	case r < 0:
		tok.kind = tokenEOF
	case isNumRune(r):
		tok.text, tok.kind = l.scanNum()
	case (r == '+' || r == '-') && isNumRune(l.peek(1)):
		l.buf.WriteRune(r)
		l.k++
		tok.text, tok.kind = l.scanNum()
	case unicode.IsLetter(r):
		l.scanWord()
		tok.text = l.buf.String()
		tok.kind = tokenWord
	case r == '(':
		l.k++
		tok.text = "("
		tok.kind = tokenOpen
	case r == ')':
		l.k++
		tok.text = ")"
		tok.kind = tokenClose
	default:
		l.k++
		tok.text = string(r)
		tok.kind = tokenPunct
	}
	return tok
}

// scanNum scans digits and decimal points into the buffer, which may already
// hold a sign. A comma between two digits stays in the run, as in "2,500".
// Decimal points that end the run are dropped, since they end a sentence more
// often than they belong to a number. A run with no digits is punctuation.
func (l *lexer) scanNum() (string, tokenKind) {
	dig := false
	for l.k < len(l.src) {
		r := l.src[l.k]
		switch {
		case isNumRune(r):
		case r == ',' && l.k > 0 && isDigit(l.src[l.k-1]) && isDigit(l.peek(1)):
		default:
			return l.numText(dig)
		}
		dig = dig || isDigit(r)
		l.buf.WriteRune(r)
		l.k++
	}
	return l.numText(dig)
}

func (l *lexer) numText(dig bool) (string, tokenKind) {
	if !dig {
		return l.buf.String(), tokenPunct
	}
	return strings.TrimRight(l.buf.String(), "."), tokenNum
}

// scanWord scans letters into the buffer. Apostrophes and hyphens join letters
// into one word, so "what's" and "twenty-five" are single words.
func (l *lexer) scanWord() {
	for l.k < len(l.src) {
		r := l.src[l.k]
		switch {
		case unicode.IsLetter(r):
		case (r == '\'' || r == '’' || r == '-') && unicode.IsLetter(l.peek(1)):
		default:
			return
		}
		l.buf.WriteRune(r)
		l.k++
	}
}

// Tokenize splits text into the numbers and operator keywords it contains, in
// the order they appear. Every other word is ignored, including brackets, so
// Tokenize is usually called on text that Resolve has already processed.
func (ctx *Context) Tokenize(text string) (*Terms, error) {
	t := new(Terms)
	l := lex(text)
	for {
		tok := l.next()
		switch tok.kind {
		case tokenEOF:
			ctx.logger().Debug("extracted terms", "numbers", t.Nums, "operators", t.Ops)
			return t, nil
		case tokenWord:
			if op, ok := LookupOp(tok.text); ok {
				t.Ops = append(t.Ops, op)
				t.cols = append(t.cols, tok.pos)
				continue
			}
			if !ctx.words {
				continue
			}
			s, ok := spokenNumber(tok.text)
			if !ok {
				continue
			}
			tok.text = s
			fallthrough
		case tokenNum:
			x, err := ctx.parseNum(tok.text, tok.pos)
			if err != nil {
				return nil, err
			}
			t.Nums = append(t.Nums, x)
		}
	}
}

// parseNum parses a decimal number at the context's precision. Commas must
// group the integer digits in threes.
func (ctx *Context) parseNum(s string, col int) (*big.Float, error) {
	d, ok := ungroup(s)
	if !ok {
		return nil, &NumberError{Text: s, Col: col}
	}
	x, _, err := ctx.num().Parse(d, 10)
	if err != nil {
		return nil, &NumberError{Text: s, Col: col}
	}
	return x, nil
}

// ungroup removes thousands separators from a number. It reports false if the
// commas are not between groups of three integer digits, e.g. "1,2" or
// "1.000,5".
func ungroup(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, true
	}
	num, frac, _ := strings.Cut(s, ".")
	if strings.Contains(frac, ",") {
		return "", false
	}
	digits := strings.TrimLeft(num, "+-")
	groups := strings.Split(digits, ",")
	if n := len(groups[0]); n < 1 || n > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
	}
	return strings.ReplaceAll(s, ",", ""), true
}
