package vocal

import (
	"regexp"
	"strconv"
	"strings"
)

// Op is an arithmetic operation named by a spoken keyword.
type Op int8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// multiplicative reports whether op is folded in the first evaluation pass.
func (op Op) multiplicative() bool {
	return op == OpMul || op == OpDiv
}

// keywords lists the words for each operation in the order they are presented
// to users.
var keywords = [...][]string{
	OpAdd: {"add", "plus", "sum", "edition", "addition", "adding", "summarize", "summarizing", "summation"},
	OpSub: {"minus", "subtract", "subtraction", "difference", "takeaway"},
	OpMul: {"multiply", "multiplication", "multiplying", "multiplied", "into", "times", "product"},
	OpDiv: {"divide", "division", "divided", "by", "quotient"},
}

var opwords = func() map[string]Op {
	m := make(map[string]Op)
	for op, words := range keywords {
		for _, w := range words {
			m[w] = Op(op)
		}
	}
	return m
}()

// LookupOp returns the operation named by a single word. Matching is
// case-insensitive but otherwise exact.
func LookupOp(word string) (Op, bool) {
	op, ok := opwords[strings.ToLower(word)]
	return op, ok
}

// Keywords returns the words that name op.
func Keywords(op Op) []string {
	if op < OpAdd || op > OpDiv {
		return nil
	}
	return append([]string(nil), keywords[op]...)
}

// OpenPhrases and ClosePhrases are the spoken forms of brackets.
var (
	OpenPhrases  = []string{"open parenthesis", "start bracket", "bracket open", "parenthesis open", "open bracket"}
	ClosePhrases = []string{"close parenthesis", "end bracket", "bracket close", "parenthesis close", "close bracket"}
)

func phraseRE(phrases []string) *regexp.Regexp {
	q := make([]string, len(phrases))
	for i, p := range phrases {
		q[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(q, "|") + `)`)
}

var (
	openRE  = phraseRE(OpenPhrases)
	closeRE = phraseRE(ClosePhrases)
)

// Normalize replaces spoken bracket phrases in text with ( and ). Nothing else
// in the text changes.
func Normalize(text string) string {
	text = openRE.ReplaceAllLiteralString(text, "(")
	return closeRE.ReplaceAllLiteralString(text, ")")
}
