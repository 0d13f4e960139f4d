package vocal

import "strings"

// GroupSpan locates the contents of a bracketed group in a string. Start is
// the byte index just past the open bracket, and End is the byte index of the
// matching close bracket. Either is -1 if it was not found.
type GroupSpan struct {
	Start, End int
}

// Complete reports whether both brackets of the group were found.
func (g GroupSpan) Complete() bool {
	return g.Start >= 0 && g.End >= 0
}

// FindGroup finds the first group in text opened at nesting depth zero. The
// scan stops at the bracket that closes that group, so later groups are left
// for later passes. Close brackets with no open bracket before them lower the
// depth anyway, which can hide the groups that follow.
func FindGroup(text string) GroupSpan {
	g := GroupSpan{Start: -1, End: -1}
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			if depth == 0 {
				g.Start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && g.Start >= 0 {
				g.End = i
				return g
			}
		}
	}
	return g
}

// Resolve replaces spoken brackets in text with ( and ), then evaluates each
// complete group in turn and splices its value into the text in place of the
// group. The returned text contains no complete groups. Brackets left
// unmatched stay in the text; Tokenize ignores them.
func (ctx *Context) Resolve(text string) (string, error) {
	log := ctx.logger()
	for {
		text = Normalize(text)
		log.Debug("processing text", "text", text)
		g := FindGroup(text)
		if !g.Complete() {
			if g.Start >= 0 {
				log.Debug("unbalanced group", "col", g.Start)
			}
			return text, nil
		}
		inner := strings.TrimSpace(text[g.Start:g.End])
		log.Debug("found group", "start", g.Start, "end", g.End, "content", inner)
		r, err := ctx.Eval(inner)
		if err != nil {
			return "", &GroupError{Text: inner, Err: err}
		}
		// Spaces keep the value from running into neighboring words.
		text = text[:g.Start-1] + " " + r.Text('f', -1) + " " + text[g.End+1:]
		log.Debug("spliced group", "text", text)
	}
}
