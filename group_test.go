package vocal_test

import (
	"testing"

	"github.com/zephyrtronium/vocal"
)

func TestFindGroup(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want vocal.GroupSpan
	}{
		{"empty", "", vocal.GroupSpan{Start: -1, End: -1}},
		{"none", "5 plus 3", vocal.GroupSpan{Start: -1, End: -1}},
		{"simple", "(4 plus 6) times 2", vocal.GroupSpan{Start: 1, End: 9}},
		{"offset", "2 times (3)", vocal.GroupSpan{Start: 9, End: 10}},
		{"nested", "((1))", vocal.GroupSpan{Start: 1, End: 4}},
		{"first-sibling", "(1) (2)", vocal.GroupSpan{Start: 1, End: 2}},
		{"unclosed", "(5 plus 3", vocal.GroupSpan{Start: 1, End: -1}},
		{"unclosed-inner", "(1 (2)", vocal.GroupSpan{Start: 1, End: -1}},
		{"stray-close", ") (1)", vocal.GroupSpan{Start: -1, End: -1}},
		{"close-only", "1 ) 2", vocal.GroupSpan{Start: -1, End: -1}},
		{"empty-group", "()", vocal.GroupSpan{Start: 1, End: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := vocal.FindGroup(c.src)
			if got != c.want {
				t.Errorf("FindGroup(%q): want %+v, got %+v", c.src, c.want, got)
			}
			if got.Complete() != (c.want.Start >= 0 && c.want.End >= 0) {
				t.Errorf("FindGroup(%q): wrong completeness %t", c.src, got.Complete())
			}
		})
	}
}
