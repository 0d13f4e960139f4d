package vocal_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/zephyrtronium/vocal"
)

func TestSay(t *testing.T) {
	cases := []struct {
		r    float64
		fmt  string
		want string
	}{
		{8, "", "The result is 8.00"},
		{8, "%.2f", "The result is 8.00"},
		{1.25, "%g", "The result is 1.25"},
		{-12, "%.1f", "The result is -12.0"},
	}
	for _, c := range cases {
		if got := vocal.Say(big.NewFloat(c.r), c.fmt); got != c.want {
			t.Errorf("Say(%g, %q): want %q, got %q", c.r, c.fmt, c.want, got)
		}
	}
}

func TestExplain(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"ok", "1 plus 1", ""},
		{"number", "1.2.3 plus 4", "Could not understand number: '1.2.3'"},
		{"operands", "plus 5", "Not enough numbers for the operation."},
		{"empty", "what is this", "No numbers found in the expression."},
		{"div-zero", "10 divided by 0", "Division by zero error!"},
		{"group", "open bracket 1 divided by 0 close bracket", "Division by zero error!"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := vocal.EvalString(c.src)
			if got := vocal.Explain(err); got != c.want {
				t.Errorf("Explain for %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
	if got := vocal.Explain(errors.New("boom")); got != "Could not calculate the result. Please try again with a clearer expression." {
		t.Errorf("wrong fallback message %q", got)
	}
}
