package vocal

import (
	"io"
	"log/slog"
	"math/big"
	"strings"
)

// DefaultPrec is the default precision of calculations, the same as float64.
const DefaultPrec = 53

// Context is a context for evaluating spoken expressions. A Context holds only
// settings and is safe to use concurrently.
type Context struct {
	prec  uint
	words bool
	log   *slog.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt  uint
	wordsopt bool
	logopt   struct{ l *slog.Logger }
)

func (precopt) ctxOption()  {}
func (wordsopt) ctxOption() {}
func (logopt) ctxOption()   {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// SpokenNumbers sets whether spelled-out numbers like "seven" and
// "twenty-five" count as numbers. By default only digits do.
func SpokenNumbers(enable bool) ContextOption {
	return wordsopt(enable)
}

// Logger sets the logger that receives debug records tracing each evaluation.
// If it is nil or unset, slog.Default is used.
func Logger(l *slog.Logger) ContextOption {
	return logopt{l}
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is DefaultPrec.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: DefaultPrec}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			if opt > 0 {
				n.prec = uint(opt)
			}
		case wordsopt:
			n.words = bool(opt)
		case logopt:
			n.log = opt.l
		default:
			panic("vocal: unknown option type")
		}
	}
	return &n
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

func (ctx *Context) logger() *slog.Logger {
	if ctx.log == nil {
		return slog.Default()
	}
	return ctx.log
}

// num allocates a number at the context's precision.
func (ctx *Context) num() *big.Float {
	return new(big.Float).SetPrec(ctx.prec)
}

// Eval evaluates spoken arithmetic. Groups are resolved first, then the
// numbers and operator keywords left in the text are reduced to one value.
func (ctx *Context) Eval(text string) (*big.Float, error) {
	s, err := ctx.Resolve(text)
	if err != nil {
		return nil, err
	}
	t, err := ctx.Tokenize(s)
	if err != nil {
		return nil, err
	}
	r, err := ctx.Reduce(t)
	if err != nil {
		if e, ok := err.(*EmptyExpressionError); ok {
			e.Text = s
		}
		return nil, err
	}
	return r, nil
}

// Terms holds the numbers and operations extracted from spoken arithmetic.
// The two lists are independent; Reduce decides which numbers each
// operation applies to.
type Terms struct {
	Nums []*big.Float
	Ops  []Op
	// cols holds the position of each operator keyword, if known.
	cols []int
}

func (t *Terms) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range t.Nums {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x.Text('g', -1))
	}
	b.WriteString("] [")
	for i, op := range t.Ops {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Reduce folds terms into a single value. Multiplications and divisions are
// applied first, left to right, each folding into a running result that starts
// as the first number and replacing every number up to its right operand.
// Additions and subtractions then fold into the same running result, each
// taking the number after its own index in what remains. An operation with no
// number at its index is skipped. Reduce does not modify t.
func (ctx *Context) Reduce(t *Terms) (*big.Float, error) {
	nums := t.Nums
	ops := append([]Op(nil), t.Ops...)
	cols := make([]int, len(ops))
	copy(cols, t.cols)
	switch {
	case len(nums) < 2 && len(ops) > 0:
		return nil, &OperandError{Col: cols[0], Op: ops[0], Have: len(nums)}
	case len(nums) == 1 && len(ops) == 0:
		return ctx.num().Set(nums[0]), nil
	case len(nums) == 0:
		return nil, &EmptyExpressionError{}
	}

	r := ctx.num().Set(nums[0])
	for i := 0; i < len(ops); {
		op := ops[i]
		if !op.multiplicative() || i+1 >= len(nums) {
			i++
			continue
		}
		x := nums[i+1]
		if op == OpMul {
			r.Mul(r, x)
		} else {
			if x.Sign() == 0 {
				return nil, &DivisionError{Col: cols[i], Dividend: r}
			}
			r.Quo(r, x)
		}
		nums = append([]*big.Float{new(big.Float).Copy(r)}, nums[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
		cols = append(cols[:i], cols[i+1:]...)
	}
	for i, op := range ops {
		if i >= len(nums)-1 {
			continue
		}
		switch op {
		case OpAdd:
			r.Add(r, nums[i+1])
		case OpSub:
			r.Sub(r, nums[i+1])
		}
	}
	return r, nil
}

// Eval is a shortcut to read all of src and evaluate it with a new context.
func Eval(src io.RuneScanner, opts ...ContextOption) (*big.Float, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		b.WriteRune(r)
	}
	return NewContext(opts...).Eval(b.String())
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (*big.Float, error) {
	return NewContext(opts...).Eval(src)
}
