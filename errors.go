package vocal

import (
	"math/big"
	"strconv"
)

// NumberError is an error indicating a word that looks like a number but
// isn't one, e.g. "1.2.3". It implements InputError.
type NumberError struct {
	// Text is the word that could not be parsed.
	Text string
	// Col is the position of the word.
	Col int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "could not understand number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OperandError is an error indicating operator keywords with fewer than two
// numbers to apply them to. It implements InputError.
type OperandError struct {
	// Col is the position of the first operator keyword.
	Col int
	// Op is the first operation.
	Op Op
	// Have is the number of numbers found.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough numbers for the operation "+err.Op.String()+" (have "+strconv.Itoa(err.Have)+")")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating text with no numbers in it.
type EmptyExpressionError struct {
	// Text is the text that was evaluated.
	Text string
}

func (err *EmptyExpressionError) Error() string {
	if err.Text == "" {
		return "no numbers found in empty expression"
	}
	return "no numbers found in " + strconv.Quote(err.Text)
}

// DivisionError is an error indicating a division by zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the division keyword.
	Col int
	// Dividend is the running result that was to be divided.
	Dividend *big.Float
}

func (err *DivisionError) Error() string {
	s := "division by zero"
	if err.Dividend != nil {
		s = "division of " + err.Dividend.Text('g', -1) + " by zero"
	}
	return errpos(err.Col, s)
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// GroupError wraps an error from evaluating the contents of a bracketed group.
// Positions in Err are relative to Text.
type GroupError struct {
	// Text is the trimmed contents of the group.
	Text string
	// Err is the error evaluating Text.
	Err error
}

func (err *GroupError) Error() string {
	return "in group " + strconv.Quote(err.Text) + ": " + err.Err.Error()
}

func (err *GroupError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the word that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivisionError)(nil)
)
