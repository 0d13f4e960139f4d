package vocal

import (
	"errors"
	"fmt"
	"math/big"
)

// DefaultFormat is the format used to present results to a listener.
const DefaultFormat = "%.2f"

// Format formats a result with a fmt verb such as "%g" or "%.2f". An empty
// format means DefaultFormat.
func Format(r *big.Float, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return fmt.Sprintf(format, r)
}

// Say returns the sentence announcing a result.
func Say(r *big.Float, format string) string {
	return "The result is " + Format(r, format)
}

// Explain returns a message for a listener describing why evaluation failed.
// Errors from inside groups are described by their cause.
func Explain(err error) string {
	var (
		num *NumberError
		opd *OperandError
		emp *EmptyExpressionError
		div *DivisionError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &num):
		return "Could not understand number: '" + num.Text + "'"
	case errors.As(err, &opd):
		return "Not enough numbers for the operation."
	case errors.As(err, &emp):
		return "No numbers found in the expression."
	case errors.As(err, &div):
		return "Division by zero error!"
	default:
		return "Could not calculate the result. Please try again with a clearer expression."
	}
}
