// Package vocal implements a calculator for spoken arithmetic.
//
// Input is a transcribed sentence such as "what is open bracket 4 plus 6
// close bracket times 2". Operator keywords ("plus", "minus", "times",
// "divided by", and their synonyms) and decimal numbers are picked out of the
// sentence; every other word is ignored. Spoken bracket phrases ("open
// bracket", "end bracket", ...) group a subexpression, which is evaluated on
// its own and spliced back into the sentence as a number before the rest is
// evaluated.
//
// Multiplication and division are folded before addition and subtraction, but
// both passes share one running result, so sentences that add before they
// multiply do not always follow textbook precedence. "2 plus 3 times 4" is 8.
//
package vocal
