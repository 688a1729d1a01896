// Package calculator evaluates arithmetic expressions over float64 and keeps
// a history of results.
//
// Expressions are numbers combined with the operators + - * / ^ and grouped
// with parentheses, e.g. "3 + 4 * -2 ^ (1-3)". A + or - that begins an
// expression or follows another operator is a sign. Operators of equal
// precedence group to the left, including ^, so "2^3^2" is 64. For negative
// bases, "a^b" is -(|a|^b), which is real even when b is fractional.
//
// Results never include negative zero, so "-0" evaluates to 0.
//
package calculator
