// Package shell implements the interactive calculator front end.
//
// A Shell reads one line at a time. A line is either one of the command words
// (exit, help, history, history unique, operators) or an expression to
// evaluate. Results are cached in a calculator.History: an expression that
// has been evaluated before reuses its recorded result, and every evaluation
// is recorded again so the history shows each request.
package shell
