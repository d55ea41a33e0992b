// Package prompt provides simple interactive prompts.
//
// On a terminal, [Confirm] runs a single-keypress bubbletea prompt.
// When stdin is not a terminal (pipes, tests), it falls back to reading
// one line; end of input counts as a decline.
package prompt
