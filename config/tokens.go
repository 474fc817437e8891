// This file is part of srb2input.
//
// srb2input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// srb2input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with srb2input.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"strings"
)

// Tokens represents a single tokenised command. This can be used to walk
// through the arguments of the command (using Get()) for easier parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remaining returns the count of remaining tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token in the list without advancing the list.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Rest returns the tokens that have not yet been traversed. The list is
// traversed to the end.
func (tk *Tokens) Rest() []string {
	r := tk.tokens[tk.curr:]
	tk.curr = len(tk.tokens)
	return r
}

// TokeniseInput creates and returns a new Tokens instance for a single
// command. Quoted arguments are kept as one token without the quotes. An
// unterminated quote runs to the end of the input.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)
	return &Tokens{
		input:  input,
		tokens: tokeniseInput(input),
	}
}

func tokeniseInput(input string) []string {
	var tokens []string
	var tok strings.Builder

	// a quoted token can be empty so we need to know whether a token has been
	// started as well as its content
	started := false
	quoted := false

	for _, r := range input {
		switch {
		case quoted:
			if r == '"' {
				quoted = false
			} else {
				tok.WriteRune(r)
			}
		case r == '"':
			quoted = true
			started = true
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			if started {
				tokens = append(tokens, tok.String())
				tok.Reset()
				started = false
			}
		default:
			tok.WriteRune(r)
			started = true
		}
	}
	if started {
		tokens = append(tokens, tok.String())
	}

	return tokens
}

// SplitCommands divides a line into commands. Commands are separated by
// semicolons and anything after a double slash is a comment. Semicolons and
// slashes inside quotes are part of the command.
func SplitCommands(line string) []string {
	var cmds []string

	quoted := false
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				cmds = append(cmds, line[start:i])
				start = i + 1
			}
		case '/':
			if !quoted && i+1 < len(line) && line[i+1] == '/' {
				cmds = append(cmds, line[start:i])
				start = len(line)
				i = len(line)
			}
		}
	}
	if start < len(line) {
		cmds = append(cmds, line[start:])
	}

	// empty commands are dropped
	n := 0
	for _, c := range cmds {
		if strings.TrimSpace(c) != "" {
			cmds[n] = c
			n++
		}
	}

	return cmds[:n]
}
