// Package prompt reads setting values from a terminal or an answers file,
// substituting defaults for blank replies.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultToken is the reply that explicitly asks for the default value.
const DefaultToken = "d"

// Resolver asks for one value at a time.
type Resolver struct {
	in      *bufio.Reader
	out     io.Writer
	answers map[string]string
}

// NewResolver reads replies from in and writes prompts to out.
func NewResolver(in io.Reader, out io.Writer) *Resolver {
	return &Resolver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// WithAnswers makes the resolver take replies from answers instead of
// reading input. Missing keys behave like a blank reply.
func (r *Resolver) WithAnswers(answers map[string]string) *Resolver {
	r.answers = answers
	return r
}

// Resolve prints text, takes one reply and applies Substitute.
func (r *Resolver) Resolve(key, text, def string) string {
	fmt.Fprint(r.out, text)

	var reply string
	if r.answers != nil {
		reply = r.answers[key]
		fmt.Fprintln(r.out, reply)
	} else {
		reply = r.readLine()
	}

	value := Substitute(reply, def)
	log.Debug().Str("setting", key).Str("value", value).Bool("default", value == def).Msg("Resolved setting")
	return value
}

// readLine returns the next line without its terminator. A closed input
// reads as a blank reply.
func (r *Resolver) readLine() string {
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("Failed to read input, using default")
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// Substitute returns def when reply is blank or the default token, and the
// trimmed reply otherwise. Replies are not validated.
func Substitute(reply, def string) string {
	v := strings.TrimSpace(reply)
	if v == "" || v == DefaultToken {
		return def
	}
	return v
}
