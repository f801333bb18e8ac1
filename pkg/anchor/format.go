package anchor

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// Parsed is a tokenized anchor value.
type Parsed struct {
	Tokens []string
	// Consumed counts the lines after the anchor line that belong to the
	// declaration.
	Consumed int
	// Suffix is text after the value that is kept on rewrite, e.g. a comment.
	Suffix string
}

// Format tokenizes and renders the value that follows an anchor prefix.
type Format interface {
	Name() string
	// Parse tokenizes rest, the text after the prefix. following holds the
	// lines after the anchor line for formats that allow continuation.
	Parse(rest string, following []string) (Parsed, error)
	Render(tokens []string) (string, error)
}

// Format names accepted by Lookup.
const (
	FormatShellArray = "shell-array"
	FormatDelimited  = "delimited"
)

// Lookup returns the named format. separator and quote only apply to the
// delimited format.
func Lookup(name, separator, quote string) (Format, error) {
	switch name {
	case "", FormatShellArray:
		return ShellArray{}, nil
	case FormatDelimited:
		if separator == "" {
			separator = ","
		}
		return Delimited{Separator: separator, Quote: quote}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown anchor format %q", name).
			WithDetail("format", name)
	}
}

// ShellArray handles zsh/bash array literals: `(git 'two words' "x")`.
// Declarations may span several lines; a rewrite collapses them to one.
type ShellArray struct{}

func (ShellArray) Name() string { return FormatShellArray }

func (ShellArray) Parse(rest string, following []string) (Parsed, error) {
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, "(") {
		return Parsed{}, fmt.Errorf("expected '(' to open the array")
	}

	var (
		tokens   []string
		word     strings.Builder
		inWord   bool
		quote    rune
		consumed int
	)
	flush := func() {
		if inWord {
			tokens = append(tokens, word.String())
			word.Reset()
			inWord = false
		}
	}

	text := []rune(trimmed[1:])
	for {
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
					continue
				}
				if quote == '"' && c == '\\' && i+1 < len(text) {
					i++
					c = text[i]
				}
				word.WriteRune(c)
			case c == '\'' || c == '"':
				quote = c
				inWord = true
			case c == '\\':
				if i+1 < len(text) {
					i++
					word.WriteRune(text[i])
					inWord = true
				}
			case c == ' ' || c == '\t':
				flush()
			case c == '#' && !inWord:
				i = len(text)
			case c == ')':
				flush()
				return Parsed{Tokens: tokens, Consumed: consumed, Suffix: string(text[i+1:])}, nil
			case c == '(':
				return Parsed{}, fmt.Errorf("nested '(' is not supported")
			default:
				word.WriteRune(c)
				inWord = true
			}
		}

		if quote != 0 {
			return Parsed{}, fmt.Errorf("unbalanced %c quote", quote)
		}
		flush()
		if consumed >= len(following) {
			return Parsed{}, fmt.Errorf("missing ')' to close the array")
		}
		text = []rune(strings.TrimSuffix(following[consumed], "\r"))
		consumed++
	}
}

func (ShellArray) Render(tokens []string) (string, error) {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = shellQuote(t)
	}
	return "(" + strings.Join(quoted, " ") + ")", nil
}

func shellQuote(token string) string {
	if !strings.ContainsAny(token, " \t'\"\\#()$`;&|<>*?[]{}~") {
		return token
	}
	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}

// Delimited handles separator-joined lists, optionally wrapped in a quote
// character: `"a:b:c"` with Separator ":" and Quote `"`.
type Delimited struct {
	Separator string
	Quote     string
}

func (Delimited) Name() string { return FormatDelimited }

func (d Delimited) Parse(rest string, _ []string) (Parsed, error) {
	value := strings.TrimSpace(rest)
	suffix := ""
	if d.Quote != "" && strings.HasPrefix(value, d.Quote) {
		closing := strings.Index(value[len(d.Quote):], d.Quote)
		if closing == -1 {
			return Parsed{}, fmt.Errorf("unbalanced %s quote", d.Quote)
		}
		closing += len(d.Quote)
		suffix = value[closing+len(d.Quote):]
		value = value[len(d.Quote):closing]
	}

	var tokens []string
	for _, part := range d.split(value) {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return Parsed{Tokens: tokens, Suffix: suffix}, nil
}

func (d Delimited) split(value string) []string {
	sep := strings.TrimSpace(d.Separator)
	if sep == "" {
		return strings.Fields(value)
	}
	return strings.Split(value, sep)
}

func (d Delimited) Render(tokens []string) (string, error) {
	sep := strings.TrimSpace(d.Separator)
	for _, t := range tokens {
		clash := strings.Contains(t, sep)
		if sep == "" {
			clash = strings.ContainsAny(t, " \t")
		}
		if clash || (d.Quote != "" && strings.Contains(t, d.Quote)) {
			return "", errors.Newf(errors.ErrInvalidInput, "token %q cannot be rendered with separator %q", t, d.Separator).
				WithDetail("token", t)
		}
	}
	return d.Quote + strings.Join(tokens, d.Separator) + d.Quote, nil
}
