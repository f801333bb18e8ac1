package anchor

import (
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/lines"
)

// Line is the parsed view of an anchor line. Index is 0-based.
type Line struct {
	Index  int
	Span   int
	Indent string
	Prefix string
	Tokens []string
	Suffix string
}

// Result is the outcome of Align. On error Lines is the input.
type Result struct {
	Lines    []string
	Changed  bool
	Appended bool
	Previous []string
	// Shadowed lists further lines (1-based) that also carry the prefix.
	// Only the first one is managed.
	Shadowed []int
}

// Dedupe drops empty and repeated tokens, keeping first occurrences in order.
func Dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Current parses the first anchor line carrying prefix, if any.
func Current(content []string, prefix string, format Format) (Line, bool, error) {
	if err := validatePrefix(prefix); err != nil {
		return Line{}, false, err
	}

	idx := indexOf(content, prefix, 0)
	if idx == -1 {
		return Line{}, false, nil
	}

	text := lines.Text(content[idx])
	indent := text[:len(text)-len(strings.TrimLeft(text, " \t"))]
	rest := text[len(indent)+len(prefix):]

	parsed, err := format.Parse(rest, content[idx+1:])
	if err != nil {
		return Line{}, false, errors.Wrapf(err, errors.ErrUnparsableAnchor, "cannot tokenize %s line", format.Name()).
			WithDetail("prefix", prefix).
			WithDetail("line", idx+1)
	}

	return Line{
		Index:  idx,
		Span:   1 + parsed.Consumed,
		Indent: indent,
		Prefix: prefix,
		Tokens: parsed.Tokens,
		Suffix: parsed.Suffix,
	}, true, nil
}

// Align rewrites the first line starting with prefix (ignoring indentation)
// to prefix followed by the rendered desired tokens. Without such a line one
// is appended, after a blank separator when the file does not end in one.
func Align(content []string, prefix string, format Format, desired []string) (Result, error) {
	unchanged := Result{Lines: content}

	tokens := Dedupe(desired)
	if err := validateTokens(tokens); err != nil {
		return unchanged, err
	}
	rendered, err := format.Render(tokens)
	if err != nil {
		return unchanged, err
	}

	current, found, err := Current(content, prefix, format)
	if err != nil {
		return unchanged, err
	}

	var out []string
	if found {
		anchorLine := content[current.Index]
		line := current.Indent + prefix + rendered + current.Suffix + lines.Ending(anchorLine)
		out = make([]string, 0, len(content)-current.Span+1)
		out = append(out, content[:current.Index]...)
		out = append(out, line)
		out = append(out, content[current.Index+current.Span:]...)
	} else {
		ending := ""
		if len(content) > 0 {
			ending = lines.Ending(content[len(content)-1])
		}
		out = lines.Append(content, prefix+rendered+ending)
		if ending != "" && lines.NeedsSeparator(content) {
			out[len(content)] = ending
		}
	}

	changed := !lines.Equal(out, content)
	if !changed {
		out = content
	}

	res := Result{
		Lines:    out,
		Changed:  changed,
		Appended: !found,
		Previous: current.Tokens,
	}
	if found {
		for i := indexOf(content, prefix, current.Index+current.Span); i != -1; i = indexOf(content, prefix, i+1) {
			res.Shadowed = append(res.Shadowed, i+1)
		}
	}
	return res, nil
}

func indexOf(content []string, prefix string, from int) int {
	for i := from; i < len(content); i++ {
		if strings.HasPrefix(strings.TrimLeft(lines.Text(content[i]), " \t"), prefix) {
			return i
		}
	}
	return -1
}

// validateTokens keeps the anchor on one physical line whatever the format.
func validateTokens(tokens []string) error {
	for _, t := range tokens {
		if strings.ContainsAny(t, "\r\n") {
			return errors.Newf(errors.ErrInvalidInput, "token %q must be a single line", t).
				WithDetail("token", t)
		}
	}
	return nil
}

func validatePrefix(prefix string) error {
	if strings.TrimSpace(prefix) == "" {
		return errors.New(errors.ErrInvalidInput, "anchor prefix must not be empty")
	}
	if strings.ContainsAny(prefix, "\r\n") {
		return errors.New(errors.ErrInvalidInput, "anchor prefix must be a single line")
	}
	return nil
}
