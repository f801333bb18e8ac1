package lines

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is the raw line view of a text file.
type Document struct {
	Lines           []string
	TrailingNewline bool
}

// Parse splits content into a Document. Empty content yields no lines.
func Parse(content []byte) Document {
	if len(content) == 0 {
		return Document{}
	}
	s := string(content)
	trailing := strings.HasSuffix(s, "\n")
	if trailing {
		s = s[:len(s)-1]
	}
	return Document{
		Lines:           strings.Split(s, "\n"),
		TrailingNewline: trailing,
	}
}

// Bytes serializes the document. A document with no lines is empty.
func (d Document) Bytes() []byte {
	return []byte(d.String())
}

// String serializes the document.
func (d Document) String() string {
	if len(d.Lines) == 0 {
		return ""
	}
	out := strings.Join(d.Lines, "\n")
	if d.TrailingNewline {
		out += "\n"
	}
	return out
}

// WithLines returns a copy of d holding lines. A document that grows from
// nothing ends with a newline, as every file the tool creates does.
func (d Document) WithLines(lines []string) Document {
	trailing := d.TrailingNewline
	if len(d.Lines) == 0 {
		trailing = true
	}
	return Document{Lines: lines, TrailingNewline: trailing}
}

// Text returns the line without a trailing carriage return.
func Text(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// Matches reports whether line is exactly marker, ignoring a trailing "\r".
func Matches(line, marker string) bool {
	return Text(line) == marker
}

// Contains reports whether marker appears anywhere in line.
func Contains(line, marker string) bool {
	return strings.Contains(line, marker)
}

// Mentions reports whether marker appears in line as a whole phrase: an
// occurrence glued to a letter, digit or underscore on a side where the
// marker itself starts or ends with one does not count. "# ENDPOINT" does
// not mention "# END"; "  # END" and "# END here" do.
func Mentions(line, marker string) bool {
	if marker == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(marker)
	last, _ := utf8.DecodeLastRuneInString(marker)
	for from := 0; from <= len(line); {
		i := strings.Index(line[from:], marker)
		if i == -1 {
			return false
		}
		i += from
		end := i + len(marker)
		before, _ := utf8.DecodeLastRuneInString(line[:i])
		after, _ := utf8.DecodeRuneInString(line[end:])
		glued := (i > 0 && isWord(first) && isWord(before)) ||
			(end < len(line) && isWord(last) && isWord(after))
		if !glued {
			return true
		}
		from = i + 1
	}
	return false
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsBlank reports whether the line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IndexOf returns the index of the first line at or after from that matches
// marker, or -1.
func IndexOf(lines []string, marker string, from int) int {
	for i := from; i < len(lines); i++ {
		if Matches(lines[i], marker) {
			return i
		}
	}
	return -1
}

// NeedsSeparator reports whether a blank line must precede content appended
// to lines: the file is non-empty and does not already end in a blank line.
func NeedsSeparator(lines []string) bool {
	return len(lines) > 0 && !IsBlank(lines[len(lines)-1])
}

// Append returns lines followed by extra, inserting one blank separator when
// NeedsSeparator says so. The input slice is never modified.
func Append(lines []string, extra ...string) []string {
	out := make([]string, 0, len(lines)+len(extra)+1)
	out = append(out, lines...)
	if NeedsSeparator(lines) {
		out = append(out, "")
	}
	return append(out, extra...)
}

// Equal reports whether two line slices are identical.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of lines that never aliases the input.
func Clone(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Ending returns the carriage return a line carries before its "\n", if any.
func Ending(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}
	return ""
}

// WithEnding returns a copy of lines where each line ends with ending
// ("" or "\r") and no other carriage return.
func WithEnding(lines []string, ending string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Text(l) + ending
	}
	return out
}
