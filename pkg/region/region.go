package region

import (
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/lines"
)

// WarningKind classifies non-fatal anomalies found while reconciling.
type WarningKind string

const (
	// WarnDuplicateRegion marks a complete marker pair after the first one.
	WarnDuplicateRegion WarningKind = "duplicate_region"
	// WarnDanglingStart marks an extra start marker with no end after it.
	WarnDanglingStart WarningKind = "dangling_start"
)

// Warning is a pre-existing anomaly the reconciler saw but did not repair.
// Line is 1-based.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

// Span holds the 0-based indexes of a region's marker lines.
type Span struct {
	Start int
	End   int
}

// BodyLen is the number of lines between the markers.
func (s Span) BodyLen() int {
	return s.End - s.Start - 1
}

// Result is the outcome of a reconciliation. On error Lines is the input.
type Result struct {
	Lines    []string
	Changed  bool
	Inserted bool
	Removed  bool
	Warnings []Warning
}

// Find locates the region delimited by m. It returns found=false when the
// file holds no start marker at all. The region is the first start marker
// and the first end marker after it; a second start marker before that end
// is MALFORMED_REGION rather than being folded into the body.
func Find(content []string, m Markers) (Span, bool, []Warning, error) {
	if err := m.Validate(); err != nil {
		return Span{}, false, nil, err
	}

	start := lines.IndexOf(content, m.Start, 0)
	if start == -1 {
		if err := checkLookalikes(content, m); err != nil {
			return Span{}, false, nil, err
		}
		return Span{}, false, nil, nil
	}

	if orphan := lines.IndexOf(content[:start], m.End, 0); orphan != -1 {
		return Span{}, false, nil, errors.New(errors.ErrAmbiguousMarker, "end marker appears before start marker").
			WithDetail("marker", m.End).
			WithDetail("line", orphan+1)
	}

	end := -1
	for i := start + 1; i < len(content); i++ {
		if lines.Matches(content[i], m.End) {
			end = i
			break
		}
		if lines.Matches(content[i], m.Start) {
			return Span{}, false, nil, errors.New(errors.ErrMalformedRegion, "start marker repeated before end marker").
				WithDetail("marker", m.Start).
				WithDetail("line", i+1)
		}
	}
	if end == -1 {
		return Span{}, false, nil, errors.New(errors.ErrMalformedRegion, "start marker has no matching end marker").
			WithDetail("marker", m.Start).
			WithDetail("line", start+1)
	}

	return Span{Start: start, End: end}, true, extraPairs(content, m, end+1), nil
}

// checkLookalikes rejects files where a marker shows up on a line that is
// not an exact marker line, such as an indented marker or one followed by
// more text. Marker text that is only part of a longer word is ignored. Appending a fresh region there would leave two
// blocks that look alike to a reader.
func checkLookalikes(content []string, m Markers) error {
	for i, l := range content {
		for _, marker := range []string{m.Start, m.End} {
			if !lines.Mentions(l, marker) {
				continue
			}
			msg := "marker text found outside an exact marker line"
			if lines.Matches(l, m.End) {
				msg = "end marker found without a start marker"
			}
			return errors.New(errors.ErrAmbiguousMarker, msg).
				WithDetail("marker", marker).
				WithDetail("line", i+1)
		}
	}
	return nil
}

func extraPairs(content []string, m Markers, from int) []Warning {
	var warnings []Warning
	for i := from; i < len(content); {
		s := lines.IndexOf(content, m.Start, i)
		if s == -1 {
			break
		}
		e := lines.IndexOf(content, m.End, s+1)
		if e == -1 {
			warnings = append(warnings, Warning{
				Kind:    WarnDanglingStart,
				Line:    s + 1,
				Message: "extra start marker without end marker left untouched",
			})
			break
		}
		warnings = append(warnings, Warning{
			Kind:    WarnDuplicateRegion,
			Line:    s + 1,
			Message: "additional managed region left untouched",
		})
		i = e + 1
	}
	return warnings
}

// Reconcile makes content hold exactly body between the markers m.
//
// An existing region has its body replaced in place. Without one, the region
// is appended, preceded by a blank line when the file is non-empty and does
// not already end with one. Inserted lines take the carriage-return style of
// the neighbouring marker line (or of the file's last line when appending).
func Reconcile(content []string, m Markers, body []string) (Result, error) {
	unchanged := Result{Lines: content}

	if err := m.Validate(); err != nil {
		return unchanged, err
	}
	if err := validateBody(body, m); err != nil {
		return unchanged, err
	}

	span, found, warnings, err := Find(content, m)
	if err != nil {
		return unchanged, err
	}

	var out []string
	if found {
		ending := lines.Ending(content[span.Start])
		out = make([]string, 0, len(content)-span.BodyLen()+len(body))
		out = append(out, content[:span.Start+1]...)
		out = append(out, lines.WithEnding(body, ending)...)
		out = append(out, content[span.End:]...)
	} else {
		ending := ""
		if len(content) > 0 {
			ending = lines.Ending(content[len(content)-1])
		}
		block := make([]string, 0, len(body)+2)
		block = append(block, m.Start)
		block = append(block, body...)
		block = append(block, m.End)
		out = lines.Append(content, lines.WithEnding(block, ending)...)
		if ending != "" && lines.NeedsSeparator(content) {
			out[len(content)] = ending
		}
	}

	changed := !lines.Equal(out, content)
	if !changed {
		out = content
	}
	return Result{
		Lines:    out,
		Changed:  changed,
		Inserted: !found,
		Warnings: warnings,
	}, nil
}

// Remove deletes the region delimited by m, markers included. When the
// region closes the file, the blank separator line in front of it goes too,
// undoing what an append inserted. A missing region is not an error.
func Remove(content []string, m Markers) (Result, error) {
	unchanged := Result{Lines: content}

	span, found, warnings, err := Find(content, m)
	if err != nil {
		return unchanged, err
	}
	if !found {
		return Result{Lines: content}, nil
	}

	from := span.Start
	if span.End == len(content)-1 && from > 0 && lines.IsBlank(content[from-1]) {
		from--
	}

	out := make([]string, 0, len(content)-(span.End-from+1))
	out = append(out, content[:from]...)
	out = append(out, content[span.End+1:]...)

	return Result{
		Lines:    out,
		Changed:  true,
		Removed:  true,
		Warnings: warnings,
	}, nil
}

func validateBody(body []string, m Markers) error {
	for i, l := range body {
		if lines.Matches(l, m.Start) || lines.Matches(l, m.End) {
			return errors.New(errors.ErrInvalidInput, "body must not contain marker lines").
				WithDetail("line", i+1)
		}
		if lines.Contains(l, "\n") {
			return errors.New(errors.ErrInvalidInput, "body lines must not contain newlines").
				WithDetail("line", i+1)
		}
	}
	return nil
}
