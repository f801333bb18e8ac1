package region

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

const (
	// DefaultComment is the comment leader used for section markers.
	DefaultComment = "#"

	startTag = "###### START(AUTO-GENERATED DO NOT EDIT) ######"
	endTag   = "###### END(AUTO-GENERATED DO NOT EDIT) ######"
)

// Markers is the literal pair of lines that brackets a managed region.
type Markers struct {
	Start string
	End   string
}

// SectionMarkers returns the marker pair for a named section, e.g.
//
//	# fzf ###### START(AUTO-GENERATED DO NOT EDIT) ######
//	# fzf ###### END(AUTO-GENERATED DO NOT EDIT) ######
func SectionMarkers(description, comment string) Markers {
	if comment == "" {
		comment = DefaultComment
	}
	description = strings.TrimSpace(description)
	return Markers{
		Start: fmt.Sprintf("%s %s %s", comment, description, startTag),
		End:   fmt.Sprintf("%s %s %s", comment, description, endTag),
	}
}

// Validate checks that the markers can delimit a region unambiguously.
func (m Markers) Validate() error {
	switch {
	case strings.TrimSpace(m.Start) == "" || strings.TrimSpace(m.End) == "":
		return errors.New(errors.ErrInvalidInput, "start and end markers must not be empty")
	case m.Start == m.End:
		return errors.New(errors.ErrInvalidInput, "start and end markers must differ").
			WithDetail("marker", m.Start)
	case strings.ContainsAny(m.Start, "\r\n") || strings.ContainsAny(m.End, "\r\n"):
		return errors.New(errors.ErrInvalidInput, "markers must be single lines")
	}
	return nil
}

func (m Markers) String() string {
	return m.Start + " .. " + m.End
}
