// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// summary is the JSON document for a report.
type summary struct {
	*bootstrap.Report
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// RenderReport renders the report with per-status counts
func (r *Renderer) RenderReport(report *bootstrap.Report) error {
	return r.encoder.Encode(summary{
		Report:    report,
		Changed:   report.Count(bootstrap.StatusChanged),
		Unchanged: report.Count(bootstrap.StatusUnchanged),
		Failed:    report.Count(bootstrap.StatusFailed),
	})
}

// RenderError renders an error as JSON, with its code and details when it
// carries them
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
