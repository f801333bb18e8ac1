package crontab

import (
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Entry is one scheduled job.
type Entry struct {
	Schedule    string `toml:"schedule" yaml:"schedule"`
	Command     string `toml:"command" yaml:"command"`
	Description string `toml:"description" yaml:"description"`
}

// Validate checks the schedule with the standard five-field parser, which
// also accepts descriptors such as @daily.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Command) == "" {
		return errors.New(errors.ErrInvalidInput, "cron entry requires a command").
			WithDetail("schedule", e.Schedule)
	}
	if strings.ContainsAny(e.Command+e.Description, "\r\n") {
		return errors.New(errors.ErrInvalidInput, "cron entry must fit on one line").
			WithDetail("command", e.Command)
	}
	if _, err := cron.ParseStandard(e.Schedule); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid cron schedule %q", e.Schedule).
			WithDetail("schedule", e.Schedule).
			WithDetail("command", e.Command)
	}
	return nil
}

// Lines renders the entry as crontab lines: an optional description comment
// followed by the job line.
func (e Entry) Lines() []string {
	job := strings.TrimSpace(e.Schedule) + " " + strings.TrimSpace(e.Command)
	if d := strings.TrimSpace(e.Description); d != "" {
		return []string{"# " + d, job}
	}
	return []string{job}
}

// Render validates entries and returns the body lines for a managed region.
func Render(entries []Entry) ([]string, error) {
	var body []string
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		body = append(body, e.Lines()...)
	}
	return body, nil
}
