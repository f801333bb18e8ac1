// Package launchagent writes per-user macOS LaunchAgent property lists.
//
// A plist is owned by dotsetup as a whole file, so reconciliation is a
// byte comparison: the file is rewritten only when the rendered plist
// differs from what is on disk.
package launchagent

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/beevik/etree"
)

const plistDoctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// CalendarInterval mirrors StartCalendarInterval. Unset fields match any
// value.
type CalendarInterval struct {
	Minute  *int `toml:"minute" yaml:"minute"`
	Hour    *int `toml:"hour" yaml:"hour"`
	Day     *int `toml:"day" yaml:"day"`
	Weekday *int `toml:"weekday" yaml:"weekday"`
	Month   *int `toml:"month" yaml:"month"`
}

// Agent describes one LaunchAgent.
type Agent struct {
	Label     string            `toml:"label" yaml:"label"`
	Program   []string          `toml:"program" yaml:"program"`
	RunAtLoad bool              `toml:"run_at_load" yaml:"run_at_load"`
	KeepAlive bool              `toml:"keep_alive" yaml:"keep_alive"`
	Calendar  *CalendarInterval `toml:"calendar" yaml:"calendar"`
}

// Validate checks the fields launchd requires.
func (a Agent) Validate() error {
	if strings.TrimSpace(a.Label) == "" {
		return errors.New(errors.ErrInvalidInput, "launch agent requires a label")
	}
	if strings.ContainsAny(a.Label, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "launch agent label %q must not contain path separators", a.Label).
			WithDetail("label", a.Label)
	}
	if len(a.Program) == 0 || strings.TrimSpace(a.Program[0]) == "" {
		return errors.Newf(errors.ErrInvalidInput, "launch agent %s requires a program", a.Label).
			WithDetail("label", a.Label)
	}
	if c := a.Calendar; c != nil {
		for _, f := range []struct {
			name     string
			v        *int
			min, max int
		}{
			{"minute", c.Minute, 0, 59},
			{"hour", c.Hour, 0, 23},
			{"day", c.Day, 1, 31},
			{"weekday", c.Weekday, 0, 7},
			{"month", c.Month, 1, 12},
		} {
			if f.v != nil && (*f.v < f.min || *f.v > f.max) {
				return errors.Newf(errors.ErrInvalidInput, "launch agent %s: %s %d out of range %d-%d",
					a.Label, f.name, *f.v, f.min, f.max).
					WithDetail("label", a.Label)
			}
		}
	}
	return nil
}

// Render returns the plist XML for a.
func Render(a Agent) ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(plistDoctype)
	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addKey(dict, "Label").CreateElement("string").SetText(a.Label)

	addKey(dict, "ProgramArguments")
	array := dict.CreateElement("array")
	for _, arg := range a.Program {
		array.CreateElement("string").SetText(arg)
	}

	if a.RunAtLoad {
		addKey(dict, "RunAtLoad").CreateElement("true")
	}
	if a.KeepAlive {
		addKey(dict, "KeepAlive").CreateElement("true")
	}

	if c := a.Calendar; c != nil {
		addKey(dict, "StartCalendarInterval")
		interval := dict.CreateElement("dict")
		addInt(interval, "Minute", c.Minute)
		addInt(interval, "Hour", c.Hour)
		addInt(interval, "Day", c.Day)
		addInt(interval, "Weekday", c.Weekday)
		addInt(interval, "Month", c.Month)
	}

	doc.Indent(4)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to render plist for %s", a.Label)
	}
	return out, nil
}

// addKey appends a <key> and returns the dict so the value can follow it.
func addKey(dict *etree.Element, name string) *etree.Element {
	dict.CreateElement("key").SetText(name)
	return dict
}

func addInt(dict *etree.Element, name string, v *int) {
	if v == nil {
		return
	}
	addKey(dict, name).CreateElement("integer").SetText(strconv.Itoa(*v))
}
