package diagnostic

import (
	"fmt"
	"strings"

	"bsp-entity-generator/internal/common"
)

// Diagnostics holds all non-fatal findings from extraction and override
// application. Malformed input that cannot be recovered from is reported as
// an error return instead, never as a diagnostic.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source is the input file the diagnostic arose from (if any).
	Source string
	// Subject identifies the classname, key, or "classname.key" this
	// relates to (if any).
	Subject string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source, subject string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Subject:  subject,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source, subject string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Subject:  subject,
	})
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one, preserving order.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, "["+d.Source+"]")
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
