package pages

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrTemplateNotFound is returned by activation when the requested
// template key has no catalog entry or no active DB row.
var ErrTemplateNotFound = errors.New("template not found")

type ErrorKind string

const (
	// KindUnknownTemplate: templateKey outside the closed catalog,
	// rejected before any field validation.
	KindUnknownTemplate ErrorKind = "unknown_template"
	// KindTemplateConstraint: document is shape-valid but breaks the
	// template's sidebar presence/position rule.
	KindTemplateConstraint ErrorKind = "template_constraint"
	// KindSchema: structural or value-constraint failure.
	KindSchema ErrorKind = "schema_validation"
)

// ValidationError carries one reason per offending field path
// ("theme.primaryColor", "sidebar.position", ...) so the editor UI can
// highlight the exact inputs.
type ValidationError struct {
	Kind   ErrorKind         `json:"kind"`
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return string(e.Kind)
	}
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", p, e.Fields[p]))
	}
	return fmt.Sprintf("%s (%s)", e.Kind, strings.Join(parts, "; "))
}
