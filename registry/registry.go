// Package registry holds an ordered collection of parsed templates and tries
// them against incoming URIs in insertion order, first match wins. There is
// no ranking between templates.
package registry

import (
	"github.com/shibukawa/uritemplate"
	"github.com/shibukawa/uritemplate/matcher"
	"github.com/shibukawa/uritemplate/parser"
)

// Registry is an ordered template set. Lookups are read-only scans and safe
// to run concurrently; additions must be synchronized by the caller.
type Registry struct {
	templates []*uritemplate.ParsedTemplate
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add parses the template and appends it to the set. Parser errors are
// propagated unchanged.
func (r *Registry) Add(template string) error {
	parsed, err := parser.Parse(template)
	if err != nil {
		return err
	}

	r.templates = append(r.templates, parsed)

	return nil
}

// Match tries the stored templates in insertion order and returns the first
// successful result, or nil when no template matches.
func (r *Registry) Match(uri string) *uritemplate.MatchResult {
	_, result := r.MatchTemplate(uri)
	return result
}

// MatchTemplate is Match plus the original text of the template that
// produced the result.
func (r *Registry) MatchTemplate(uri string) (string, *uritemplate.MatchResult) {
	for _, t := range r.templates {
		if result := matcher.Match(t, uri); result != nil {
			return t.Original, result
		}
	}

	return "", nil
}

// Clear removes all templates.
func (r *Registry) Clear() {
	r.templates = nil
}

// All returns the original template strings in insertion order.
func (r *Registry) All() []string {
	all := make([]string, 0, len(r.templates))
	for _, t := range r.templates {
		all = append(all, t.Original)
	}

	return all
}

// Len returns the number of stored templates.
func (r *Registry) Len() int {
	return len(r.templates)
}
