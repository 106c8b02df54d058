// Package expander renders parsed URI templates against variable values.
// Expansion is best-effort: undefined variables and value shapes that do not
// fit a modifier render nothing instead of failing the whole template.
package expander

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shibukawa/uritemplate"
)

// Expand renders the template with the given values and returns the expanded
// URI. Expansion is deterministic; associative values are rendered in sorted
// key order.
func Expand(t *uritemplate.ParsedTemplate, values uritemplate.Values) string {
	var b strings.Builder

	for _, part := range t.Parts {
		switch part.Type {
		case uritemplate.PartLiteral:
			b.WriteString(part.Text)
		case uritemplate.PartExpression:
			expandExpression(&b, part, values)
		}
	}

	return b.String()
}

func expandExpression(b *strings.Builder, part uritemplate.Part, values uritemplate.Values) {
	info := part.Operator.Info()

	var rendered []string

	for _, spec := range part.Vars {
		out, ok := renderVar(spec, info, values)
		if !ok {
			continue
		}

		rendered = append(rendered, out)
	}

	// The operator prefix appears once, and only when at least one variable
	// produced output.
	if len(rendered) == 0 {
		return
	}

	b.WriteString(info.First)

	for i, out := range rendered {
		if i > 0 {
			b.WriteByte(info.Separator)
		}

		b.WriteString(out)
	}
}

// renderVar renders one variable reference. The second return value reports
// whether the variable contributed output at all: undefined variables, empty
// lists and maps, and modifier/value shape mismatches contribute nothing.
func renderVar(spec uritemplate.VarSpec, info uritemplate.OpInfo, values uritemplate.Values) (string, bool) {
	value, ok := values[spec.Name]
	if !ok || value == nil {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return renderScalar(spec, info, v), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		// The prefix modifier applies to scalar strings only.
		if spec.PrefixLength > 0 {
			return "", false
		}

		return renderList(spec, info, v), true
	case map[string]string:
		if len(v) == 0 {
			return "", false
		}

		if spec.PrefixLength > 0 {
			return "", false
		}

		return renderMap(spec, info, v), true
	default:
		return renderScalar(spec, info, fmt.Sprint(v)), true
	}
}

func renderScalar(spec uritemplate.VarSpec, info uritemplate.OpInfo, value string) string {
	if spec.PrefixLength > 0 {
		// Truncation counts characters, not bytes, so multi-byte values stay
		// intact across the cut.
		runes := []rune(value)
		if len(runes) > spec.PrefixLength {
			value = string(runes[:spec.PrefixLength])
		}
	}

	escaped := uritemplate.Escape(value, info.AllowReserved)
	if !info.Named {
		return escaped
	}

	if value == "" {
		return spec.Name + info.IfEmpty
	}

	return spec.Name + "=" + escaped
}

func renderList(spec uritemplate.VarSpec, info uritemplate.OpInfo, items []string) string {
	var b strings.Builder

	if spec.Explode {
		// One rendered unit per element.
		for i, item := range items {
			if i > 0 {
				b.WriteByte(info.Separator)
			}

			b.WriteString(renderScalar(uritemplate.VarSpec{Name: spec.Name}, info, item))
		}

		return b.String()
	}

	if info.Named {
		b.WriteString(spec.Name)
		b.WriteByte('=')
	}

	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(uritemplate.Escape(item, info.AllowReserved))
	}

	return b.String()
}

func renderMap(spec uritemplate.VarSpec, info uritemplate.OpInfo, pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var b strings.Builder

	if spec.Explode {
		for i, key := range keys {
			if i > 0 {
				b.WriteByte(info.Separator)
			}

			b.WriteString(uritemplate.Escape(key, info.AllowReserved))
			b.WriteByte('=')
			b.WriteString(uritemplate.Escape(pairs[key], info.AllowReserved))
		}

		return b.String()
	}

	if info.Named {
		b.WriteString(spec.Name)
		b.WriteByte('=')
	}

	for i, key := range keys {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(uritemplate.Escape(key, info.AllowReserved))
		b.WriteByte(',')
		b.WriteString(uritemplate.Escape(pairs[key], info.AllowReserved))
	}

	return b.String()
}
