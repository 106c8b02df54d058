// Package matcher recovers variable bindings from a concrete URI given a
// parsed template. Matching is the inverse of expansion: the split points
// between variable-bearing regions are not always locally determinable, so
// the matcher runs a greedy longest-first search with backtracking across
// candidate span boundaries.
package matcher

import (
	"strings"

	"github.com/shibukawa/uritemplate"
)

// Match attempts to find variable bindings that are consistent with the
// template and the full URI. It returns nil when no assignment exists;
// matching never fails with an error for a well-formed template. A nil
// result is the normal outcome for a URI the template cannot produce.
func Match(t *uritemplate.ParsedTemplate, uri string) *uritemplate.MatchResult {
	params := map[string]any{}
	if !matchParts(t.Parts, uri, params) {
		return nil
	}

	return &uritemplate.MatchResult{Params: params}
}

// matchParts consumes parts left to right against the unconsumed suffix of
// the URI. Success requires the whole input to be consumed: matching is
// all-or-nothing, there is no partial result.
func matchParts(parts []uritemplate.Part, input string, params map[string]any) bool {
	if len(parts) == 0 {
		return input == ""
	}

	part := parts[0]
	rest := parts[1:]

	if part.Type == uritemplate.PartLiteral {
		remaining, ok := consumeLiteral(input, part.Text)
		if !ok {
			return false
		}

		return matchParts(rest, remaining, params)
	}

	return matchExpression(part, rest, input, params)
}

// consumeLiteral requires the literal text at the head of the input,
// comparing both sides percent-decoded so "a%2Fb" and "a/b" are the same
// literal.
func consumeLiteral(input, literal string) (string, bool) {
	i, j := 0, 0

	for j < len(literal) {
		if i >= len(input) {
			return "", false
		}

		ci, ni := decodeByte(input, i)
		cj, nj := decodeByte(literal, j)

		if ci != cj {
			return "", false
		}

		i += ni
		j += nj
	}

	return input[i:], true
}

// decodeByte returns the decoded byte at position i and how many input bytes
// it spans (3 for a %XX triplet, otherwise 1).
func decodeByte(s string, i int) (byte, int) {
	if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
		return unhex(s[i+1])<<4 | unhex(s[i+2]), 3
	}

	return s[i], 1
}

// matchExpression resolves one expression part. The candidate span is limited
// to the operator's allowed character set, then tried longest-first; each
// candidate boundary re-attempts the remainder of the parts list, and the
// first candidate that lets the rest of the template complete wins.
func matchExpression(part uritemplate.Part, rest []uritemplate.Part, input string, params map[string]any) bool {
	info := part.Operator.Info()

	in := input
	hadPrefix := false

	if info.First != "" && strings.HasPrefix(input, info.First) {
		hadPrefix = true
		in = input[len(info.First):]
	}

	if info.First == "" || hadPrefix {
		limit := spanLimit(in, info)

		// A consumed operator prefix means the expression rendered something,
		// so a zero-length span is a real candidate there: it binds the empty
		// value, the way "/files{/id}" with an empty id expands to "/files/".
		// Without a prefix a zero-length span just means the variables are
		// absent, which the fallback below covers.
		minSpan := 1
		if hadPrefix {
			minSpan = 0
		}

		for k := limit; k >= minSpan; k-- {
			added, ok := bindVars(part, info, in[:k])
			if !ok {
				continue
			}

			saved := apply(params, added)
			if matchParts(rest, in[k:], params) {
				return true
			}

			restore(params, added, saved)
		}
	}

	// The expression contributes nothing: every variable is absent. This also
	// covers an operator prefix that actually belongs to a later literal.
	return matchParts(rest, input, params)
}

// spanLimit returns the longest prefix of in that an expression under this
// operator could have produced: characters from the operator's allowed set,
// percent triplets, the join separator, and '=' for named forms.
func spanLimit(in string, info uritemplate.OpInfo) int {
	i := 0

	for i < len(in) {
		c := in[i]

		if c == '%' && i+2 < len(in) && isHexDigit(in[i+1]) && isHexDigit(in[i+2]) {
			i += 3
			continue
		}

		if !spanByte(c, info) {
			break
		}

		i++
	}

	return i
}

func spanByte(c byte, info uritemplate.OpInfo) bool {
	switch {
	case uritemplate.IsUnreserved(c):
		return true
	case info.AllowReserved && uritemplate.IsReserved(c):
		return true
	case c == info.Separator:
		return true
	case info.Named && c == '=':
		return true
	}

	return false
}

// bindVars splits one expression's span into per-variable bindings. Multiple
// variables split on the separator in declared order; the last variable
// consumes any remainder, which keeps the split deterministic when a decoded
// value itself contains the separator.
func bindVars(part uritemplate.Part, info uritemplate.OpInfo, span string) (map[string]any, bool) {
	segments := strings.Split(span, string(info.Separator))
	added := map[string]any{}

	for i, spec := range part.Vars {
		if i >= len(segments) {
			// Fewer segments than declared variables: the remaining variables
			// were absent at expansion time.
			break
		}

		last := i == len(part.Vars)-1

		if spec.Explode {
			remainder := segments[i:]
			if !last {
				remainder = segments[i : i+1]
			}

			list := make([]string, 0, len(remainder))
			for _, segment := range remainder {
				list = append(list, uritemplate.Unescape(segment))
			}

			added[spec.Name] = list

			continue
		}

		segment := segments[i]
		if last {
			segment = strings.Join(segments[i:], string(info.Separator))
		}

		value, ok := bindScalar(segment, spec, info)
		if !ok {
			return nil, false
		}

		added[spec.Name] = value
	}

	return added, true
}

// bindScalar decodes one segment into a scalar value, stripping the
// name= form for named operators. The :N prefix modifier does not constrain
// how much input the span may consume, but the reported binding is cut to
// the modifier length, mirroring what expansion would have emitted.
func bindScalar(segment string, spec uritemplate.VarSpec, info uritemplate.OpInfo) (string, bool) {
	var value string

	switch {
	case !info.Named:
		value = uritemplate.Unescape(segment)
	case segment == spec.Name:
		// The bare-name form a named operator emits for an empty value.
		value = ""
	case strings.HasPrefix(segment, spec.Name+"="):
		value = uritemplate.Unescape(segment[len(spec.Name)+1:])
	default:
		return "", false
	}

	if spec.PrefixLength > 0 {
		runes := []rune(value)
		if len(runes) > spec.PrefixLength {
			value = string(runes[:spec.PrefixLength])
		}
	}

	return value, true
}

// apply merges added bindings into params, returning the shadowed previous
// values so a failed branch can be rolled back.
func apply(params, added map[string]any) map[string]any {
	saved := map[string]any{}

	for name, value := range added {
		if old, ok := params[name]; ok {
			saved[name] = old
		}

		params[name] = value
	}

	return saved
}

func restore(params, added, saved map[string]any) {
	for name := range added {
		if old, ok := saved[name]; ok {
			params[name] = old
			continue
		}

		delete(params, name)
	}
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
