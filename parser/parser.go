// Package parser turns RFC 6570 URI template strings into their parsed part
// sequence. It is a single left-to-right character scan with no backtracking
// and no regular expressions; the accepted grammar is the template syntax of
// RFC 6570 levels 1-4.
package parser

import (
	"fmt"
	"strings"

	"github.com/shibukawa/uritemplate"
)

// MaxPrefixLength is the largest value the :N prefix modifier accepts.
// RFC 6570 limits the modifier to at most four digits.
const MaxPrefixLength = 9999

// Parse parses a template string into a ParsedTemplate. A malformed template
// is always reported as an error, never silently treated as a literal.
func Parse(template string) (*uritemplate.ParsedTemplate, error) {
	s := &scanner{input: template}

	parts, err := s.run()
	if err != nil {
		return nil, err
	}

	return &uritemplate.ParsedTemplate{
		Original: template,
		Parts:    parts,
	}, nil
}

// scanner is the internal scanning state. The scanner alternates between
// literal mode and expression mode; expression bodies are collected raw and
// handed to parseExpression once the closing brace is seen.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) run() ([]uritemplate.Part, error) {
	var parts []uritemplate.Part

	var literal strings.Builder

	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c != '{' {
			literal.WriteByte(c)
			s.pos++

			continue
		}

		// Flush the pending literal before entering expression mode.
		if literal.Len() > 0 {
			parts = append(parts, uritemplate.Part{Type: uritemplate.PartLiteral, Text: literal.String()})
			literal.Reset()
		}

		part, err := s.readExpression()
		if err != nil {
			return nil, err
		}

		parts = append(parts, part)
	}

	if literal.Len() > 0 || len(parts) == 0 {
		// An empty template is a single empty literal.
		parts = append(parts, uritemplate.Part{Type: uritemplate.PartLiteral, Text: literal.String()})
	}

	return parts, nil
}

// readExpression consumes one {...} block starting at the opening brace.
func (s *scanner) readExpression() (uritemplate.Part, error) {
	start := s.pos
	s.pos++ // consume '{'

	bodyStart := s.pos
	for s.pos < len(s.input) && s.input[s.pos] != '}' {
		s.pos++
	}

	if s.pos >= len(s.input) {
		return uritemplate.Part{}, fmt.Errorf("%w: '{' at column %d", uritemplate.ErrUnclosedExpression, start+1)
	}

	body := s.input[bodyStart:s.pos]
	s.pos++ // consume '}'

	return parseExpression(body, start+1)
}

// parseExpression parses the text between braces: an optional operator
// character followed by comma separated variable specs.
func parseExpression(body string, col int) (uritemplate.Part, error) {
	if body == "" {
		return uritemplate.Part{}, fmt.Errorf("%w at column %d", uritemplate.ErrEmptyExpression, col)
	}

	op := uritemplate.OpNone
	if o, ok := uritemplate.OperatorFor(body[0]); ok {
		op = o
		body = body[1:]
	}

	tokens := strings.Split(body, ",")
	vars := make([]uritemplate.VarSpec, 0, len(tokens))

	for _, token := range tokens {
		spec, err := parseVarSpec(token, col)
		if err != nil {
			return uritemplate.Part{}, err
		}

		vars = append(vars, spec)
	}

	return uritemplate.Part{
		Type:     uritemplate.PartExpression,
		Operator: op,
		Vars:     vars,
	}, nil
}

// parseVarSpec parses one variable token: name, name:N or name*. Names are
// deliberately lenient beyond "non-empty" so dotted and percent-encoded
// identifiers found in real-world templates pass through.
func parseVarSpec(token string, col int) (uritemplate.VarSpec, error) {
	var spec uritemplate.VarSpec

	name := token
	if strings.HasSuffix(name, "*") {
		spec.Explode = true
		name = name[:len(name)-1]
	}

	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		length, err := parsePrefixLength(name[idx+1:], col)
		if err != nil {
			return uritemplate.VarSpec{}, err
		}

		if spec.Explode {
			return uritemplate.VarSpec{}, fmt.Errorf("%w: ':%d' combined with '*' at column %d", uritemplate.ErrInvalidPrefixLength, length, col)
		}

		spec.PrefixLength = length
		name = name[:idx]
	}

	if name == "" {
		return uritemplate.VarSpec{}, fmt.Errorf("%w at column %d", uritemplate.ErrEmptyVariableName, col)
	}

	spec.Name = name

	return spec, nil
}

func parsePrefixLength(digits string, col int) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("%w: missing digits at column %d", uritemplate.ErrInvalidPrefixLength, col)
	}

	length := 0

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: '%s' at column %d", uritemplate.ErrInvalidPrefixLength, digits, col)
		}

		length = length*10 + int(c-'0')
		if length > MaxPrefixLength {
			return 0, fmt.Errorf("%w: %s exceeds %d at column %d", uritemplate.ErrInvalidPrefixLength, digits, MaxPrefixLength, col)
		}
	}

	if length == 0 {
		return 0, fmt.Errorf("%w: zero at column %d", uritemplate.ErrInvalidPrefixLength, col)
	}

	return length, nil
}
