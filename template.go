package uritemplate

// PartType discriminates the two kinds of template parts.
type PartType int

const (
	// PartLiteral is raw text copied through expansion verbatim.
	PartLiteral PartType = iota
	// PartExpression is one {...} block.
	PartExpression
)

// VarSpec is one variable reference inside an expression.
//
// PrefixLength and Explode are mutually exclusive; the parser rejects
// expressions that set both.
type VarSpec struct {
	Name         string
	PrefixLength int // 0 means no :N modifier
	Explode      bool
}

// Part is either a literal run of characters or one expression block.
// Which fields are meaningful depends on Type.
type Part struct {
	Type     PartType
	Text     string // PartLiteral
	Operator Operator
	Vars     []VarSpec // PartExpression, never empty
}

// ParsedTemplate is the parsed form of one URI template. It is immutable
// once constructed; concurrent expansion and matching against the same
// instance are safe.
type ParsedTemplate struct {
	Original string
	Parts    []Part
}

// String returns the original template text.
func (t *ParsedTemplate) String() string {
	return t.Original
}

// Names returns the variable names referenced by the template, in order of
// appearance. A name referenced twice appears once.
func (t *ParsedTemplate) Names() []string {
	var names []string
	seen := map[string]bool{}

	for _, part := range t.Parts {
		if part.Type != PartExpression {
			continue
		}
		for _, v := range part.Vars {
			if !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		}
	}

	return names
}

// Values binds variable names to expansion inputs. Supported value kinds are
// string, []string and map[string]string; a nil or missing entry means the
// variable is undefined.
type Values map[string]any

// MatchResult holds the variable bindings recovered from a matched URI.
// Values are either string or []string (for exploded variables), already
// percent-decoded.
type MatchResult struct {
	Params map[string]any
}

// Get returns the scalar binding for name, if one exists.
func (r *MatchResult) Get(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.Params[name].(string)
	return s, ok
}

// GetList returns the list binding for name, if one exists.
func (r *MatchResult) GetList(name string) ([]string, bool) {
	if r == nil {
		return nil, false
	}
	l, ok := r.Params[name].([]string)
	return l, ok
}
