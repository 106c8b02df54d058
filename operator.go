package uritemplate

// Operator identifies the expression operator of an RFC 6570 expression.
type Operator int

const (
	// OpNone is simple string expansion: {var}
	OpNone Operator = iota
	// OpReserved is reserved expansion: {+var}
	OpReserved
	// OpFragment is fragment expansion: {#var}
	OpFragment
	// OpLabel is label expansion with dot-prefix: {.var}
	OpLabel
	// OpPath is path segment expansion: {/var}
	OpPath
	// OpPathParam is path-style parameter expansion: {;var}
	OpPathParam
	// OpQuery is form-style query expansion: {?var}
	OpQuery
	// OpQueryCont is form-style query continuation: {&var}
	OpQueryCont
)

// String returns the operator character as it appears in a template.
func (o Operator) String() string {
	switch o {
	case OpReserved:
		return "+"
	case OpFragment:
		return "#"
	case OpLabel:
		return "."
	case OpPath:
		return "/"
	case OpPathParam:
		return ";"
	case OpQuery:
		return "?"
	case OpQueryCont:
		return "&"
	default:
		return ""
	}
}

// OpInfo holds the static expansion rules of one operator. The same table
// drives both expansion and inverse matching, which keeps the two directions
// symmetric.
type OpInfo struct {
	First         string // literal emitted once before the first rendered value
	Separator     byte   // joins multiple rendered values
	Named         bool   // values are rendered as name=value pairs
	IfEmpty       string // suffix after the name when the value is empty (named only)
	AllowReserved bool   // reserved URI characters pass through unescaped
}

var opTable = [...]OpInfo{
	OpNone:      {First: "", Separator: ',', Named: false, IfEmpty: "", AllowReserved: false},
	OpReserved:  {First: "", Separator: ',', Named: false, IfEmpty: "", AllowReserved: true},
	OpFragment:  {First: "#", Separator: ',', Named: false, IfEmpty: "", AllowReserved: true},
	OpLabel:     {First: ".", Separator: '.', Named: false, IfEmpty: "", AllowReserved: false},
	OpPath:      {First: "/", Separator: '/', Named: false, IfEmpty: "", AllowReserved: false},
	OpPathParam: {First: ";", Separator: ';', Named: true, IfEmpty: "", AllowReserved: false},
	OpQuery:     {First: "?", Separator: '&', Named: true, IfEmpty: "=", AllowReserved: false},
	OpQueryCont: {First: "&", Separator: '&', Named: true, IfEmpty: "=", AllowReserved: false},
}

// Info returns the expansion rules for the operator.
func (o Operator) Info() OpInfo {
	if o < OpNone || int(o) >= len(opTable) {
		return opTable[OpNone]
	}
	return opTable[o]
}

// OperatorFor maps an expression's leading character to its operator. The
// second return value reports whether the character is an operator at all.
func OperatorFor(c byte) (Operator, bool) {
	switch c {
	case '+':
		return OpReserved, true
	case '#':
		return OpFragment, true
	case '.':
		return OpLabel, true
	case '/':
		return OpPath, true
	case ';':
		return OpPathParam, true
	case '?':
		return OpQuery, true
	case '&':
		return OpQueryCont, true
	default:
		return OpNone, false
	}
}
