// Package syntax provides a Ruby syntax model for lint rules: parsing via
// tree-sitter and a flat, read-only view over the call expressions a rule
// cares about.
package syntax

// CallKind discriminates the call shapes the model exposes.
type CallKind int

const (
	// OrdinaryCall is a standard method invocation with a name and an
	// optional receiver.
	OrdinaryCall CallKind = iota
	// SuperCall delegates to the same method in a parent implementation.
	SuperCall
	// Suspension is a yield: it hands a value back to the enclosing
	// caller mid-expression.
	Suspension
)

// String returns the string representation of the call kind.
func (k CallKind) String() string {
	switch k {
	case OrdinaryCall:
		return "call"
	case SuperCall:
		return "super"
	case Suspension:
		return "yield"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) in the source.
type Span struct {
	Start int
	End   int
}

// Candidate is a read-only view over one call-shaped syntax node.
// Candidates are built fresh on every walk and never cached or mutated.
type Candidate struct {
	// Kind is the call shape.
	Kind CallKind
	// MethodName is the invoked method's name. Set only for OrdinaryCall.
	MethodName string
	// HasArguments reports whether the call carries arguments. A bare
	// super always does: it forwards the enclosing method's arguments
	// implicitly.
	HasArguments bool
	// Parenthesized reports whether an explicit opening delimiter wraps
	// the argument list, regardless of whether arguments are present.
	Parenthesized bool
	// OperatorLike reports whether the call reads as an infix/symbolic
	// operator rather than a named method.
	OperatorLike bool
	// MacroLike reports whether the call looks like a declarative
	// macro-style invocation: receiverless, undelimited, and sitting in
	// a class/module body or at the top level.
	MacroLike bool
	// Selector is the byte span of the method name token, or of the
	// introducing keyword for SuperCall and Suspension. Offenses anchor
	// at Selector.Start.
	Selector Span
	// ArgumentsEnd is the byte offset just past the argument list. It
	// equals ArgumentsBegin when the call has no argument text (a bare
	// super forwarding implicit arguments).
	ArgumentsEnd int
	// Line and Column are the 1-based position of Selector.Start.
	Line   int
	Column int
}

// ArgumentsBegin returns the byte offset where the argument region starts.
// It always immediately follows the selector token.
func (c Candidate) ArgumentsBegin() int {
	return c.Selector.End
}
