package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Calls walks the parsed tree and returns a candidate for every call-shaped
// node: ordinary method calls, super delegation, and yields. Any other node
// kind is skipped. The walk is a pure function of the tree; calling it twice
// yields identical candidates.
func (f *File) Calls() []Candidate {
	var out []Candidate
	f.walk(f.Root(), &out)
	return out
}

func (f *File) walk(n *sitter.Node, out *[]Candidate) {
	switch n.Type() {
	case nodeCall:
		if c, ok := f.callCandidate(n); ok {
			*out = append(*out, c)
		}
	case nodeSuper:
		if c, ok := f.standaloneSuper(n); ok {
			*out = append(*out, c)
		}
	case nodeYield:
		*out = append(*out, f.yieldCandidate(n))
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		f.walk(n.NamedChild(i), out)
	}
}

func (f *File) callCandidate(n *sitter.Node) (Candidate, bool) {
	method := n.ChildByFieldName(fieldMethod)
	if method == nil {
		// Receiver-only forms like foo.() have no method token to
		// anchor on.
		return Candidate{}, false
	}

	args := n.ChildByFieldName(fieldArguments)

	if method.Type() == nodeSuper {
		return f.superCandidate(method, args), true
	}

	name := method.Content(f.Source)
	c := f.newCandidate(OrdinaryCall, method)
	c.MethodName = name
	c.OperatorLike = method.Type() == nodeOperator || !identifierLike(name)
	f.fillArguments(&c, args)
	c.MacroLike = n.ChildByFieldName(fieldReceiver) == nil &&
		!c.Parenthesized &&
		inDeclarativeContext(n)

	return c, true
}

// standaloneSuper handles super nodes that are not the method token of an
// enclosing call (those are classified when the call itself is visited).
func (f *File) standaloneSuper(n *sitter.Node) (Candidate, bool) {
	if p := n.Parent(); p != nil && p.Type() == nodeCall {
		if m := p.ChildByFieldName(fieldMethod); m != nil && sameNode(m, n) {
			return Candidate{}, false
		}
	}
	return f.superCandidate(n, argumentListChild(n)), true
}

// superCandidate builds a SuperCall view. A bare super always carries
// arguments: it forwards the enclosing method's arguments implicitly.
func (f *File) superCandidate(kw, args *sitter.Node) Candidate {
	c := f.newCandidate(SuperCall, kw)
	c.HasArguments = true
	if args != nil {
		c.Parenthesized = parenDelimited(args)
		c.ArgumentsEnd = int(args.EndByte())
	}
	return c
}

func (f *File) yieldCandidate(n *sitter.Node) Candidate {
	c := Candidate{
		Kind:     Suspension,
		Selector: Span{Start: int(n.StartByte()), End: int(n.StartByte()) + len(nodeYield)},
		Line:     int(n.StartPoint().Row) + 1,
		Column:   int(n.StartPoint().Column) + 1,
	}
	c.ArgumentsEnd = c.Selector.End
	f.fillArguments(&c, argumentListChild(n))
	return c
}

func (f *File) newCandidate(kind CallKind, selector *sitter.Node) Candidate {
	c := Candidate{
		Kind:     kind,
		Selector: Span{Start: int(selector.StartByte()), End: int(selector.EndByte())},
		Line:     int(selector.StartPoint().Row) + 1,
		Column:   int(selector.StartPoint().Column) + 1,
	}
	c.ArgumentsEnd = c.Selector.End
	return c
}

// fillArguments records argument presence, delimiter presence, and the end
// of the argument region. An explicitly delimited empty list, foo(), counts
// as parenthesized but not as having arguments.
func (f *File) fillArguments(c *Candidate, args *sitter.Node) {
	if args == nil {
		return
	}
	c.HasArguments = args.NamedChildCount() > 0
	c.Parenthesized = parenDelimited(args)
	c.ArgumentsEnd = int(args.EndByte())
}

// parenDelimited reports whether the argument list carries its own opening
// delimiter token. The delimiter is an anonymous child of the list; a
// parenthesized expression as the first argument, foo (a), is a named child
// and does not count.
func parenDelimited(args *sitter.Node) bool {
	first := args.Child(0)
	return first != nil && !first.IsNamed() && first.Type() == "("
}

// argumentListChild finds an argument_list attached directly to the node,
// via field name or as a plain child.
func argumentListChild(n *sitter.Node) *sitter.Node {
	if args := n.ChildByFieldName(fieldArguments); args != nil {
		return args
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeArgumentList {
			return child
		}
	}
	return nil
}

// inDeclarativeContext reports whether the node is a direct statement of the
// program top level or of a class/module/singleton-class body. Calls in
// those positions read as declarations rather than expressions.
func inDeclarativeContext(n *sitter.Node) bool {
	p := n.Parent()
	if p == nil {
		return true
	}
	switch p.Type() {
	case nodeProgram:
		return true
	case nodeBodyStatement:
		gp := p.Parent()
		if gp == nil {
			return false
		}
		switch gp.Type() {
		case nodeClass, nodeModule, nodeSingletonClass:
			return true
		}
	}
	return false
}

// identifierLike reports whether a method name starts like an identifier.
// Symbolic names such as + or []= read as operators.
func identifierLike(name string) bool {
	if name == "" {
		return false
	}
	b := name[0]
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
