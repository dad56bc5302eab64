package xmltree

// Node is one element of the document tree. Child elements are kept in
// document order and indexed by qualified name ("wp:post_type"), so repeated
// tags read back as ordered lists. Attributes are keyed by local name.
type Node struct {
	Name  string
	Attrs map[string]string
	Text  string

	children []*Node
	index    map[string][]*Node
}

func newNode(name string, attrs map[string]string) *Node {
	return &Node{Name: name, Attrs: attrs}
}

func (n *Node) append(child *Node) {
	if n.index == nil {
		n.index = make(map[string][]*Node)
	}
	n.children = append(n.children, child)
	n.index[child.Name] = append(n.index[child.Name], child)
}

// Elements returns every child element in document order.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Children returns the child elements named name, in document order.
func (n *Node) Children(name string) []*Node {
	if n == nil {
		return nil
	}
	return n.index[name]
}

// Child returns the first child element named name, or nil.
func (n *Node) Child(name string) *Node {
	matches := n.Children(name)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// Path walks first-match children by name and returns nil as soon as a step is missing.
func (n *Node) Path(names ...string) *Node {
	current := n
	for _, name := range names {
		current = current.Child(name)
		if current == nil {
			return nil
		}
	}
	return current
}

// Field reads the text of the first child named name as an optional value.
func (n *Node) Field(name string) Field {
	child := n.Child(name)
	if child == nil {
		return Absent()
	}
	return Present(child.Text)
}

// Attr returns the attribute value and whether it was set.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	value, ok := n.Attrs[name]
	return value, ok
}

// HasAttrs reports whether the element carried any non-namespace attribute.
func (n *Node) HasAttrs() bool {
	return n != nil && len(n.Attrs) > 0
}
