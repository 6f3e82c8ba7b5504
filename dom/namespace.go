package dom

// Namespace is one of the three namespaces a parsed tree can contain.
// Elements outside these three (e.g. xlink, xmlns) are represented as
// namespaced attribute names rather than element namespaces.
type Namespace string

const (
	HTML   Namespace = "html"
	SVG    Namespace = "svg"
	MathML Namespace = "math"
)

func (n Namespace) String() string { return string(n) }
