package dom

// Attributes is an insertion-ordered name->value mapping with first-write-wins
// semantics: once a name has been set, later calls to Set for the same name
// are no-ops. This matches the tokenizer's duplicate-attribute rule and the
// tree builder's "merge attributes into the existing element" scaffolding
// behavior (e.g. a second <body> tag never overwrites the first body's
// attributes).
type Attributes struct {
	order  []string
	values map[string]string
}

// Set records name=value if name has not already been set. It reports
// whether the value was newly recorded.
func (a *Attributes) Set(name, value string) bool {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[name]; exists {
		return false
	}
	a.order = append(a.order, name)
	a.values[name] = value
	return true
}

// Get returns the value stored for name, if any.
func (a *Attributes) Get(name string) (string, bool) {
	if a.values == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

// Names returns attribute names in first-write order.
func (a *Attributes) Names() []string {
	return a.order
}

// Len reports the number of attributes.
func (a *Attributes) Len() int { return len(a.order) }

func (a *Attributes) clone() Attributes {
	c := Attributes{order: append([]string(nil), a.order...)}
	if a.values != nil {
		c.values = make(map[string]string, len(a.values))
		for k, v := range a.values {
			c.values[k] = v
		}
	}
	return c
}
