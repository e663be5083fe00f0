package expr

// Variables returns the variable names referenced by e, in left-to-right
// order of first occurrence.
func Variables(e Expr) []string {
	c := &variableCollector{seen: make(map[string]struct{})}
	_, _ = Apply[struct{}](e, c)
	return c.names
}

type variableCollector struct {
	seen  map[string]struct{}
	names []string
}

func (c *variableCollector) VisitVariable(e *Variable) (struct{}, error) {
	if _, ok := c.seen[e.Name()]; !ok {
		c.seen[e.Name()] = struct{}{}
		c.names = append(c.names, e.Name())
	}
	return struct{}{}, nil
}

func (c *variableCollector) VisitConstant(*Constant) (struct{}, error) {
	return struct{}{}, nil
}

func (c *variableCollector) VisitAdd(e *Add) (struct{}, error) {
	return c.both(e)
}

func (c *variableCollector) VisitMultiply(e *Multiply) (struct{}, error) {
	return c.both(e)
}

func (c *variableCollector) VisitSubtract(e *Subtract) (struct{}, error) {
	return c.both(e)
}

func (c *variableCollector) VisitDivide(e *Divide) (struct{}, error) {
	return c.both(e)
}

func (c *variableCollector) both(e BinaryExpr) (struct{}, error) {
	_, _ = Apply[struct{}](e.Child1(), c)
	_, _ = Apply[struct{}](e.Child2(), c)
	return struct{}{}, nil
}

var _ Visitor[struct{}] = (*variableCollector)(nil)
