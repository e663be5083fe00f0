package expr

// Expr is a node of an immutable arithmetic expression tree.
//
// The variant set is closed: Variable, Constant, Add, Multiply, Subtract
// and Divide. Accept forwards to the one Visitor method matching the node
// kind. Use Apply for a typed result.
type Expr interface {
	Accept(v Visitor[any]) (any, error)
	String() string

	expr()
}

// BinaryExpr is the shape shared by Add, Multiply, Subtract and Divide.
type BinaryExpr interface {
	Expr
	Child1() Expr
	Child2() Expr
}

type Variable struct {
	name string
}

func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (e *Variable) Name() string {
	return e.name
}

func (e *Variable) Accept(v Visitor[any]) (any, error) {
	return v.VisitVariable(e)
}

func (e *Variable) String() string { return Infix(e) }

func (*Variable) expr() {}

type Constant struct {
	value int64
}

func NewConstant(value int64) *Constant {
	return &Constant{value: value}
}

func (e *Constant) Value() int64 {
	return e.value
}

func (e *Constant) Accept(v Visitor[any]) (any, error) {
	return v.VisitConstant(e)
}

func (e *Constant) String() string { return Infix(e) }

func (*Constant) expr() {}

// binary owns both children. It is embedded by the binary kinds and
// cannot be used as an Expr on its own.
type binary struct {
	child1 Expr
	child2 Expr
}

func (b binary) Child1() Expr {
	return b.child1
}

func (b binary) Child2() Expr {
	return b.child2
}

type Add struct {
	binary
}

func NewAdd(child1, child2 Expr) *Add {
	return &Add{binary{child1, child2}}
}

func (e *Add) Accept(v Visitor[any]) (any, error) {
	return v.VisitAdd(e)
}

func (e *Add) String() string { return Infix(e) }

func (*Add) expr() {}

type Multiply struct {
	binary
}

func NewMultiply(child1, child2 Expr) *Multiply {
	return &Multiply{binary{child1, child2}}
}

func (e *Multiply) Accept(v Visitor[any]) (any, error) {
	return v.VisitMultiply(e)
}

func (e *Multiply) String() string { return Infix(e) }

func (*Multiply) expr() {}

type Subtract struct {
	binary
}

func NewSubtract(child1, child2 Expr) *Subtract {
	return &Subtract{binary{child1, child2}}
}

func (e *Subtract) Accept(v Visitor[any]) (any, error) {
	return v.VisitSubtract(e)
}

func (e *Subtract) String() string { return Infix(e) }

func (*Subtract) expr() {}

type Divide struct {
	binary
}

func NewDivide(child1, child2 Expr) *Divide {
	return &Divide{binary{child1, child2}}
}

func (e *Divide) Accept(v Visitor[any]) (any, error) {
	return v.VisitDivide(e)
}

func (e *Divide) String() string { return Infix(e) }

func (*Divide) expr() {}

var (
	_ Expr       = (*Variable)(nil)
	_ Expr       = (*Constant)(nil)
	_ BinaryExpr = (*Add)(nil)
	_ BinaryExpr = (*Multiply)(nil)
	_ BinaryExpr = (*Subtract)(nil)
	_ BinaryExpr = (*Divide)(nil)
)
