package calculator

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. The AST is
// closed: no node kind can resolve a name anywhere but the function registry
// or the variable table.
type node struct {
	kind nodeKind

	val  float64 // nodeNum
	name string  // nodeName, nodeCall
	args []*node // nodeCall

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // literal value
	nodeName // variable or constant lookup
	nodeCall // call name with args

	nodeNeg // evaluate left, then negate
	nodeNop // evaluate left

	nodeAdd   // evaluate left, add right
	nodeSub   // evaluate left, sub right
	nodeMul   // evaluate left, mul right
	nodeDiv   // evaluate left, div by right
	nodeFloor // evaluate left, div by right, floor
	nodeMod   // evaluate left, mod by right
	nodePow   // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodeCall:
		return "Call"
	case nodeNeg:
		return "Neg"
	case nodeNop:
		return "Nop"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeFloor:
		return "Floor"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opText is the canonical spelling of a binary operator node.
func (k nodeKind) opText() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeFloor:
		return "//"
	case nodeMod:
		return "%"
	case nodePow:
		return "^"
	default:
		panic("calculator: no operator for node kind " + k.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeNop:
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeFloor, nodeMod, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.opText())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("calculator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
