// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugtext

import (
	"fmt"
	"io"

	"github.com/geomalgebra/geomalg/emit"
	"github.com/geomalgebra/geomalg/expr"
)

// Writer is a reference emit.Emitter: every node is rendered as indented
// lines of plain text, enough to see what a library derived without
// committing to a dialect's syntax.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a Writer emitting to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error Emit encountered, if any.
func (d *Writer) Err() error {
	return d.err
}

func (d *Writer) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// Emit renders node, per the emit.Emitter contract.
func (d *Writer) Emit(node expr.AstNode) error {
	d.emitNode(node, 0)
	return d.err
}

func (d *Writer) indent(level int) {
	if d.err != nil {
		return
	}
	d.err = emit.Indent(d.w, level)
}

func (d *Writer) emitNode(node expr.AstNode, level int) {
	switch n := node.(type) {
	case expr.Preamble:
		d.printf("// generated library\n\n")
	case expr.ClassDefinition:
		d.printf("class %s {\n", n.Class.Name)
		for i, group := range n.Class.GroupedBasis {
			d.indent(level + 1)
			d.printf("g%d[%d]:", i, len(group))
			for _, e := range group {
				d.printf(" %s", e.String())
			}
			d.printf("\n")
		}
		d.printf("}\n\n")
	case expr.ReturnStatement:
		d.indent(level)
		d.printf("return ")
		d.emitExpression(n.Expression)
		d.printf("\n")
	case expr.VariableAssignment:
		d.indent(level)
		if n.Type != nil {
			d.printf("var %s = ", n.Name)
		} else {
			d.printf("%s = ", n.Name)
		}
		d.emitExpression(n.Expression)
		d.printf("\n")
	case expr.IfThenBlock:
		d.indent(level)
		d.printf("if ")
		d.emitExpression(n.Condition)
		d.printf(" {\n")
		for _, stmt := range n.Body {
			d.emitNode(stmt, level+1)
		}
		d.indent(level)
		d.printf("}\n")
	case expr.WhileLoopBlock:
		d.indent(level)
		d.printf("while ")
		d.emitExpression(n.Condition)
		d.printf(" {\n")
		for _, stmt := range n.Body {
			d.emitNode(stmt, level+1)
		}
		d.indent(level)
		d.printf("}\n")
	case *expr.TraitImplementation:
		d.indent(level)
		d.printf("fn %s(", n.Result.Name)
		for i, p := range n.Parameters {
			if i > 0 {
				d.printf(", ")
			}
			d.printf("%s", p.Name)
		}
		d.printf(") -> %s {\n", typeName(n.Result.Type))
		for _, stmt := range n.Body {
			d.emitNode(stmt, level+1)
		}
		d.indent(level)
		d.printf("}\n\n")
	default:
		d.printf("<unknown ast node>\n")
	}
}

func typeName(t expr.DataType) string {
	switch v := t.(type) {
	case expr.IntegerType:
		return "int"
	case expr.SimdVectorType:
		return fmt.Sprintf("vec%d", v.Width)
	case expr.MultiVectorType:
		return v.Class.Name
	default:
		return "?"
	}
}

func (d *Writer) emitExpression(e *expr.Expression) {
	if e == nil || expr.IsNone(e) {
		d.printf("none")
		return
	}
	switch n := e.Content.(type) {
	case expr.VariableNode:
		d.printf("%s", n.Name)
	case expr.InvokeClassMethodNode:
		d.printf("%s::%s(", n.Class.Name, n.Method)
		d.emitArgs(n.Args)
		d.printf(")")
	case expr.InvokeInstanceMethodNode:
		d.emitExpression(n.Receiver)
		d.printf(".%s(", n.Method)
		d.emitArgs(n.Args)
		d.printf(")")
	case expr.ConversionNode:
		d.emitExpression(n.Inner)
		d.printf(".into::<%s>()", n.Dst.Name)
	case expr.SelectNode:
		d.printf("(")
		d.emitExpression(n.Cond)
		d.printf(" ? ")
		d.emitExpression(n.Then)
		d.printf(" : ")
		d.emitExpression(n.Else)
		d.printf(")")
	case expr.AccessNode:
		d.emitExpression(n.Agg)
		d.printf(".g%d", n.Group)
	case expr.SwizzleNode:
		d.emitExpression(n.V)
		d.printf(".swizzle%v", n.Lanes)
	case expr.GatherNode:
		d.printf("gather(")
		d.emitExpression(n.V)
		d.printf(", %v)", n.Pairs)
	case expr.ConstantNode:
		d.printf("%v", n.Values)
	case expr.SquareRootNode:
		d.emitExpression(n.V)
		d.printf(".sqrt()")
	case expr.AddNode:
		d.emitBinary("+", n.A, n.B)
	case expr.SubtractNode:
		d.emitBinary("-", n.A, n.B)
	case expr.MultiplyNode:
		d.emitBinary("*", n.A, n.B)
	case expr.DivideNode:
		d.emitBinary("/", n.A, n.B)
	case expr.LessThanNode:
		d.emitBinary("<", n.A, n.B)
	case expr.EqualNode:
		d.emitBinary("==", n.A, n.B)
	case expr.LogicAndNode:
		d.emitBinary("&", n.A, n.B)
	case expr.BitShiftRightNode:
		d.emitBinary(">>", n.A, n.B)
	default:
		d.printf("<unknown expr>")
	}
}

func (d *Writer) emitBinary(op string, a, b *expr.Expression) {
	d.printf("(")
	d.emitExpression(a)
	d.printf(" %s ", op)
	d.emitExpression(b)
	d.printf(")")
}

func (d *Writer) emitArgs(args []expr.Argument) {
	for i, arg := range args {
		if i > 0 {
			d.printf(", ")
		}
		d.emitExpression(arg.Value)
	}
}
