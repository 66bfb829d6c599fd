// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/geomalgebra/geomalg/class"

// AstNode is the closed sum of statement-level nodes the emitter contract
// consumes: preambles, class definitions, and the bodies of trait
// implementations.
type AstNode interface {
	isAstNode()
}

// Parameter names one function argument or result.
type Parameter struct {
	Name string
	Type DataType
}

// Preamble precedes all class definitions and operation implementations in
// emitted output.
type Preamble struct{}

func (Preamble) isAstNode() {}

// ClassDefinition renders c as a structure of SIMD groups.
type ClassDefinition struct {
	Class class.Class
}

func (ClassDefinition) isAstNode() {}

// ReturnStatement returns Expression from the enclosing function.
type ReturnStatement struct {
	Expression *Expression
}

func (ReturnStatement) isAstNode() {}

// VariableAssignment declares (Type non-nil) or reassigns (Type nil) a
// local variable.
type VariableAssignment struct {
	Name       string
	Type       DataType
	Expression *Expression
}

func (VariableAssignment) isAstNode() {}

// IfThenBlock runs Body when Condition holds.
type IfThenBlock struct {
	Condition *Expression
	Body      []AstNode
}

func (IfThenBlock) isAstNode() {}

// WhileLoopBlock runs Body repeatedly while Condition holds.
type WhileLoopBlock struct {
	Condition *Expression
	Body      []AstNode
}

func (WhileLoopBlock) isAstNode() {}

// TraitImplementation is a named function: Result names the receiver type
// and the operation's name, Parameters the arguments, Body the statements.
// Every synthesiser and derivation in this module produces one of these
// (or refuses emission entirely).
type TraitImplementation struct {
	Result     Parameter
	Parameters []Parameter
	Body       []AstNode
}

func (*TraitImplementation) isAstNode() {}
