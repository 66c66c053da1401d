/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package model

import (
	"github.com/rulego/routedsl/api/types"
)

// Builtin expression language names.
const (
	LanguageSimple   = "simple"
	LanguageConstant = "constant"
	LanguageExpr     = "expr"
	LanguageJs       = "js"
	LanguageHeader   = "header"
)

// ExpressionDefinition is the canonical expression slot of a node. It carries the
// language and the text used by the declarative form, and optionally an already
// built expression or predicate supplied by the fluent API.
// ExpressionDefinition 表达式定义，节点唯一的表达式来源
type ExpressionDefinition struct {
	// Language 表达式语言，例如：expr、js、simple
	Language string
	// Text 表达式文本
	Text      string
	value     types.Expression
	predicate types.Predicate
}

// NewExpression creates a textual expression of the given language.
func NewExpression(language, text string) *ExpressionDefinition {
	return &ExpressionDefinition{Language: language, Text: text}
}

// Simple creates a simple language expression.
func Simple(text string) *ExpressionDefinition {
	return NewExpression(LanguageSimple, text)
}

// Constant creates a constant expression.
func Constant(text string) *ExpressionDefinition {
	return NewExpression(LanguageConstant, text)
}

// Expr creates an expr-lang expression, for example `msg.amount > 100`.
func Expr(text string) *ExpressionDefinition {
	return NewExpression(LanguageExpr, text)
}

// JS creates a javascript expression.
func JS(text string) *ExpressionDefinition {
	return NewExpression(LanguageJs, text)
}

// Header creates an expression reading a message header.
func Header(name string) *ExpressionDefinition {
	return NewExpression(LanguageHeader, name)
}

// ExpressionOf wraps an expression built elsewhere. The text is filled in when the
// node is prepared.
func ExpressionOf(e types.Expression) *ExpressionDefinition {
	if def, ok := e.(*ExpressionDefinition); ok {
		return def
	}
	return &ExpressionDefinition{value: e}
}

// PredicateOf wraps a predicate built elsewhere.
func PredicateOf(p types.Predicate) *ExpressionDefinition {
	return &ExpressionDefinition{predicate: p}
}

// Label returns the expression text, falling back to the label of the wrapped
// expression or predicate.
func (e *ExpressionDefinition) Label() string {
	if e == nil {
		return ""
	}
	if e.Text != "" {
		return e.Text
	}
	if e.predicate != nil {
		return e.predicate.Label()
	}
	if e.value != nil {
		return e.value.Label()
	}
	return ""
}

// String renders language{text}.
func (e *ExpressionDefinition) String() string {
	if e == nil {
		return ""
	}
	if e.Language == "" {
		return e.Label()
	}
	return e.Language + "{" + e.Label() + "}"
}

// GetExpressionValue returns the expression built by the fluent API, if any.
func (e *ExpressionDefinition) GetExpressionValue() types.Expression {
	if e.value != nil {
		return e.value
	}
	if e.predicate != nil {
		return e.predicate
	}
	return nil
}

// GetPredicate returns the predicate built by the fluent API, if any.
func (e *ExpressionDefinition) GetPredicate() types.Predicate {
	if e.predicate != nil {
		return e.predicate
	}
	if p, ok := e.value.(types.Predicate); ok {
		return p
	}
	return nil
}

// IsPredicate reports whether a predicate instance backs this definition.
func (e *ExpressionDefinition) IsPredicate() bool {
	return e.GetPredicate() != nil
}

// Evaluate runs the backing predicate. ok is false when the definition is only
// textual: evaluating text belongs to the runtime.
func (e *ExpressionDefinition) Evaluate(exchange types.Exchange) (matched bool, ok bool) {
	if p := e.GetPredicate(); p != nil {
		return p.Matches(exchange), true
	}
	return false, false
}

// Prepare returns the definition built by a deferred clause, or e itself, with the
// text backfilled from the expression's own label.
func (e *ExpressionDefinition) Prepare() *ExpressionDefinition {
	result := e
	if c, ok := e.value.(*ExpressionClause); ok && c.expr != nil {
		result = c.expr
	} else if c, ok := e.predicate.(*ExpressionClause); ok && c.expr != nil {
		result = c.expr
	}
	if result.Text == "" {
		if result.predicate != nil {
			result.Text = result.predicate.Label()
		} else if result.value != nil {
			result.Text = result.value.Label()
		}
	}
	return result
}

// ExpressionClause is a placeholder handed out by the fluent API before the
// expression is known. It is resolved back into the node when the node is prepared.
//
//	clause := model.Clause()
//	builder.Filter(clause)
//	clause.Simple("${header.foo} == 'bar'")
type ExpressionClause struct {
	expr *ExpressionDefinition
}

// Clause creates an empty ExpressionClause.
func Clause() *ExpressionClause {
	return &ExpressionClause{}
}

// Language sets a textual expression of the given language.
func (c *ExpressionClause) Language(language, text string) *ExpressionClause {
	c.expr = NewExpression(language, text)
	return c
}

func (c *ExpressionClause) Simple(text string) *ExpressionClause {
	return c.Language(LanguageSimple, text)
}

func (c *ExpressionClause) Constant(text string) *ExpressionClause {
	return c.Language(LanguageConstant, text)
}

func (c *ExpressionClause) Expr(text string) *ExpressionClause {
	return c.Language(LanguageExpr, text)
}

func (c *ExpressionClause) Header(name string) *ExpressionClause {
	return c.Language(LanguageHeader, name)
}

// Predicate sets a predicate built elsewhere.
func (c *ExpressionClause) Predicate(p types.Predicate) *ExpressionClause {
	c.expr = PredicateOf(p)
	return c
}

// Definition returns the built expression, nil until one of the setters ran.
func (c *ExpressionClause) Definition() *ExpressionDefinition {
	return c.expr
}

func (c *ExpressionClause) Label() string {
	if c.expr == nil {
		return ""
	}
	return c.expr.Label()
}

// Matches delegates to the built predicate; an unresolved clause never matches.
func (c *ExpressionClause) Matches(exchange types.Exchange) bool {
	if c.expr == nil {
		return false
	}
	matched, _ := c.expr.Evaluate(exchange)
	return matched
}

// ExpressionNode is implemented by variants holding an expression.
// ExpressionNode 持有表达式的节点
type ExpressionNode interface {
	Definition
	GetExpression() *ExpressionDefinition
	SetExpression(def *ExpressionDefinition)
	SetExpressionValue(e types.Expression)
	SetPredicate(p types.Predicate)
	// PrepareExpression resolves deferred clauses and backfills descriptions.
	PrepareExpression()
}

// expressionHolder is embedded by expression nodes.
type expressionHolder struct {
	expression *ExpressionDefinition
}

func (h *expressionHolder) GetExpression() *ExpressionDefinition {
	return h.expression
}

// SetExpression replaces the expression slot; nil clears it.
func (h *expressionHolder) SetExpression(def *ExpressionDefinition) {
	h.expression = def
}

// SetExpressionValue replaces the expression slot with e.
func (h *expressionHolder) SetExpressionValue(e types.Expression) {
	if e == nil {
		h.expression = nil
		return
	}
	if p, ok := e.(types.Predicate); ok {
		if _, isDef := e.(*ExpressionDefinition); !isDef {
			h.expression = &ExpressionDefinition{value: e, predicate: p}
			return
		}
	}
	h.expression = ExpressionOf(e)
}

// SetPredicate replaces the expression slot with p.
func (h *expressionHolder) SetPredicate(p types.Predicate) {
	if p == nil {
		h.expression = nil
		return
	}
	h.expression = PredicateOf(p)
}

func (h *expressionHolder) PrepareExpression() {
	if h.expression != nil {
		h.expression = h.expression.Prepare()
	}
}

func (h *expressionHolder) Label() string {
	return h.expression.Label()
}
