// Package el parses ${...} templates of the simple expression language. Every
// function body is compiled with expr-lang to check its syntax; evaluation is left
// to the runtime that consumes the route.
package el

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	VarPrefix = "${"
	VarSuffix = "}"
)

// ErrUnclosedVar is returned when a ${ is never closed.
var ErrUnclosedVar = errors.New("unclosed variable")

// ErrEmptyVar is returned for ${}.
var ErrEmptyVar = errors.New("empty variable")

// Variable is one ${...} function of a template.
type Variable struct {
	// Expr 变量中的表达式文本
	Expr string
	// Start ${ 在模板中的位置
	Start int
	// End 变量结束位置（不包含）
	End     int
	program *vm.Program
}

// MixedTemplate 支持混合字符串和变量的模板，格式如 aa/${xxx}
type MixedTemplate struct {
	Tmpl      string
	variables []Variable
	hasVars   bool
}

// NewMixedTemplate parses tmpl and compiles every variable.
func NewMixedTemplate(tmpl string) (*MixedTemplate, error) {
	t := &MixedTemplate{Tmpl: tmpl}
	if err := t.Parse(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *MixedTemplate) Parse() error {
	t.variables = nil
	t.hasVars = strings.Contains(t.Tmpl, VarPrefix)
	if !t.hasVars {
		return nil
	}
	offset := 0
	for {
		start := strings.Index(t.Tmpl[offset:], VarPrefix)
		if start < 0 {
			return nil
		}
		start += offset
		end := strings.Index(t.Tmpl[start:], VarSuffix)
		if end < 0 {
			return fmt.Errorf("%w at index %d", ErrUnclosedVar, start)
		}
		end += start
		body := t.Tmpl[start+len(VarPrefix) : end]
		if strings.TrimSpace(body) == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyVar, start)
		}
		program, err := expr.Compile(body, expr.AllowUndefinedVariables())
		if err != nil {
			return fmt.Errorf("variable %s: %w", body, err)
		}
		t.variables = append(t.variables, Variable{
			Expr:    body,
			Start:   start,
			End:     end + len(VarSuffix),
			program: program,
		})
		offset = end + len(VarSuffix)
	}
}

// HasVar 是否有变量
func (t *MixedTemplate) HasVar() bool {
	return t.hasVars
}

// Variables returns the parsed variables in template order.
func (t *MixedTemplate) Variables() []Variable {
	return t.variables
}
