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

// ThrowExceptionDefinition raises an error, either a prepared error value or one
// built by the runtime from an error type name and a message.
// ThrowExceptionDefinition 抛出错误节点
type ThrowExceptionDefinition struct {
	noOutputs
	// ExceptionType 错误类型名称
	ExceptionType string
	// Message 错误信息，可包含表达式
	Message string
	err     error
}

// NewThrowException creates a node raising an error of the named type.
func NewThrowException(exceptionType, message string) *ThrowExceptionDefinition {
	d := &ThrowExceptionDefinition{ExceptionType: exceptionType, Message: message}
	d.init(d)
	return d
}

// NewThrowError creates a node raising err.
func NewThrowError(err error) *ThrowExceptionDefinition {
	d := NewThrowException("", "")
	d.err = err
	if t, ok := types.ErrorTypeOf(err); ok {
		d.ExceptionType = t.Name
	}
	return d
}

func (d *ThrowExceptionDefinition) ShortName() string {
	return types.NodeThrowException
}

func (d *ThrowExceptionDefinition) Label() string {
	switch {
	case d.ExceptionType != "":
		return d.ExceptionType
	case d.err != nil:
		return d.err.Error()
	default:
		return ""
	}
}

func (d *ThrowExceptionDefinition) New() Definition {
	return NewThrowException("", "")
}

// GetError returns the prepared error, nil when the node names a type instead.
func (d *ThrowExceptionDefinition) GetError() error {
	return d.err
}

// NewError returns the prepared error or builds a typed error from the type name
// resolved against registry.
func (d *ThrowExceptionDefinition) NewError(registry *types.ErrorTypeRegistry) (error, error) {
	if d.err != nil {
		return d.err, nil
	}
	t, err := registry.Resolve(d.ExceptionType)
	if err != nil {
		return nil, err
	}
	return types.NewTypedError(t, d.Message, nil), nil
}
