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

package types

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrorType is a named error classification. Types form a single-inheritance
// hierarchy through Super, which is what doCatch matches against.
// ErrorType 错误类型，通过Super形成单继承层级，doCatch 按层级匹配
type ErrorType struct {
	// Name is the qualified name, for example "java.io.IOException".
	Name string
	// Super is the parent type, nil for a root type.
	Super *ErrorType
}

// NewErrorType creates an error type with an optional super type.
func NewErrorType(name string, super *ErrorType) *ErrorType {
	return &ErrorType{Name: name, Super: super}
}

// IsSubtypeOf reports whether t is other or inherits from it.
func (t *ErrorType) IsSubtypeOf(other *ErrorType) bool {
	if t == nil || other == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.Super {
		if cur == other || cur.Name == other.Name {
			return true
		}
	}
	return false
}

// IsSubtypeOfName is IsSubtypeOf for a type known only by its name.
func (t *ErrorType) IsSubtypeOfName(name string) bool {
	for cur := t; cur != nil; cur = cur.Super {
		if cur.Name == name {
			return true
		}
	}
	return false
}

func (t *ErrorType) String() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// TypedError is implemented by errors that carry an ErrorType.
type TypedError interface {
	error
	ErrorType() *ErrorType
}

type typedError struct {
	errorType *ErrorType
	msg       string
	cause     error
}

// NewTypedError creates an error of the given type. cause may be nil.
func NewTypedError(errorType *ErrorType, msg string, cause error) error {
	return &typedError{errorType: errorType, msg: msg, cause: cause}
}

func (e *typedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.errorType, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.errorType, e.msg)
}

func (e *typedError) ErrorType() *ErrorType {
	return e.errorType
}

func (e *typedError) Unwrap() error {
	return e.cause
}

// ErrorTypeOf walks the error chain and returns the type of the first TypedError.
func ErrorTypeOf(err error) (*ErrorType, bool) {
	var typed TypedError
	if errors.As(err, &typed) {
		return typed.ErrorType(), true
	}
	return nil, false
}

// Standard error types registered in every new ErrorTypeRegistry.
var (
	ThrowableType                = NewErrorType("java.lang.Throwable", nil)
	ExceptionType                = NewErrorType("java.lang.Exception", ThrowableType)
	RuntimeExceptionType         = NewErrorType("java.lang.RuntimeException", ExceptionType)
	IllegalArgumentExceptionType = NewErrorType("java.lang.IllegalArgumentException", RuntimeExceptionType)
	IllegalStateExceptionType    = NewErrorType("java.lang.IllegalStateException", RuntimeExceptionType)
	IOExceptionType              = NewErrorType("java.io.IOException", ExceptionType)
	FileNotFoundExceptionType    = NewErrorType("java.io.FileNotFoundException", IOExceptionType)
	ConnectExceptionType         = NewErrorType("java.net.ConnectException", IOExceptionType)
	ValidationExceptionType      = NewErrorType("org.apache.camel.ValidationException", RuntimeExceptionType)
)

// ErrorTypeRegistry resolves error type names used by doCatch and throwException.
// ErrorTypeRegistry 错误类型注册表
type ErrorTypeRegistry struct {
	types map[string]*ErrorType
	sync.RWMutex
}

// NewErrorTypeRegistry creates a registry seeded with the standard error types.
func NewErrorTypeRegistry() *ErrorTypeRegistry {
	r := &ErrorTypeRegistry{types: make(map[string]*ErrorType)}
	for _, t := range []*ErrorType{
		ThrowableType, ExceptionType, RuntimeExceptionType, IllegalArgumentExceptionType,
		IllegalStateExceptionType, IOExceptionType, FileNotFoundExceptionType,
		ConnectExceptionType, ValidationExceptionType,
	} {
		r.types[t.Name] = t
	}
	return r
}

// Register adds an error type. Registering a name twice fails.
func (r *ErrorTypeRegistry) Register(t *ErrorType) error {
	if t == nil || t.Name == "" {
		return errors.New("error type name can not empty")
	}
	r.Lock()
	defer r.Unlock()
	if _, ok := r.types[t.Name]; ok {
		return fmt.Errorf("the error type already exists. name=%s", t.Name)
	}
	r.types[t.Name] = t
	return nil
}

// Resolve returns the error type registered under name.
func (r *ErrorTypeRegistry) Resolve(name string) (*ErrorType, error) {
	r.RLock()
	defer r.RUnlock()
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w. name=%s", ErrErrorTypeNotFound, name)
}

// Names returns the registered names in sorted order.
func (r *ErrorTypeRegistry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	var names []string
	for k := range r.types {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
