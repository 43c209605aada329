// Copyright 2026 Mintgate Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gate answers the question "does the runtime type of a presented
// value match the declared required type?" for callers that gate an action
// on an exact type, such as accepting only one coin or collection type.
// Any failure to parse the presented type name is a denial, never a partial
// match
package gate

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mintgate-io/movetypes/typename"
)

// TypeMismatchError indicates a presented type that does not match the
// required type, including presented type names that failed to parse
type TypeMismatchError struct {
	Required  string
	Presented string
	Err       error
}

func (e TypeMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"presented type %q rejected: %v",
			e.Presented,
			e.Err,
		)
	}
	return fmt.Sprintf(
		"presented type %q does not match required type %q",
		e.Presented,
		e.Required,
	)
}

func (e TypeMismatchError) Unwrap() error { return e.Err }

// Sentinel error for type mismatches so callers can use errors.Is
var ErrTypeMismatch = errors.New("type mismatch")

func (TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// TypeGate holds an administrator-declared required type and checks
// presented runtime type names against it
type TypeGate struct {
	required typename.TypeSignature
}

// New returns a TypeGate for the provided required type name
func New(requiredType string) (*TypeGate, error) {
	sig, err := typename.Decompose(requiredType)
	if err != nil {
		return nil, fmt.Errorf("parse required type: %w", err)
	}
	return &TypeGate{required: sig}, nil
}

// NewFromSignature returns a TypeGate for an already-decomposed signature
func NewFromSignature(required typename.TypeSignature) *TypeGate {
	return &TypeGate{required: required}
}

// Check compares a presented runtime type name against the required type.
// It returns nil on an exact match and a TypeMismatchError otherwise. A
// presented name that fails to parse is a mismatch, not a separate error
// path: the caller must deny the action rather than proceed with partial
// data
func (g *TypeGate) Check(presentedType string) error {
	sig, err := typename.Decompose(presentedType)
	if err != nil {
		return TypeMismatchError{
			Required:  g.required.String(),
			Presented: presentedType,
			Err:       err,
		}
	}
	if !g.required.Equal(sig) {
		return TypeMismatchError{
			Required:  g.required.String(),
			Presented: presentedType,
		}
	}
	return nil
}

// Allows reports whether the presented runtime type name matches the
// required type
func (g *TypeGate) Allows(presentedType string) bool {
	return g.Check(presentedType) == nil
}

// Required returns an independent copy of the required signature. Mutating
// the returned value (including its type parameter slice) does not affect
// the gate
func (g *TypeGate) Required() typename.TypeSignature {
	var ret typename.TypeSignature
	if err := copier.CopyWithOption(
		&ret,
		&g.required,
		copier.Option{DeepCopy: true},
	); err != nil {
		panic(fmt.Sprintf("unexpected error copying signature: %s", err))
	}
	return ret
}
