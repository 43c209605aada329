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

package typename

import (
	"errors"
	"fmt"
)

// InvalidTypeNameError indicates a fully-qualified type name missing its
// module/struct separator
type InvalidTypeNameError struct {
	Name string
}

func (e InvalidTypeNameError) Error() string {
	return fmt.Sprintf(
		"invalid type name %q: missing module/struct separator",
		e.Name,
	)
}

// Sentinel error for invalid type names so callers can use errors.Is
var ErrInvalidTypeName = errors.New("invalid type name")

func (InvalidTypeNameError) Is(target error) bool {
	return target == ErrInvalidTypeName
}

// MalformedAddressError indicates an address prefix that is not valid hex or
// not the expected width
type MalformedAddressError struct {
	Address string
	Err     error
}

func (e MalformedAddressError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed address %q", e.Address)
	}
	return fmt.Sprintf("malformed address %q: %v", e.Address, e.Err)
}

func (e MalformedAddressError) Unwrap() error { return e.Err }

// Sentinel error for malformed addresses so callers can use errors.Is
var ErrMalformedAddress = errors.New("malformed address")

func (MalformedAddressError) Is(target error) bool {
	return target == ErrMalformedAddress
}

// InvalidSliceError indicates a substring request with out-of-order or
// out-of-range bounds
type InvalidSliceError struct {
	Start int
	End   int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("invalid slice bounds [%d:%d]", e.Start, e.End)
}

// Sentinel error for invalid slice bounds so callers can use errors.Is
var ErrInvalidSlice = errors.New("invalid slice bounds")

func (InvalidSliceError) Is(target error) bool {
	return target == ErrInvalidSlice
}

// MissingModuleError indicates a derived query that requires an originating
// module on a signature that has none (primitive and vector types)
type MissingModuleError struct {
	Name string
}

func (e MissingModuleError) Error() string {
	return fmt.Sprintf("type %q has no originating module", e.Name)
}

// Sentinel error for missing modules so callers can use errors.Is
var ErrMissingModule = errors.New("missing module")

func (MissingModuleError) Is(target error) bool {
	return target == ErrMissingModule
}
