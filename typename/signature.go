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

// Package typename decomposes fully-qualified Move type names of the form
// <address>::<module>::<StructName><generic-argument-list> into structured
// signatures and provides derived comparison and composition queries over
// them. All functions are pure: inputs are never mutated and results carry
// no shared state, so concurrent use needs no coordination.
package typename

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/mintgate-io/movetypes/address"
)

// moduleSeparator is the delimiter between address, module, and struct name
const moduleSeparator = "::"

// TypeSignature is the structured form of a type name. Address is the
// all-zero sentinel for primitive and vector types, which have no
// originating module. TypeParams preserves left-to-right source order; the
// elements are raw type names, themselves decomposable
type TypeSignature struct {
	Address    address.Address
	Module     string
	Name       string
	TypeParams []string
}

// Parser decomposes type names for a platform with a fixed address width.
// The address width is configuration: it is not self-describing from the
// input string
type Parser struct {
	addrHexLen int
}

// NewParser returns a Parser for the provided address byte width. The width
// must be between 1 and address.Length
func NewParser(addressLength int) (*Parser, error) {
	if addressLength < 1 || addressLength > address.Length {
		return nil, fmt.Errorf(
			"address length must be between 1 and %d, got %d",
			address.Length,
			addressLength,
		)
	}
	return &Parser{addrHexLen: addressLength * 2}, nil
}

var defaultParser = &Parser{addrHexLen: address.HexLength}

// Decompose parses a type name using the default full-width address parser
func Decompose(s string) (TypeSignature, error) {
	return defaultParser.Decompose(s)
}

// Decompose parses a type name into a TypeSignature. A string is treated as
// fully qualified when the module separator sits at the exact offset implied
// by the configured address width; anything else takes the primitive branch.
// This dispatch is positional, not a fallback on error: a primitive name
// that merely contains "::" elsewhere is never routed into the
// fully-qualified branch.
//
// Addresses parsed at a width narrower than address.Length are left-padded
// into the full-width Address, so the signature's String() form renders the
// address at full width rather than round-tripping the short input
func (p *Parser) Decompose(s string) (TypeSignature, error) {
	if len(s) > p.addrHexLen+2 {
		sep, err := substring(s, p.addrHexLen, p.addrHexLen+2)
		if err != nil {
			return TypeSignature{}, err
		}
		if sep == moduleSeparator {
			return p.decomposeQualified(s)
		}
	}
	name, params := DecomposeStruct(s)
	return TypeSignature{Name: name, TypeParams: params}, nil
}

func (p *Parser) decomposeQualified(s string) (TypeSignature, error) {
	addrHex, err := substring(s, 0, p.addrHexLen)
	if err != nil {
		return TypeSignature{}, err
	}
	addrBytes, err := hex.DecodeString(addrHex)
	if err != nil {
		return TypeSignature{}, MalformedAddressError{
			Address: addrHex,
			Err:     err,
		}
	}
	remainder, err := substring(s, p.addrHexLen+2, len(s))
	if err != nil {
		return TypeSignature{}, err
	}
	sepIdx := strings.Index(remainder, moduleSeparator)
	if sepIdx < 0 {
		return TypeSignature{}, InvalidTypeNameError{Name: s}
	}
	name, params := DecomposeStruct(remainder[sepIdx+2:])
	ret := TypeSignature{
		Module:     remainder[:sepIdx],
		Name:       name,
		TypeParams: params,
	}
	// Addresses narrower than the platform maximum are numeric values and
	// pad on the left
	copy(ret.Address[address.Length-len(addrBytes):], addrBytes)
	return ret, nil
}

// Equal returns true if both signatures have the same address, module,
// name, and type parameters. Parameters are compared element-wise in order:
// argument order is semantically significant
func (t TypeSignature) Equal(other TypeSignature) bool {
	if t.Address != other.Address || t.Module != other.Module ||
		t.Name != other.Name {
		return false
	}
	return slices.Equal(t.TypeParams, other.TypeParams)
}

// SameModule returns true if both signatures originate from the same module
// of the same address
func (t TypeSignature) SameModule(other TypeSignature) bool {
	return t.Address == other.Address && t.Module == other.Module
}

// String reconstructs the source form of the signature, including generic
// arguments. Primitive signatures render without an address/module prefix
func (t TypeSignature) String() string {
	var sb strings.Builder
	if !t.Address.IsZero() || t.Module != "" {
		sb.WriteString(t.Address.String())
		sb.WriteString(moduleSeparator)
		sb.WriteString(t.Module)
		sb.WriteString(moduleSeparator)
	}
	sb.WriteString(t.Name)
	if len(t.TypeParams) > 0 {
		sb.WriteByte('<')
		sb.WriteString(strings.Join(t.TypeParams, ", "))
		sb.WriteByte('>')
	}
	return sb.String()
}

// typeSignatureJson is a convenience type for marshaling/unmarshaling
// TypeSignature to/from JSON
type typeSignatureJson struct {
	Address    string   `json:"address,omitempty"`
	Module     string   `json:"module,omitempty"`
	Name       string   `json:"name"`
	TypeParams []string `json:"typeParams,omitempty"`
}

func (t TypeSignature) MarshalJSON() ([]byte, error) {
	tmp := typeSignatureJson{
		Module:     t.Module,
		Name:       t.Name,
		TypeParams: t.TypeParams,
	}
	if !t.Address.IsZero() {
		tmp.Address = t.Address.String()
	}
	return json.Marshal(&tmp)
}

func (t *TypeSignature) UnmarshalJSON(data []byte) error {
	var tmp typeSignatureJson
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = TypeSignature{
		Module:     tmp.Module,
		Name:       tmp.Name,
		TypeParams: tmp.TypeParams,
	}
	if tmp.Address != "" {
		addr, err := address.NewAddress(tmp.Address)
		if err != nil {
			return err
		}
		t.Address = addr
	}
	return nil
}

// typeSignatureCbor is a convenience type for marshaling/unmarshaling
// TypeSignature to/from CBOR as a fixed-shape array
type typeSignatureCbor struct {
	_          struct{} `cbor:",toarray"`
	Address    address.Address
	Module     string
	Name       string
	TypeParams []string
}

func (t TypeSignature) MarshalCBOR() ([]byte, error) {
	tmp := typeSignatureCbor{
		Address:    t.Address,
		Module:     t.Module,
		Name:       t.Name,
		TypeParams: t.TypeParams,
	}
	return cbor.Marshal(&tmp)
}

func (t *TypeSignature) UnmarshalCBOR(data []byte) error {
	var tmp typeSignatureCbor
	if err := cbor.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = TypeSignature{
		Address:    tmp.Address,
		Module:     tmp.Module,
		Name:       tmp.Name,
		TypeParams: tmp.TypeParams,
	}
	return nil
}
