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

// Package address provides the fixed-width Move account address value type
package address

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	// Length is the account address width in bytes
	Length = 32

	// HexLength is the account address width in hex-character form
	HexLength = Length * 2

	// Ed25519PublicKeySize is the expected public key length for address derivation
	Ed25519PublicKeySize = 32

	// SchemeEd25519 is the signature scheme flag prepended to an ed25519
	// public key before hashing it into an address
	SchemeEd25519 = 0x00
)

// Address is a fixed-width Move account address. The zero value is the
// reserved sentinel meaning "no originating module" (used for primitive types)
type Address [Length]byte

// NewAddress returns an Address decoded from the provided hex string. An
// optional 0x prefix is accepted, but the remaining string must be exactly
// the full address width
func NewAddress(addr string) (Address, error) {
	addr = strings.TrimPrefix(addr, "0x")
	if len(addr) != HexLength {
		return Address{}, fmt.Errorf(
			"address hex must be %d characters, got %d",
			HexLength,
			len(addr),
		)
	}
	decoded, err := hex.DecodeString(addr)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address hex: %w", err)
	}
	return NewAddressFromBytes(decoded)
}

// NewAddressFromBytes returns an Address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	if len(addrBytes) != Length {
		return Address{}, fmt.Errorf(
			"address must be %d bytes, got %d",
			Length,
			len(addrBytes),
		)
	}
	a := Address{}
	copy(a[:], addrBytes)
	return a, nil
}

// FromPublicKey derives the account address for an ed25519 public key by
// hashing the signature scheme flag followed by the key bytes with
// blake2b-256. The key must be a canonical curve point
func FromPublicKey(pubKey []byte) (Address, error) {
	if len(pubKey) != Ed25519PublicKeySize {
		return Address{}, fmt.Errorf(
			"public key must be %d bytes, got %d",
			Ed25519PublicKeySize,
			len(pubKey),
		)
	}
	if _, err := (&edwards25519.Point{}).SetBytes(pubKey); err != nil {
		return Address{}, fmt.Errorf("invalid ed25519 public key: %w", err)
	}
	tmpHash, err := blake2b.New256(nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write([]byte{SchemeEd25519})
	tmpHash.Write(pubKey)
	return NewAddressFromBytes(tmpHash.Sum(nil))
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Hex returns the address as a 0x-prefixed hex string
func (a Address) Hex() string {
	return "0x" + a.String()
}

func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns true if the address is the all-zero sentinel
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	addr, err := NewAddress(tmp)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := NewAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the address is zero-valued
	addrBytes := make([]byte, Length)
	copy(addrBytes, a[:])
	return cbor.Marshal(addrBytes)
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	var tmp []byte
	if err := cbor.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if len(tmp) != Length {
		return errors.New("invalid address length in CBOR")
	}
	copy(a[:], tmp)
	return nil
}
