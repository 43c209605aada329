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
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	vectorTypeName = "vector"
	optionTypeName = "Option"

	// FingerprintHashSize is the blake2b digest width used for type fingerprints
	FingerprintHashSize = 20

	// FingerprintPrefix is the human-readable part of the bech32 fingerprint form
	FingerprintPrefix = "type"
)

// ModulePath returns the "<address>::<module>" prefix of the signature. It
// fails for primitive signatures, which have no originating module
func (t TypeSignature) ModulePath() (string, error) {
	if t.Address.IsZero() {
		return "", MissingModuleError{Name: t.Name}
	}
	return t.Address.String() + moduleSeparator + t.Module, nil
}

// QualifiedName returns the "<address>::<module>::<name>" form of the
// signature without generic arguments
func (t TypeSignature) QualifiedName() (string, error) {
	modulePath, err := t.ModulePath()
	if err != nil {
		return "", err
	}
	return modulePath + moduleSeparator + t.Name, nil
}

// AppendMember joins a member name onto a module path. No existence
// validation is performed: callers are responsible for confirming the
// resulting path denotes something real
func AppendMember(modulePath string, name string) string {
	return modulePath + moduleSeparator + name
}

// HasTypeParams returns true if s carries a generic argument region,
// including an empty one
func HasTypeParams(s string) bool {
	prefix, _ := SplitAngleBrackets(s)
	return prefix != s
}

// IsVectorName returns true if s names a vector type
func IsVectorName(s string) bool {
	return strings.HasPrefix(s, vectorTypeName)
}

// OptionArgument returns the bracket region following the first occurrence
// of "Option" in s, or the empty string if s contains no Option
func OptionArgument(s string) string {
	idx := strings.Index(s, optionTypeName)
	if idx < 0 {
		return ""
	}
	_, inner := SplitAngleBrackets(s[idx:])
	return inner
}

// Fingerprint is a short stable identifier for a fully-qualified type,
// computed over the originating address, module name, and struct name.
// Generic arguments are excluded, so all instantiations of a generic type
// share a fingerprint
type Fingerprint struct {
	sig TypeSignature
}

// NewFingerprint creates a Fingerprint for the specified signature
func NewFingerprint(sig TypeSignature) Fingerprint {
	return Fingerprint{sig: sig}
}

func (f Fingerprint) Hash() []byte {
	tmpHash, err := blake2b.New(FingerprintHashSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error creating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(f.sig.Address.Bytes())
	tmpHash.Write([]byte(f.sig.Module))
	tmpHash.Write([]byte(f.sig.Name))
	return tmpHash.Sum(nil)
}

func (f Fingerprint) String() string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(f.Hash(), 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(FingerprintPrefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}
