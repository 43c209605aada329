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
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/mintgate-io/movetypes/address"
	"github.com/mintgate-io/movetypes/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDecomposeQualified(t *testing.T) {
	testDefs := []struct {
		input           string
		expectedAddress string
		expectedModule  string
		expectedName    string
		expectedParams  []string
	}{
		{
			input:           test.AddressHex(0x02) + "::sui::SUI",
			expectedAddress: test.AddressHex(0x02),
			expectedModule:  "sui",
			expectedName:    "SUI",
		},
		{
			input: test.AddressHex(0x02) + "::coin::Coin<" + test.AddressHex(
				0x02,
			) + "::sui::SUI>",
			expectedAddress: test.AddressHex(0x02),
			expectedModule:  "coin",
			expectedName:    "Coin",
			expectedParams: []string{
				test.AddressHex(0x02) + "::sui::SUI",
			},
		},
		{
			input: "5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf::capy::Capy",
			expectedAddress: "5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf",
			expectedModule:  "capy",
			expectedName:    "Capy",
		},
	}
	for _, testDef := range testDefs {
		sig, err := Decompose(testDef.input)
		if err != nil {
			t.Fatalf("failed to decompose %q: %s", testDef.input, err)
		}
		if sig.Address.String() != testDef.expectedAddress {
			t.Fatalf(
				"address did not match expected value, got: %s, wanted: %s",
				sig.Address.String(),
				testDef.expectedAddress,
			)
		}
		if sig.Module != testDef.expectedModule {
			t.Fatalf(
				"module did not match expected value, got: %s, wanted: %s",
				sig.Module,
				testDef.expectedModule,
			)
		}
		if sig.Name != testDef.expectedName {
			t.Fatalf(
				"name did not match expected value, got: %s, wanted: %s",
				sig.Name,
				testDef.expectedName,
			)
		}
		if !slices.Equal(sig.TypeParams, testDef.expectedParams) {
			t.Fatalf(
				"params did not match expected value, got: %#v, wanted: %#v",
				sig.TypeParams,
				testDef.expectedParams,
			)
		}
		// Round trip through the string form
		if sig.String() != testDef.input {
			t.Fatalf(
				"signature did not round trip, got: %s, wanted: %s",
				sig.String(),
				testDef.input,
			)
		}
	}
}

func TestDecomposePrimitive(t *testing.T) {
	testDefs := []struct {
		input          string
		expectedName   string
		expectedParams []string
	}{
		{
			input:        "u64",
			expectedName: "u64",
		},
		{
			input:          "vector<u8>",
			expectedName:   "vector",
			expectedParams: []string{"u8"},
		},
		{
			// Contains "::" but not at the configured address offset, so it
			// must not be routed into the fully-qualified branch
			input:          "vector<0x2::sui::SUI>",
			expectedName:   "vector",
			expectedParams: []string{"0x2::sui::SUI"},
		},
	}
	for _, testDef := range testDefs {
		sig, err := Decompose(testDef.input)
		if err != nil {
			t.Fatalf("failed to decompose %q: %s", testDef.input, err)
		}
		if !sig.Address.IsZero() {
			t.Fatalf(
				"expected sentinel address for primitive %q, got: %s",
				testDef.input,
				sig.Address.String(),
			)
		}
		if sig.Module != "" {
			t.Fatalf(
				"expected empty module for primitive %q, got: %s",
				testDef.input,
				sig.Module,
			)
		}
		if sig.Name != testDef.expectedName {
			t.Fatalf(
				"name did not match expected value, got: %s, wanted: %s",
				sig.Name,
				testDef.expectedName,
			)
		}
		if !slices.Equal(sig.TypeParams, testDef.expectedParams) {
			t.Fatalf(
				"params did not match expected value, got: %#v, wanted: %#v",
				sig.TypeParams,
				testDef.expectedParams,
			)
		}
	}
}

func TestDecomposeConfigurableWidth(t *testing.T) {
	// A 1-byte address width puts the first separator at offset 2
	parser, err := NewParser(1)
	require.NoError(t, err)
	sig, err := parser.Decompose("01::coin::Coin<02::sui::SUI>")
	require.NoError(t, err)
	// Narrow addresses are numeric values and pad on the left into the
	// full-width container
	var expectedAddr address.Address
	copy(expectedAddr[:], test.DecodeHexString(test.AddressHex(0x01)))
	assert.Equal(t, expectedAddr, sig.Address)
	assert.Equal(t, "coin", sig.Module)
	assert.Equal(t, "Coin", sig.Name)
	assert.Equal(t, []string{"02::sui::SUI"}, sig.TypeParams)
	// The rendered form is always full width, so a short input does not
	// round trip through String()
	assert.Equal(
		t,
		test.AddressHex(0x01)+"::coin::Coin<02::sui::SUI>",
		sig.String(),
	)

	// The same input under the default parser is a primitive: the separator
	// is not at the full-width offset
	sig, err = Decompose("01::coin::Coin<02::sui::SUI>")
	require.NoError(t, err)
	assert.True(t, sig.Address.IsZero())
}

func TestNewParserBounds(t *testing.T) {
	for _, width := range []int{0, -1, address.Length + 1} {
		if _, err := NewParser(width); err == nil {
			t.Fatalf("expected error for address width %d, got none", width)
		}
	}
}

func TestDecomposeErrors(t *testing.T) {
	parser, err := NewParser(1)
	if err != nil {
		t.Fatalf("failed to create parser: %s", err)
	}
	testDefs := []struct {
		parser      *Parser
		input       string
		expectedErr error
	}{
		{
			// Non-hex prefix of the expected address length
			parser:      parser,
			input:       "zz::m::S",
			expectedErr: ErrMalformedAddress,
		},
		{
			// Missing second separator
			parser:      parser,
			input:       "01::moduleonly",
			expectedErr: ErrInvalidTypeName,
		},
		{
			parser:      defaultParser,
			input:       test.AddressHex(0x02) + "::noseparator",
			expectedErr: ErrInvalidTypeName,
		},
	}
	for _, testDef := range testDefs {
		_, err := testDef.parser.Decompose(testDef.input)
		if err == nil {
			t.Fatalf("expected error decomposing %q, got none", testDef.input)
		}
		if !errors.Is(err, testDef.expectedErr) {
			t.Fatalf(
				"did not get expected error for %q, got: %s, wanted: %s",
				testDef.input,
				err,
				testDef.expectedErr,
			)
		}
	}
}

func TestTypeSignatureEqual(t *testing.T) {
	sigA, err := Decompose(
		test.AddressHex(0x0a) + "::pair::Pair<u8, u16>",
	)
	require.NoError(t, err)
	sigB, err := Decompose(
		test.AddressHex(0x0a) + "::pair::Pair<u8, u16>",
	)
	require.NoError(t, err)
	sigC, err := Decompose(
		test.AddressHex(0x0a) + "::pair::Pair<u16, u8>",
	)
	require.NoError(t, err)
	assert.True(t, sigA.Equal(sigB))
	assert.True(t, sigB.Equal(sigA))
	// Argument order is semantically significant
	assert.False(t, sigA.Equal(sigC))
	assert.True(t, sigA.SameModule(sigC))
}

func TestTypeSignatureJson(t *testing.T) {
	sig, err := Decompose(test.AddressHex(0x02) + "::coin::Coin<u64>")
	require.NoError(t, err)
	jsonData, err := json.Marshal(sig)
	require.NoError(t, err)
	expectedJson := `{"address":"` + test.AddressHex(
		0x02,
	) + `","module":"coin","name":"Coin","typeParams":["u64"]}`
	assert.Equal(t, expectedJson, string(jsonData))
	var sig2 TypeSignature
	require.NoError(t, json.Unmarshal(jsonData, &sig2))
	assert.True(t, sig.Equal(sig2))

	// Primitive signatures omit the address and module entirely
	prim, err := Decompose("u64")
	require.NoError(t, err)
	jsonData, err = json.Marshal(prim)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"u64"}`, string(jsonData))
}

func TestTypeSignatureCbor(t *testing.T) {
	sig, err := Decompose(
		test.AddressHex(0x02) + "::coin::Coin<" + test.AddressHex(
			0x02,
		) + "::sui::SUI>",
	)
	require.NoError(t, err)
	cborData, err := cbor.Marshal(sig)
	require.NoError(t, err)
	var sig2 TypeSignature
	require.NoError(t, cbor.Unmarshal(cborData, &sig2))
	assert.True(t, sig.Equal(sig2))
}

func TestDecomposeConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	// Decomposition is pure, so concurrent callers need no coordination
	inputs := []string{
		test.AddressHex(0x02) + "::coin::Coin<" + test.AddressHex(
			0x02,
		) + "::sui::SUI>",
		"vector<u8>",
		"u64",
		test.AddressHex(0x0a) + "::pair::Pair<u8, Pair<u16, u32>>",
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, input := range inputs {
					sig, err := Decompose(input)
					if err != nil {
						t.Errorf("failed to decompose %q: %s", input, err)
						return
					}
					if sig.String() != input {
						t.Errorf(
							"signature did not round trip, got: %s, wanted: %s",
							sig.String(),
							input,
						)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
