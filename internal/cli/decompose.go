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

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mintgate-io/movetypes/address"
	"github.com/mintgate-io/movetypes/typename"
)

var (
	decomposeJSON    bool
	decomposeAddrLen int
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <type-name>",
	Short: "Decompose a fully-qualified type name into its components",
	Long: `Decompose a type name into originating address, module, struct name, and
generic arguments.

Examples:
  movetypes decompose '0000...0002::coin::Coin<0000...0002::sui::SUI>'
  movetypes decompose 'vector<u8>' --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDecompose,
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
	decomposeCmd.Flags().
		BoolVar(&decomposeJSON, "json", false, "output as JSON")
	decomposeCmd.Flags().IntVar(
		&decomposeAddrLen,
		"address-length",
		address.Length,
		"platform address width in bytes",
	)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	parser, err := typename.NewParser(decomposeAddrLen)
	if err != nil {
		return err
	}
	sig, err := parser.Decompose(args[0])
	if err != nil {
		return fmt.Errorf("failed to decompose type name: %w", err)
	}
	logger.Debug(
		"decomposed type name",
		zap.String("name", sig.Name),
		zap.Int("typeParams", len(sig.TypeParams)),
	)
	if decomposeJSON {
		jsonData, err := json.MarshalIndent(sig, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(jsonData))
		return nil
	}
	if !sig.Address.IsZero() || sig.Module != "" {
		fmt.Printf("address:    %s\n", sig.Address.Hex())
		fmt.Printf("module:     %s\n", sig.Module)
	} else {
		fmt.Println("address:    (none, primitive type)")
	}
	fmt.Printf("name:       %s\n", sig.Name)
	if len(sig.TypeParams) > 0 {
		fmt.Printf("typeParams: %s\n", strings.Join(sig.TypeParams, ", "))
	}
	return nil
}
