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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mintgate-io/movetypes/gate"
)

var checkRequired string

var checkCmd = &cobra.Command{
	Use:   "check <presented-type>",
	Short: "Check a runtime type name against a required type",
	Long: `Check whether a presented runtime type name exactly matches the required
type. Exits non-zero on a mismatch or when either type name fails to parse.

Examples:
  movetypes check --required '0000...0002::sui::SUI' '0000...0002::sui::SUI'`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(
		&checkRequired,
		"required",
		"r",
		"",
		"required type name (required)",
	)
	if err := checkCmd.MarkFlagRequired("required"); err != nil {
		panic(fmt.Sprintf("unexpected error marking flag required: %s", err))
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := gate.New(checkRequired)
	if err != nil {
		return err
	}
	logger.Debug(
		"checking presented type",
		zap.String("required", checkRequired),
		zap.String("presented", args[0]),
	)
	if err := g.Check(args[0]); err != nil {
		return err
	}
	fmt.Println("match")
	return nil
}
