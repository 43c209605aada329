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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintgate-io/movetypes/typename"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <type-name>",
	Short: "Print the short fingerprint of a fully-qualified type",
	Args:  cobra.ExactArgs(1),
	RunE:  runFingerprint,
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	sig, err := typename.Decompose(args[0])
	if err != nil {
		return fmt.Errorf("failed to decompose type name: %w", err)
	}
	if sig.Address.IsZero() {
		return errors.New("primitive types have no fingerprint")
	}
	fmt.Println(typename.NewFingerprint(sig).String())
	return nil
}
