// Copyright 2026 The Router Authors
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

package command

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/view"
)

func NewVersionCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: Highlight("router version") + "\n\n" +
			"Display the current version of router.\n\n" +
			"This information is useful for bug reports, ensuring team\n" +
			"consistency, and verifying compatibility with documentation\n" +
			"and automation scripts.\n",
		Args: MaxArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if _, ok := cli.Viewer.(*view.JSONView); ok {
				if data, err := json.MarshalIndent(version.GetVersionInfo(), "", "  "); err == nil {
					cli.Println(string(data))
					return
				}
			}

			cli.PrintVersion()
		},
	}
	return cmd
}
