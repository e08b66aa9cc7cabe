/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/discover/apis"
)

// newCollectCommand creates the collect command
func newCollectCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "collect <manifest> <type>",
		Short: "Print every annotation observation of one type",
		Long: `collect prints the raw observations of a type in pass order, before
instances of the same kind are folded into one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := o.engine(args[0])
			if err != nil {
				return err
			}
			obs := e.Collect(apis.TypeID(args[1]))
			w := cmd.OutOrStdout()
			if o.format == "json" {
				return writeJSON(w, obs)
			}
			for _, inst := range obs {
				fmt.Fprintf(w, "%-24s %s", inst.Location, inst.Kind)
				for _, k := range inst.Attributes.Keys() {
					fmt.Fprintf(w, " %s=%v", k, inst.Attributes[k])
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}
