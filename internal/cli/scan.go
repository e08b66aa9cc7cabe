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
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/descriptor"
	"dirpx.dev/discover/registry"
)

// newScanCommand creates the scan command
func newScanCommand(o *options) *cobra.Command {
	var (
		kinds  []string
		marked bool
	)
	cmd := &cobra.Command{
		Use:   "scan <manifest>",
		Short: "Discover the types of a manifest and print the index",
		Example: `  # Index every type carrying the discovery marker
  discover scan types.yaml

  # Only types carrying app.Handler or app.Job
  discover scan types.yaml --kind app.Handler --kind app.Job

  # Register every declared type without discovery
  discover scan types.toml --marked --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, p, err := o.engine(args[0])
			if err != nil {
				return err
			}

			var (
				reg    *registry.Registry
				vetoed []apis.TypeID
			)
			if marked {
				reg = e.Of(p.Types())
			} else {
				r, d, err := e.Discover(cmd.Context(), p.Types())
				if err != nil {
					return err
				}
				reg, vetoed = r, d.Vetoed()
			}

			ds := reg.Enumerate()
			if len(kinds) > 0 {
				ks := make([]apis.Kind, 0, len(kinds))
				for _, k := range kinds {
					ks = append(ks, apis.Kind(k))
				}
				ds = reg.QueryAny(ks...)
			}

			if o.format == "json" {
				return writeJSON(cmd.OutOrStdout(), indexView(reg, ds, vetoed))
			}
			writeIndexTable(cmd.OutOrStdout(), reg, ds, vetoed)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "Only print types carrying any of these kinds")
	cmd.Flags().BoolVar(&marked, "marked", false, "Register every declared type without discovery")
	return cmd
}

// typeJSON is the JSON shape of a descriptor.
type typeJSON struct {
	Type        apis.TypeID       `json:"type"`
	Excluded    bool              `json:"excluded"`
	Qualifiers  []apis.Annotation `json:"qualifiers,omitempty"`
	Annotations []apis.Instance   `json:"annotations"`
}

// indexJSON is the JSON shape of a scan.
type indexJSON struct {
	Registry string                      `json:"registry"`
	Kinds    map[apis.Kind][]apis.TypeID `json:"kinds"`
	Types    []typeJSON                  `json:"types"`
	Vetoed   []apis.TypeID               `json:"vetoed,omitempty"`
}

func indexView(reg *registry.Registry, ds []*descriptor.Descriptor, vetoed []apis.TypeID) indexJSON {
	v := indexJSON{
		Registry: reg.ID().String(),
		Kinds:    make(map[apis.Kind][]apis.TypeID),
		Vetoed:   vetoed,
	}
	for _, k := range reg.Kinds() {
		for _, d := range reg.Query(k) {
			v.Kinds[k] = append(v.Kinds[k], d.Subject())
		}
	}
	for _, d := range ds {
		v.Types = append(v.Types, typeView(d))
	}
	return v
}

func typeView(d *descriptor.Descriptor) typeJSON {
	return typeJSON{
		Type:        d.Subject(),
		Excluded:    d.IsExcluded(),
		Qualifiers:  d.Qualifiers(),
		Annotations: d.Instances(),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeIndexTable(w io.Writer, reg *registry.Registry, ds []*descriptor.Descriptor, vetoed []apis.TypeID) {
	header := color.New(color.FgCyan, color.Bold)
	kindColor := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	header.Fprintf(w, "Registry %s\n\n", reg.ID())
	header.Fprintln(w, "KINDS")
	for _, k := range reg.Kinds() {
		kindColor.Fprintf(w, "  %s", k)
		fmt.Fprintf(w, " (%d)\n", len(reg.Query(k)))
	}

	fmt.Fprintln(w)
	header.Fprintln(w, "TYPES")
	for _, d := range ds {
		fmt.Fprintf(w, "  %s", d.Subject())
		if d.IsExcluded() {
			dim.Fprint(w, " [excluded]")
		}
		fmt.Fprintln(w)
		for _, inst := range d.Instances() {
			kindColor.Fprintf(w, "    %-32s", inst.Kind)
			dim.Fprintf(w, " %s\n", inst.Location)
		}
	}

	if len(vetoed) > 0 {
		fmt.Fprintln(w)
		header.Fprintln(w, "VETOED")
		for _, t := range vetoed {
			fmt.Fprintf(w, "  %s\n", t)
		}
	}
}
