/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

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
package cmd

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/mtcompare/internal/engine"
)

var showCatalog bool

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the engines available with the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := buildRegistry(cfg, logger)
		defaults := registry.Defaults()

		list := registry.Descriptors()
		if showCatalog {
			list = engine.Catalog
		}
		if len(list) == 0 {
			fmt.Println("No engines are configured. Set gateway.url, google.enabled or an API key.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tNAME (ZH)\tFAMILY\tPRIORITY\tAVAILABLE\tDEFAULT")
		for _, d := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%v\t%v\n",
				d.ID, d.Name, d.NameZh, d.Family, d.Priority,
				registry.Has(d.ID), slices.Contains(defaults, d.ID))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)

	enginesCmd.Flags().BoolVar(&showCatalog, "all", false, "Show every known engine, including unconfigured ones")
}
