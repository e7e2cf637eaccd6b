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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/mtcompare/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tLANGUAGE")
		fmt.Fprintf(w, "%s\t%s (source only)\n", language.Auto, language.Label(language.Auto))
		for _, o := range language.Supported {
			fmt.Fprintf(w, "%s\t%s\n", o.Code, o.Label)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
