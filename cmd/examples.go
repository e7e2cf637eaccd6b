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

	"github.com/spf13/cobra"

	"github.com/valpere/mtcompare/internal/examples"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [category]",
	Short: "Show example terms by subject",
	Long: `Show the built-in terminology examples. Each line is a ready-to-run
compare command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := examples.Catalog
		if len(args) == 1 {
			c, ok := examples.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}
			categories = []examples.Category{c}
		}

		for i, c := range categories {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s %s [%s]\n", c.Icon, c.Title, c.ID)
			for _, e := range c.Examples {
				fmt.Printf("  mtcompare compare -s %s -t %s %q\n", e.Source, e.Target, e.Text)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
