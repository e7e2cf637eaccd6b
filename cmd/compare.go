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
	"context"
	"fmt"
	"iter"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/valpere/mtcompare/internal/compare"
	"github.com/valpere/mtcompare/internal/render"
)

var (
	jsonOutput bool
	quiet      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <term>",
	Short: "Translate a term with several engines and compare the results",
	Long: `Translate a term with each selected engine in turn and show the results
side by side. On a terminal the panel is redrawn as each engine answers;
otherwise only the final panel is printed.

Engines are chosen with --engines (comma separated, or "all"). Without it the
usual selection is used: every registered engine except lingvanex and
mymemory.

Examples:
  mtcompare compare 碳中和
  mtcompare compare -s en -t zh-TW -e google,bing blockchain
  mtcompare compare --json -e all "carbon footprint"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := buildRegistry(cfg, logger)
		if registry.Len() == 0 {
			fmt.Fprintln(os.Stderr, "Warning: no engines are configured.")
		}

		req := compare.Request{
			Text:    strings.Join(args, " "),
			Source:  cfg.Source,
			Target:  cfg.Target,
			Engines: selectEngines(registry, cfg.Engines),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		seq := compare.NewAggregator(registry, aggregatorOptions(cfg, logger)).Stream(ctx, req)
		if len(req.Engines) == 0 && strings.TrimSpace(req.Text) != "" {
			seq = compare.Message(compare.MsgNoEngines)
		}

		last, summary := present(seq)
		if jsonOutput {
			fmt.Println(summary)
		}
		if last.Message != "" {
			return fmt.Errorf("%s", last.Message)
		}
		return nil
	},
}

// present draws each snapshot and returns the last one with its summary.
func present(seq iter.Seq2[compare.Snapshot, string]) (compare.Snapshot, string) {
	fd := int(os.Stdout.Fd())
	live := !jsonOutput && !quiet && term.IsTerminal(fd)
	width := 0
	if live {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	var last compare.Snapshot
	var summary string
	drawn := 0
	for snap, s := range seq {
		last, summary = snap, s
		if !live {
			continue
		}
		if drawn > 0 {
			// Move back over the previous panel and clear it.
			fmt.Printf("\x1b[%dA\x1b[J", drawn)
		}
		out := render.Terminal(snap, width)
		fmt.Println(out)
		drawn = strings.Count(out, "\n") + 1
	}

	if !live && !jsonOutput {
		fmt.Println(render.Terminal(last, width))
	}
	return last, summary
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print only the JSON summary of successful engines")
	compareCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the final panel")
}
