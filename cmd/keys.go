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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/mtcompare/internal/secrets"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage provider API keys in the OS keychain",
	Long: `Store, remove and inspect API keys kept in the OS keychain.

Keys set in the configuration file or environment take precedence over the
keychain. Providers: ` + strings.Join(secrets.Providers, ", "),
}

var keysSetCmd = &cobra.Command{
	Use:   "set <provider>",
	Short: "Prompt for a key and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := secrets.Prompt(fmt.Sprintf("Enter %s API key: ", args[0]))
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		if err := secrets.Save(args[0], key); err != nil {
			return fmt.Errorf("failed to save key: %w", err)
		}
		fmt.Printf("Stored %s key in the keychain.\n", args[0])
		return nil
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete <provider>",
	Short: "Remove a stored key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}
		fmt.Printf("Deleted %s key.\n", args[0])
		return nil
	},
}

var keysStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where each provider's key comes from",
	RunE: func(cmd *cobra.Command, args []string) error {
		configured := map[string]string{
			"systran":    v.GetString("systran.api_key"),
			"deepl":      v.GetString("deepl.api_key"),
			"openrouter": v.GetString("openrouter.api_key"),
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PROVIDER\tSOURCE")
		for _, p := range secrets.Providers {
			_, src := secrets.Resolve(p, configured[p])
			if src == secrets.SourceNone {
				src = "not set"
			}
			fmt.Fprintf(w, "%s\t%s\n", p, src)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysSetCmd, keysDeleteCmd, keysStatusCmd)
}
