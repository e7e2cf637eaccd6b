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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/mtcompare/internal/config"
	"github.com/valpere/mtcompare/internal/logging"
	"github.com/valpere/mtcompare/internal/render"
)

var version = "0.1.0"

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
	logger  = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "mtcompare",
	Short: "Compare how machine-translation engines translate a term",
	Long: render.IntroText() + `

Sends one term to several MT engines in turn and shows each answer as it
arrives.

Use "mtcompare compare --help" for comparison options and
"mtcompare serve" for the web UI.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		loaded.ResolveSecrets()
		cfg = loaded

		logger, err = logging.New(cfg.LogFormat, cfg.LogLevel)
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.mtcompare.yaml)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console or json)")
	pf.StringP("source", "s", "auto", "Source language code, or auto")
	pf.StringP("target", "t", "en", "Target language code")
	pf.StringSliceP("engines", "e", nil, "Engines to compare, comma separated, or all (default: the usual selection)")
	pf.Duration("pace", compareDefaultPace, "Pause between engines")
	pf.String("gateway-url", "", "Base URL of the translation gateway serving bing/alibaba/sogou/youdao/tencent/lingvanex")
	pf.String("google-credentials", "", "Path to Google Cloud credentials (enables the google engine)")
	pf.String("mymemory-email", "", "MyMemory email (for higher limits)")
	pf.Bool("ollama", false, "Register the local Ollama engine")

	for key, flag := range map[string]string{
		"log_level":          "log-level",
		"log_format":         "log-format",
		"source":             "source",
		"target":             "target",
		"engines":            "engines",
		"pace":               "pace",
		"gateway.url":        "gateway-url",
		"google.credentials": "google-credentials",
		"mymemory.email":     "mymemory-email",
		"ollama.enabled":     "ollama",
	} {
		v.BindPFlag(key, pf.Lookup(flag))
	}
}
