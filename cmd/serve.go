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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valpere/mtcompare/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI",
	Long: `Start the web UI: a form to enter a term and pick engines, a live status
panel fed by server-sent events and a JSON summary of the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := buildRegistry(cfg, logger)
		if registry.Len() == 0 {
			logger.Warn().Msg("no engines are configured; the UI will have nothing to compare")
		}

		srv := server.New(registry, server.Options{
			Aggregator:  aggregatorOptions(cfg, logger),
			CORSOrigins: cfg.Server.CORSOrigins,
			Source:      cfg.Source,
			Target:      cfg.Target,
			Logger:      logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("Serving on %s\n", cfg.Server.Addr)
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":7860", "Listen address")
	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
