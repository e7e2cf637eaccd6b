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
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/valpere/mtcompare/internal/compare"
	"github.com/valpere/mtcompare/internal/config"
	"github.com/valpere/mtcompare/internal/engine"
	"github.com/valpere/mtcompare/internal/translator"
)

const compareDefaultPace = compare.DefaultPace

// buildRegistry registers the integrations the configuration makes
// available. It never fails: an empty registry is reported by the caller.
func buildRegistry(c *config.Config, log zerolog.Logger) *engine.Registry {
	caps := c.Capabilities()
	var integrations []engine.Integration

	if caps.Allows(engine.FamilyDirect) {
		direct := map[string]translator.Backend{
			"mymemory": translator.NewMyMemoryClient(c.MyMemory.Email),
		}
		if c.Google.Enabled {
			var extra []option.ClientOption
			if c.Google.ProjectID != "" {
				extra = append(extra, option.WithQuotaProject(c.Google.ProjectID))
			}
			direct["google"] = translator.NewGoogleClient(c.Google.Credentials, extra...)
		}
		if c.Systran.APIKey != "" {
			direct["systran"] = translator.NewSystranClient(c.Systran.APIKey)
		}
		if c.DeepL.APIKey != "" {
			direct["deepl"] = translator.NewDeepLClient(c.DeepL.APIKey, c.DeepL.URL)
		}
		integrations = append(integrations, engine.Direct(direct))
	}

	if caps.Allows(engine.FamilyGateway) {
		integrations = append(integrations, engine.Gateway(translator.NewGatewayClient(c.Gateway.URL)))
	}

	if caps.Allows(engine.FamilyLLM) {
		llm := map[string]translator.Backend{}
		if c.Ollama.Enabled {
			llm["ollama"] = translator.NewOllamaClient(c.Ollama.URL, c.Ollama.Model)
		}
		if c.OpenRouter.APIKey != "" {
			llm["openrouter"] = translator.NewOpenRouterClient(c.OpenRouter.APIKey, "", c.OpenRouter.Models)
		}
		integrations = append(integrations, engine.LLM(llm))
	}

	registry := engine.NewRegistry(integrations...)
	log.Debug().
		Bool("direct", caps.Direct).
		Bool("gateway", caps.Gateway).
		Bool("llm", caps.LLM).
		Strs("engines", registry.IDs()).
		Msg("registry built")
	return registry
}

// selectEngines resolves the engines to run: the explicit selection, or the
// registry's default set when there is none.
func selectEngines(registry *engine.Registry, selection []string) []string {
	if len(selection) == 0 {
		return registry.Defaults()
	}
	return registry.Expand(selection)
}

func aggregatorOptions(c *config.Config, log zerolog.Logger) compare.Options {
	return compare.Options{
		Pace:           c.Pace,
		GatewayTimeout: c.Gateway.Timeout,
		Logger:         log,
	}
}
