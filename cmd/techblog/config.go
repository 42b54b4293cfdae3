// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/techblog-engine/internal/secrets"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

const defaultUserAgent = "techblog/0.1"

func setDefaults() {
	viper.SetDefault("search.timeout", 60*time.Second)
	viper.SetDefault("search.num_results", 10)
	viper.SetDefault("search.recency_days", 30)
	viper.SetDefault("search.max_retries", 3)
	viper.SetDefault("generation.query_model", "gpt-3.5-turbo")
	viper.SetDefault("generation.section_concurrency", 5)
	viper.SetDefault("generation.timeout", 5*time.Minute)
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("output.format", string(types.FormatMarkdown))
	viper.SetDefault("archive.dir", "archive")
	viper.SetDefault("archive.max_results", 20)
}

// pipelineConfig assembles stage configs from viper. Credentials come from
// the loaded secrets, not from the config file.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: defaultUserAgent,
			},
			APIKey:      loadedSecrets[secrets.ExaAPIKey],
			BaseURL:     viper.GetString("search.base_url"),
			NumResults:  viper.GetInt("search.num_results"),
			RecencyDays: viper.GetInt("search.recency_days"),
			MaxRetries:  viper.GetInt("search.max_retries"),
		},
		OpenAI: types.AIConfig{
			APIKey:  loadedSecrets[secrets.OpenAIAPIKey],
			BaseURL: viper.GetString("openai.base_url"),
		},
		Generation: types.GenerationConfig{
			QueryModel:         viper.GetString("generation.query_model"),
			SectionConcurrency: viper.GetInt("generation.section_concurrency"),
		},
		Output: types.OutputConfig{
			Dir:    viper.GetString("output.dir"),
			Format: types.OutputFormat(viper.GetString("output.format")),
		},
		Archive: types.ArchiveConfig{
			Dir:        viper.GetString("archive.dir"),
			MaxResults: viper.GetInt("archive.max_results"),
		},
	}
}
