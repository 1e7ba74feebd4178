package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lensprior/config"
	"github.com/katalvlaran/lensprior/generate"
	"github.com/katalvlaran/lensprior/prior"
)

// Output formats of the sample command.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newSampleCmd() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw samples and print them (JSON lines or a YAML list)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v.GetString("config"))
			if err != nil {
				return err
			}

			n := v.GetInt("count")
			if !cmd.Flags().Changed("count") && cfg.NData > 0 {
				n = cfg.NData
			}
			format := v.GetString("format")
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("sample: unknown --format %q (want json or yaml)", format)
			}

			opts := []prior.Option{prior.WithLogger(log.Logger)}
			if v.GetBool("strict") {
				opts = append(opts, prior.WithStrictProfiles())
			}
			p, err := cfg.NewPrior(opts...)
			if err != nil {
				return err
			}

			genOpts := []generate.Option{generate.WithLogger(log.Logger)}
			switch {
			case cmd.Flags().Changed("seed"):
				genOpts = append(genOpts, generate.WithSeed(v.GetUint64("seed")))
			case cfg.HasSeed:
				genOpts = append(genOpts, generate.WithSeed(cfg.Seed))
			}
			if w := v.GetInt("workers"); w > 0 {
				genOpts = append(genOpts, generate.WithWorkers(w))
			}
			log.Info().
				Str("config", cfg.Path).
				Str("class", string(cfg.Class)).
				Int("n", n).
				Msg("sampling")

			samples, err := generate.Generate(cmd.Context(), p, n, genOpts...)
			if err != nil {
				return err
			}

			return writeSamples(cmd.OutOrStdout(), format, samples)
		},
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "Prior configuration file (YAML)")
	f.IntP("count", "n", 1, "Number of samples (default: n_data from the config, else 1)")
	f.Uint64("seed", 0, "Batch seed (default: seed from the config, else random)")
	f.Int("workers", 0, "Concurrent draws (default: GOMAXPROCS)")
	f.String("format", formatJSON, "Output format (json, yaml)")
	f.Bool("strict", false, "Check components against the profile registry")
	cobra.CheckErr(cmd.MarkFlagRequired("config"))
	cobra.CheckErr(v.BindPFlags(f))

	return cmd
}

// writeSamples prints one JSON object per line, or one YAML sequence.
func writeSamples(w io.Writer, format string, samples []prior.Sample) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(samples); err != nil {
			return err
		}

		return enc.Close()
	}

	enc := json.NewEncoder(w)
	for _, s := range samples {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}

	return nil
}
