package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lensprior/config"
	"github.com/katalvlaran/lensprior/prior"
)

func newValidateCmd() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a prior configuration and draw one sample from it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v.GetString("config"))
			if err != nil {
				return err
			}

			opts := []prior.Option{prior.WithLogger(log.Logger)}
			if v.GetBool("strict") {
				opts = append(opts, prior.WithStrictProfiles())
			}
			p, err := cfg.NewPrior(opts...)
			if err != nil {
				return err
			}
			if _, err = p.Sample(); err != nil {
				return fmt.Errorf("validate: trial draw: %w", err)
			}

			for _, ref := range p.LogScaled() {
				log.Debug().Stringer("param", ref).Msg("log-parameterized")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%s, %d components)\n",
				cfg.Path, cfg.Class, len(p.Components()))

			return err
		},
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "Prior configuration file (YAML)")
	f.Bool("strict", false, "Check components against the profile registry")
	cobra.CheckErr(cmd.MarkFlagRequired("config"))
	cobra.CheckErr(v.BindPFlags(f))

	return cmd
}
