package main

import (
	"github.com/far4599/yt-trim/internal/config"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	conf       *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "yt-trim",
		Short:         "Download trimmed MP3/MP4 extracts of YouTube videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// a missing .env is fine, the environment may be set already
			_ = godotenv.Load()

			conf, err := config.NewConfig(cmd.Context(), opts.configFile)
			if err != nil {
				return err
			}

			if err = log.SetLevel(conf.Log.Level, conf.Log.Production); err != nil {
				return errors.Wrapf(err, "invalid log level '%s'", conf.Log.Level)
			}

			opts.conf = conf

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "f", "", "path to configuration yaml file")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newClipCmd(opts))

	return cmd
}
