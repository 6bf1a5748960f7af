package main

import (
	"errors"

	"github.com/far4599/yt-trim/internal/app"
	"github.com/far4599/yt-trim/internal/pkg/deps"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and the optional telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := deps.CheckAll(opts.conf.YtDlp.Binary, opts.conf.FFmpeg.Binary); len(errs) > 0 {
				return errors.Join(errs...)
			}

			log.Logger.Infow("starting", "addr", opts.conf.HTTP.Addr, "bot", opts.conf.BotEnabled())

			return app.NewApp(opts.conf).Run(cmd.Context())
		},
	}
}
