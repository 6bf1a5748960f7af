package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/far4599/yt-trim/internal/app"
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/deps"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/far4599/yt-trim/internal/timerange"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type clipOptions struct {
	start string
	end   string
	kind  string
	title string
	out   string
}

func newClipCmd(root *rootOptions) *cobra.Command {
	opts := &clipOptions{}

	cmd := &cobra.Command{
		Use:   "clip <url>",
		Short: "Download one trimmed extract to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClip(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start time, HH:MM:SS (default beginning of the video)")
	cmd.Flags().StringVar(&opts.end, "end", "", "end time, HH:MM:SS (default end of the video)")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", string(models.MediaAudio), "audio or video")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "file name to use instead of the video title")
	cmd.Flags().StringVarP(&opts.out, "out", "o", ".", "output directory or file")

	return cmd
}

func runClip(cmd *cobra.Command, root *rootOptions, opts *clipOptions, url string) error {
	ctx := cmd.Context()

	kind, err := models.ParseMediaKind(opts.kind)
	if err != nil {
		return err
	}

	if errs := deps.CheckAll(root.conf.YtDlp.Binary, root.conf.FFmpeg.Binary); len(errs) > 0 {
		return errs[0]
	}

	vs, err := app.NewVideoService(root.conf)
	if err != nil {
		return err
	}

	info, err := vs.GetVideoInfo(ctx, url)
	if err != nil {
		return err
	}

	state := timerange.NewState(info.Duration)
	if opts.end != "" {
		state = state.EditEnd(opts.end)
	}
	if opts.start != "" {
		state = state.EditStart(opts.start)
	}

	stderr := cmd.ErrOrStderr()
	clip, err := vs.Clip(ctx, models.DownloadRequest{
		URL:   url,
		Kind:  kind,
		Range: state.Range(),
		Title: opts.title,
		Info:  *info,
	}, func(p models.Progress) {
		fmt.Fprintln(stderr, p.String())
	})
	if err != nil {
		return err
	}

	path := opts.out
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		path = filepath.Join(path, clip.Filename)
	}

	if err = os.WriteFile(path, clip.Data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write '%s'", path)
	}

	log.Logger.Infow("clip saved", "path", path, "range", state.Range().String())

	return nil
}
