package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/pkg/errors"
)

const (
	errorPrefix = "ERROR: "

	// yt-dlp -j prints one json document per line, those exceed the default scanner buffer
	maxLineSize = 16 << 20
)

// LineFunc receives stdout lines with terminal colour sequences removed.
type LineFunc func(line string)

// Runner executes the yt-dlp binary.
type Runner struct {
	binary   string
	cacheDir string
}

func NewRunner(binary, cacheDir string) *Runner {
	return &Runner{
		binary:   binary,
		cacheDir: cacheDir,
	}
}

// Run invokes yt-dlp for url with args appended to the defaults and returns
// everything written to stdout. The url is passed on stdin so that it can't
// be mistaken for an option.
func (r *Runner) Run(ctx context.Context, url string, onLine LineFunc, args ...string) ([]byte, error) {
	defaultArgs := []string{
		"--ignore-config",
		"--no-colors",
		"--cache-dir", r.cacheDir,
		"--batch-file", "-",
	}

	cmd := exec.CommandContext(ctx, r.binary, append(defaultArgs, args...)...)
	cmd.Stdin = bytes.NewBufferString(url + "\n")

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}

	if err = cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to start %s", r.binary)
	}

	lastErr := make(chan string, 1)
	go func() {
		lastErr <- scanErrors(stderr)
	}()

	out, readErr := readLines(stdout, onLine)
	errLine := <-lastErr

	if err = cmd.Wait(); err != nil {
		if errLine != "" {
			return nil, errors.Errorf("yt-dlp: %s", errLine)
		}
		return nil, errors.Wrap(err, "yt-dlp exited unexpectedly")
	}
	if readErr != nil {
		return nil, errors.Wrap(readErr, "failed to read yt-dlp output")
	}

	return out, nil
}

func readLines(r io.Reader, onLine LineFunc) ([]byte, error) {
	var buf bytes.Buffer

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		buf.Write(line)
		buf.WriteByte('\n')

		if onLine != nil {
			onLine(StripANSI(string(line)))
		}
	}

	if err := scanner.Err(); err != nil {
		// drain so that the process can exit
		_, _ = io.Copy(io.Discard, r)
		return nil, err
	}

	return buf.Bytes(), nil
}

func scanErrors(r io.Reader) string {
	var last string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := StripANSI(scanner.Text())
		if strings.HasPrefix(line, errorPrefix) {
			last = line[len(errorPrefix):]
			log.Logger.Errorw("yt-dlp returned error", "error", last)
		}
	}
	_, _ = io.Copy(io.Discard, r)

	return last
}
