package deps

import (
	"fmt"
	"os/exec"
)

const (
	YtDlpInstallURL  = "https://github.com/yt-dlp/yt-dlp#installation"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError reports an external binary missing from PATH.
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// Check returns a *DependencyError if binary can't be resolved.
func Check(binary, installURL string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return &DependencyError{
			Name:       binary,
			InstallURL: installURL,
		}
	}
	return nil
}

// CheckAll checks yt-dlp and ffmpeg and returns one error per missing binary.
func CheckAll(ytdlpBinary, ffmpegBinary string) []error {
	var errs []error

	if err := Check(ytdlpBinary, YtDlpInstallURL); err != nil {
		errs = append(errs, err)
	}
	if err := Check(ffmpegBinary, FfmpegInstallURL); err != nil {
		errs = append(errs, err)
	}

	return errs
}
