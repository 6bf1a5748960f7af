package web

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/hash"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/far4599/yt-trim/internal/timerange"
	"github.com/far4599/yt-trim/internal/youtube"
)

const invalidURLMessage = "not a valid YouTube URL"

type pageData struct {
	URL      string
	Info     *models.VideoInfo
	Title    string
	Start    string
	End      string
	Lo       int
	Hi       int
	Duration string
	Err      string
	Progress string
	Busy     bool
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	sess.Lock()
	data := pageData{
		URL:   sess.URL,
		Info:  sess.Info,
		Title: sess.Title,
		Err:   sess.Err,
	}
	if data.Err == "" && sess.URL != "" && !youtube.IsValidURL(sess.URL) {
		data.Err = invalidURLMessage
	}
	if sess.Info != nil {
		data.Start = sess.Time.StartText
		data.End = sess.Time.EndText
		data.Lo = sess.Time.Slider.Start
		data.Hi = sess.Time.Slider.End
		data.Duration = timerange.Format(sess.Info.Duration)
	}
	sess.Err = ""
	sess.Unlock()

	data.Progress = sess.Progress()
	data.Busy = sess.Busy()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Logger.Errorw("failed to render page", "error", err)
	}
}

func (s *Server) LoadVideo(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	url := strings.TrimSpace(r.FormValue("url"))

	if !youtube.IsValidURL(url) {
		sess.Lock()
		sess.ClearVideo(url)
		sess.Unlock()

		redirectHome(w, r)
		return
	}

	info, err := s.vs.GetVideoInfo(r.Context(), url)

	sess.Lock()
	if err != nil {
		log.Logger.Errorw("failed to get video info", "url", url, "error", err)
		sess.ClearVideo(url)
		sess.Err = err.Error()
	} else {
		sess.LoadVideo(url, info)
	}
	sess.Unlock()

	redirectHome(w, r)
}

// UpdateRange applies an edit of one of the time fields or of the slider.
func (s *Server) UpdateRange(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess.Lock()
	defer redirectHome(w, r)
	defer sess.Unlock()

	if sess.Info == nil {
		sess.Err = "load a video first"
		return
	}

	if title, ok := r.Form["title"]; ok && len(title) > 0 {
		sess.Title = title[0]
	}

	switch r.FormValue("field") {
	case "start":
		sess.Time = sess.Time.EditStart(r.FormValue("start"))
	case "end":
		sess.Time = sess.Time.EditEnd(r.FormValue("end"))
	case "slider":
		lo, errLo := strconv.Atoi(r.FormValue("lo"))
		hi, errHi := strconv.Atoi(r.FormValue("hi"))
		if errLo != nil || errHi != nil {
			sess.Err = "slider values must be whole seconds"
			return
		}
		sess.Time = sess.Time.MoveSlider(lo, hi)
	case "title":
	default:
		sess.Err = fmt.Sprintf("unknown field '%s'", r.FormValue("field"))
	}
}

// Download runs the whole fetch and trim synchronously and answers with the
// clip as an attachment. A download keeps running when the client goes away.
func (s *Server) Download(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	kind, err := models.ParseMediaKind(r.FormValue("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess.Lock()
	if title, ok := r.Form["title"]; ok && len(title) > 0 {
		sess.Title = title[0]
	}
	info := sess.Info
	req := models.DownloadRequest{
		URL:   sess.URL,
		Kind:  kind,
		Range: sess.Time.Range(),
		Title: sess.Title,
	}
	sess.Unlock()

	if info == nil {
		http.Error(w, "load a video first", http.StatusBadRequest)
		return
	}
	req.Info = *info

	if !sess.TryStart() {
		http.Error(w, "a download is already running", http.StatusConflict)
		return
	}
	defer sess.Done()

	// the cookie value is a credential, only a prefix of its hash is logged
	sid := hash.Short(sess.ID, 8)
	log.Logger.Infow("download started", "session", sid, "url", req.URL, "kind", kind, "range", req.Range.String())

	clip, err := s.vs.Clip(context.WithoutCancel(r.Context()), req, sess.SetProgress)
	if err != nil {
		log.Logger.Errorw("clip failed", "session", sid, "url", req.URL, "kind", kind, "error", err)

		sess.Lock()
		sess.Err = "download failed: " + err.Error()
		sess.Unlock()

		redirectHome(w, r)
		return
	}

	w.Header().Set("Content-Type", clip.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": clip.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(clip.Data)))
	if _, err := w.Write(clip.Data); err != nil {
		log.Logger.Warnw("failed to send clip", "error", err)
	}
}

type progressEvent struct {
	Progress string `json:"progress"`
	Busy     bool   `json:"busy"`
}

// Progress streams the session's status text as server-sent events. The
// stream ends once a running download has finished, or after idleTimeout
// when nothing is running.
func (s *Server) Progress(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	rc := http.NewResponseController(w)
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	idle := time.NewTimer(s.idleTimeout)
	defer idle.Stop()

	var (
		last    *progressEvent
		wasBusy bool
	)
	for {
		ev := progressEvent{Progress: sess.Progress(), Busy: sess.Busy()}
		if last == nil || *last != ev {
			data, _ := json.Marshal(ev)
			fmt.Fprintf(w, "data: %s\n\n", data)
			if err := rc.Flush(); err != nil {
				return
			}
			last = &ev
		}

		if ev.Busy {
			wasBusy = true
		} else if wasBusy {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-idle.C:
			if !wasBusy {
				return
			}
		case <-ticker.C:
		}
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
