package telegram

import (
	"context"
	"sync"

	"github.com/gotd/td/telegram/uploader"
	"go.uber.org/atomic"
)

// UploaderProgress turns gotd upload chunks into a stream of whole percents.
type UploaderProgress struct {
	progress         *atomic.Int32 // 0 - 100
	progressChangeCh chan int32

	closed bool
	mu     sync.Mutex
}

func NewUploaderProgress() *UploaderProgress {
	return &UploaderProgress{
		progress:         atomic.NewInt32(-1),
		progressChangeCh: make(chan int32, 101),
	}
}

func (up *UploaderProgress) Chunk(_ context.Context, state uploader.ProgressState) error {
	newProgress := percent(state.Uploaded, state.Total)

	if up.progress.Load() == newProgress {
		return nil
	}

	up.progress.Store(newProgress)

	up.mu.Lock()
	defer up.mu.Unlock()

	if !up.closed {
		select {
		case up.progressChangeCh <- newProgress:
		default:
		}
	}

	return nil
}

func (up *UploaderProgress) ProgressChan() <-chan int32 {
	return up.progressChangeCh
}

func (up *UploaderProgress) Close() {
	up.mu.Lock()
	defer up.mu.Unlock()

	if up.closed {
		return
	}
	up.closed = true
	close(up.progressChangeCh)
}

func percent(done, total int64) int32 {
	if total <= 0 {
		return 0
	}

	p := done * 100 / total
	if p > 100 {
		p = 100
	}

	return int32(p)
}
