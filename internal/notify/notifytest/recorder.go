// Package notifytest provides a notify.Notifier that records messages.
package notifytest

import (
	"context"
	"sync"

	"github.com/apexforge/studio-backend/internal/notify"
)

// Recorder keeps sent messages in memory. Err, when set, is returned from
// every Send instead of recording.
type Recorder struct {
	mu       sync.Mutex
	messages []notify.Message
	Err      error
}

func (r *Recorder) Send(_ context.Context, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *Recorder) Messages() []notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Message(nil), r.messages...)
}
