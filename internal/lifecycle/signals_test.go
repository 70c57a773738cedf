package lifecycle

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestWatchSignals(t *testing.T) {
	tests := []struct {
		name         string
		signal       os.Signal
		cancelParent bool
		expectCancel bool
	}{
		{"Interrupt", syscall.SIGINT, false, true},
		{"Terminate", syscall.SIGTERM, false, true},
		{"ParentDone", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, parentCancel := context.WithCancel(context.Background())
			defer parentCancel()

			sigChan := make(chan os.Signal, 1)
			cancelled := make(chan struct{})
			cancel := func() { close(cancelled) }

			returned := make(chan struct{})
			go func() {
				watchSignals(ctx, sigChan, cancel)
				close(returned)
			}()

			if tt.signal != nil {
				sigChan <- tt.signal
			}
			if tt.cancelParent {
				parentCancel()
			}

			select {
			case <-returned:
			case <-time.After(2 * time.Second):
				t.Fatal("signal watcher did not return")
			}

			select {
			case <-cancelled:
				if !tt.expectCancel {
					t.Fatal("expected run to be left alone")
				}
			default:
				if tt.expectCancel {
					t.Fatal("expected run to be cancelled")
				}
			}
		})
	}
}
