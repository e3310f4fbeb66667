package termhost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the render and tick period (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// Run initializes screen, then handles events and ticks the page until the
// user quits or ctx is cancelled. The screen is finalized on return.
func (h *Host) Run(ctx context.Context, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	h.Resize(screen.Size())

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.Tick(now.Sub(last))
			last = now
			h.Render(screen)
		}
	}
}
