package engine

import "time"

// ScheduleRecompute debounces a future Recompute: the most recently
// scheduled call wins, cancelling any pending timer (spec section 9). The
// timer callback only fires Recompute if its epoch still matches the
// latest scheduled one, so a superseded schedule is a no-op rather than a
// stale recompute.
func (e *Engine) ScheduleRecompute(delayMs int) {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
	}
	e.epoch++
	myEpoch := e.epoch
	e.timer = time.AfterFunc(time.Duration(delayMs)*time.Millisecond, func() {
		e.mu.Lock()
		fire := e.epoch == myEpoch
		e.mu.Unlock()

		if fire {
			e.Recompute()
		}
	})
	e.mu.Unlock()
}
