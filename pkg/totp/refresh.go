package totp

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/otpkit/pkg/logger"
)

// RefreshRequest selects the period boundary ScheduleRefresh waits for.
type RefreshRequest struct {
	Time   time.Time // zero means the session clock's current time
	Period int       // zero means the configured period
}

// Refresh is a pending one-shot refresh created by ScheduleRefresh.
type Refresh struct {
	timer *clock.Timer
	at    time.Time
}

// At returns the period boundary the refresh fires at.
func (r *Refresh) At() time.Time {
	return r.at
}

// Stop cancels the refresh. It reports false if the callback already ran or
// the refresh was stopped before.
func (r *Refresh) Stop() bool {
	return r.timer.Stop()
}

// ScheduleRefresh arranges for callback to run once at the first period
// boundary at or after the requested time, which is when the code for that
// time expires. A time that already lies on a boundary is kept, so with the
// current time on a boundary the callback runs right away. Boundaries in the
// past also fire immediately. Callers wanting continuous refresh re-arm it
// from the callback or use Watch.
func (s *Session) ScheduleRefresh(callback func(), req RefreshRequest) (*Refresh, error) {
	if callback == nil {
		return nil, ErrInvalidCallback
	}
	period := s.Config().Period
	if req.Period < 0 {
		return nil, ErrInvalidPeriod
	}
	if req.Period > 0 {
		period = req.Period
	}
	at := req.Time
	if at.IsZero() {
		at = s.clock.Now()
	}

	boundary := ceilBoundary(at, period)
	delay := boundary.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}

	s.log.Debug("refresh scheduled", logger.Duration(delay))
	return &Refresh{
		timer: s.clock.AfterFunc(delay, callback),
		at:    boundary,
	}, nil
}

// Watch calls fn with the current code right away and again at every period
// boundary until ctx is done. It returns ctx.Err().
func (s *Session) Watch(ctx context.Context, fn func(code string)) error {
	if fn == nil {
		return ErrInvalidCallback
	}

	tick := make(chan struct{}, 1)
	for {
		now := s.clock.Now()
		code, err := s.Code(CodeRequest{Time: now})
		if err != nil {
			return err
		}
		// Arm for the boundary ending the period of now, never now itself.
		r, err := s.ScheduleRefresh(func() { tick <- struct{}{} }, RefreshRequest{Time: now.Add(time.Nanosecond)})
		if err != nil {
			return err
		}
		fn(code)

		select {
		case <-ctx.Done():
			r.Stop()
			return ctx.Err()
		case <-tick:
			s.log.Debug("refresh fired", logger.Event("totp.refresh"))
		}
	}
}

// ceilBoundary returns the first multiple of period seconds at or after t.
func ceilBoundary(t time.Time, period int) time.Time {
	p := int64(period) * int64(time.Second)
	n := t.UnixNano()
	step := n / p
	if n%p != 0 && n > 0 {
		step++
	}
	return time.Unix(0, step*p)
}
