package network

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// SubmissionThrottle paces outbound calls to the waitlist service so a stuck
// form or a scripted loop cannot hammer the remote endpoints.
type SubmissionThrottle struct {
	limiter *rate.Limiter
}

// MakeSubmissionThrottle allows maxPerWindow calls per window; maxPerWindow <= 0 disables pacing.
func MakeSubmissionThrottle(window time.Duration, maxPerWindow int) *SubmissionThrottle {
	if maxPerWindow <= 0 || window <= 0 {
		return &SubmissionThrottle{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	every := window / time.Duration(maxPerWindow)
	return &SubmissionThrottle{limiter: rate.NewLimiter(rate.Every(every), maxPerWindow)}
}

func (st *SubmissionThrottle) Wait(ctx context.Context) error {
	if st == nil {
		return nil
	}
	return st.limiter.Wait(ctx)
}

func (st *SubmissionThrottle) Allow() bool {
	if st == nil {
		return true
	}
	return st.limiter.Allow()
}
