// Package voice manages the platform's microphone capture pipeline
// and the voice codec boundary.
//
// The recorder is a state machine owned by the runtime driver:
// Idle -> Recording -> Stopping -> Idle. Start moves it to Recording;
// Stop only requests the transition, because the driver keeps
// buffering trailing audio so that early push-to-talk releases are
// not truncated. Callers must keep polling Available/Read after Stop
// until ErrNotRecording is observed; only then has the pipeline
// settled back to Idle.
//
// Capture loops should poll once per rendered frame and at least four
// times a second to avoid audible gaps, sizing the read buffer either
// statically (RecommendedReadBuffer) or exactly via Available.
// ErrNoData is a normal transient outcome while polling, not a
// failure.
package voice
