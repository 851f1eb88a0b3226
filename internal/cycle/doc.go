// Package cycle drives the render loop shared by both display backends.
//
// One tick samples a single instant, clears a stale dismissal, evaluates the
// alarm set against local time, lays the clocks out on the current canvas and
// hands one render unit per clock to the Surface. Between ticks the loop
// blocks on the surface's input poll for a bounded timeout; Quit terminates
// the loop, Dismiss (while an alarm is active) records the current minute as
// silenced. Dismissal is threaded through the loop as a value so the per-tick
// step stays a pure function.
package cycle
