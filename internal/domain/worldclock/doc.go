// Package worldclock contains the core domain types for the clock display:
// Clock (a labelled zone rule), AlarmTime and AlarmSet (wall-clock alarms at
// minute granularity) and Dismissal (the one-minute silencing of an active
// alarm). All types are small values; the evaluator functions are pure.
package worldclock
