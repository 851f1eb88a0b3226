// Package config persists the user's zone and alarm selection between runs
// and provides helpers to load, validate and save them in YAML format.
//
// Persistence is best-effort by design: callers ignore save failures, and a
// missing or unreadable file simply behaves like a first run.
package config
