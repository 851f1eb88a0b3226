// Package app assembles a world-clock run: it resolves zones and alarms
// (command line wins over stored settings and is persisted; an empty result
// falls back to a built-in default after a short notice), builds the clock
// list, and drives the render cycle on the terminal or windowed backend.
package app
