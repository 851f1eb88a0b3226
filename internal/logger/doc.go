// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder on stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities.
//
// Code accepts a context and logs through it, so a command can scope its
// whole run with a single WithName call.
package logger
