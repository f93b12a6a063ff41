package macho

import "go.uber.org/zap"

// Log is the package logger. It defaults to a no-op so importing this
// package has no side effects; set it to a real *zap.SugaredLogger to see
// the warnings emitted for load commands this library does not decode.
var Log = zap.NewNop().Sugar()
