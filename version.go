package scheme

// Version is the semantic version of the interpreter.
const Version = "0.1.0"

// BuildDate is stamped by the release build via -ldflags.
var BuildDate = "unknown"
