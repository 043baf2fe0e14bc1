package tools

import "errors"

// ErrUnknownTool is returned by [Registry.Call] when dispatch receives a
// name with no registered handler.
var ErrUnknownTool = errors.New("unknown tool")
