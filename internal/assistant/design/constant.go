package design

import "time"

// SuccessMessage is the fixed message on a successful lookup.
const SuccessMessage = "Design API call successful"

// DefaultTimeout bounds each backend call. One attempt, no retry.
const DefaultTimeout = 30 * time.Second

// Log prefix
const (
	LogPrefixGetDesign = "internal.assistant.design.GetDesign"
)
