package common

// UnknownStr is the fallback name for values outside their defined range.
const UnknownStr = "unknown"
