// Package match scores name similarity between entity keys and
// classnames. It backs the "did you mean" hints attached to override
// misses: when an override names a field or class the inference never
// saw, the nearest known name is suggested alongside the warning.
package match
