// Package kernel contains shared domain primitives used by every aggregate.
// It currently provides the UUID value object that identifies accounts,
// substances and medicine orders throughout the system.
package kernel
