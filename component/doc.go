// Package component defines the lifecycle interface implemented by the SDK's
// managed pieces, so a hosting game application can start, stop and
// health-check them through one registry.
package component
