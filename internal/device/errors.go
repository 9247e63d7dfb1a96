// Package device drives a signing device through its lifecycle and exposes it as a transaction signer.
package device

import "errors"

var (
	// ErrDeviceUnreachable is returned when initialization exhausted its attempts.
	ErrDeviceUnreachable = errors.New("device unreachable")
	// ErrNotInitialized is returned when the device holds no key material.
	ErrNotInitialized = errors.New("device not initialized")
	// ErrContinuationReused is returned when an interaction request is answered twice.
	ErrContinuationReused = errors.New("continuation already used")
	// ErrDeviceCommunication wraps failures of signing, measuring and maintenance calls.
	ErrDeviceCommunication = errors.New("device communication failure")
	// ErrNotConnected is returned for operations issued without an open session.
	ErrNotConnected = errors.New("device not connected")
	// ErrInteractionAbandoned is returned to the session when the user abandons a request.
	ErrInteractionAbandoned = errors.New("interaction abandoned")

	errNoFirmwareSource = errors.New("no firmware source configured")
)
