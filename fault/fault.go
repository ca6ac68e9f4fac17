// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAlreadyPeer          = ExistsError("already listed")
	ErrConnectionFailure    = ProcessError("connection failure")
	ErrInvalidAddress       = InvalidError("invalid address")
	ErrInvalidChain         = InvalidError("invalid chain")
	ErrInvalidDnsTxtRecord  = InvalidError("invalid dns txt record")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNodeDomain    = InvalidError("invalid node domain")
	ErrInvalidPort          = InvalidError("invalid port")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTransaction   = InvalidError("invalid transaction")
	ErrMalformedMessage     = InvalidError("malformed message")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrNoDnsServer          = NotFoundError("no dns server")
	ErrNoNodesFound         = NotFoundError("no nodes found")
	ErrNoReply              = ProcessError("connection closed without reply")
	ErrNotRunning           = ProcessError("not running")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrRegistryFull         = LengthError("registry full")
	ErrUnexpectedReply      = ProcessError("unexpected reply")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// ConnectionError - a failed dial, read or write against one peer
//
// always recoverable: the operation is abandoned and the caller
// moves on to the next peer or candidate
type ConnectionError struct {
	Address string
	Err     error
}

// NewConnectionError - wrap a network error for a peer address
func NewConnectionError(address string, err error) error {
	return &ConnectionError{
		Address: address,
		Err:     err,
	}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrConnectionFailure, e.Address, e.Err)
}

// Unwrap - expose the underlying network error
func (e *ConnectionError) Unwrap() error { return e.Err }

// Is - every connection error matches ErrConnectionFailure
func (e *ConnectionError) Is(target error) bool { return ErrConnectionFailure == target }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// IsErrConnection - true for wrapped network failures
func IsErrConnection(e error) bool {
	if ErrConnectionFailure == e {
		return true
	}
	_, ok := e.(*ConnectionError)
	return ok
}
