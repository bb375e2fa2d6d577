// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the error types shared by the engine and the public API.
package errs

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrConfig           = errors.New("invalid configuration")
	ErrResourceExceeded = errors.New("resource limit exceeded")
)

// InputError reports a problem with one of the inputs.
type InputError struct {
	Side string // "left" or "right"
	Err  error
}

func (e *InputError) Error() string { return fmt.Sprintf("%s input: %v", e.Side, e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// ConfigError reports an invalid algorithm graph or option value.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string        { return "invalid configuration: " + e.Reason }
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// Configf returns a *ConfigError with a formatted reason.
func Configf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// Limit names the resource that was exhausted.
type Limit string

const (
	LimitDepth  Limit = "recursion depth"
	LimitChunks Limit = "chunk count"
	LimitState  Limit = "algorithm state size"
)

// ResourceExceededError reports that a comparison could not be completed within the configured
// limits.
type ResourceExceededError struct {
	Limit     Limit
	Algorithm string // set for LimitState
	Value     int    // the value that exceeded the limit
	Max       int    // the configured limit
}

func (e *ResourceExceededError) Error() string {
	if e.Algorithm != "" {
		return fmt.Sprintf("%s: %s limit exceeded: %d > %d", e.Algorithm, e.Limit, e.Value, e.Max)
	}
	return fmt.Sprintf("%s limit exceeded: %d > %d", e.Limit, e.Value, e.Max)
}

func (e *ResourceExceededError) Is(target error) bool { return target == ErrResourceExceeded }
