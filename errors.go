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

package atomdiff

import (
	"znkr.io/atomdiff/internal/atom"
	"znkr.io/atomdiff/internal/errs"
)

// ErrBinary is wrapped in an [InputError] for input that looks binary. It can be suppressed with
// [ForceText].
var ErrBinary = atom.ErrBinary

// InputError reports a problem with the left or right input.
type InputError = errs.InputError

// ConfigError reports an invalid configuration. It is returned by [New] before any comparison
// takes place and matches [ErrConfig].
type ConfigError = errs.ConfigError

// ResourceExceededError reports that a comparison could not be completed within the configured
// limits. It matches [ErrResourceExceeded].
type ResourceExceededError = errs.ResourceExceededError

var (
	ErrConfig           = errs.ErrConfig
	ErrResourceExceeded = errs.ErrResourceExceeded
)
