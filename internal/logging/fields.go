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

package logging

// Field names for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldLabel = "label"

	// Engine fields.
	FieldAlgorithm = "algorithm"
	FieldFallback  = "fallback"
	FieldReason    = "reason"
	FieldEstimate  = "estimate"
	FieldPermitted = "permitted"
	FieldLeft      = "left"
	FieldRight     = "right"
	FieldDepth     = "depth"
	FieldAnchors   = "anchors"
	FieldChunks    = "chunks"

	// Statistics fields.
	FieldAttempts  = "attempts"
	FieldDeclines  = "declines"
	FieldFallbacks = "fallbacks"
	FieldSplits    = "splits"
	FieldMaxDepth  = "max_depth"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
