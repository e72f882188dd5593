// Copyright 2026 The Router Authors
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

package supergraph

import (
	"errors"
	"fmt"
)

// InvalidSupergraphError indicates the input is not a well-formed
// federation 2 supergraph. The input must change; retrying cannot help.
type InvalidSupergraphError struct {
	Err error
}

func (e *InvalidSupergraphError) Error() string { return e.Err.Error() }
func (e *InvalidSupergraphError) Unwrap() error { return e.Err }

// InvalidSubgraphError indicates extraction completed but the named
// subgraph failed post-extraction validation.
type InvalidSubgraphError struct {
	Subgraph string
	Err      error
}

func (e *InvalidSubgraphError) Error() string {
	return fmt.Sprintf(
		"Unexpected error extracting %s from the supergraph: this is either a bug, or the supergraph has been corrupted.\n\nDetails:\n%v",
		e.Subgraph, e.Err)
}
func (e *InvalidSubgraphError) Unwrap() error { return e.Err }

// InternalError indicates a pipeline invariant broke. Always a bug.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return fmt.Sprintf("internal error: %v", e.Err) }
func (e *InternalError) Unwrap() error { return e.Err }

// IsInvalidSupergraph reports whether err (or any error in its chain)
// marks a malformed supergraph.
func IsInvalidSupergraph(err error) bool {
	var ie *InvalidSupergraphError
	return errors.As(err, &ie)
}

// IsInvalidSubgraph reports whether err (or any error in its chain)
// marks a subgraph that failed post-extraction validation.
func IsInvalidSubgraph(err error) bool {
	var ie *InvalidSubgraphError
	return errors.As(err, &ie)
}

// IsInternal reports whether err (or any error in its chain) marks a
// broken pipeline invariant.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}

func invalidSupergraphf(format string, a ...any) error {
	return &InvalidSupergraphError{Err: fmt.Errorf(format, a...)}
}

func invalidSubgraph(subgraph string, err error) error {
	return &InvalidSubgraphError{Subgraph: subgraph, Err: err}
}

func internalf(format string, a ...any) error {
	return &InternalError{Err: fmt.Errorf(format, a...)}
}
