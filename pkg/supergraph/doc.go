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

// Package supergraph reconstructs per-subgraph schemas from a composed
// supergraph SDL.
//
// A supergraph is the output of federated composition: one schema that
// merges every subgraph and records, through join spec directives, which
// subgraph contributed each type, field, interface edge, union member,
// and enum value. Extraction inverts that merge.
//
// The Extractor runs a fixed multi-stage pipeline:
//
//	Resolve -> Register -> Scaffold -> Extract -> Propagate -> Prune -> Synthesize -> Validate
//
// Stage responsibilities:
//
//   - Resolve:
//     Decodes the schema's @link applications, requires the join spec at
//     a supported version, and binds the directive names the rest of the
//     pipeline reads (imports and aliases applied).
//
//   - Register:
//     Walks the join graph enum and creates one subgraph per value, each
//     seeded with the federation subgraph preamble.
//
//   - Scaffold:
//     Creates an empty shell in each owning subgraph for every supergraph
//     type, attaches keys, marks interface objects, and binds root
//     operations by their canonical names.
//
//   - Extract:
//     Fills the shells kind by kind (objects, interfaces, unions, enums,
//     input objects), translating field-level join provenance into
//     federation directives.
//
//   - Propagate:
//     Copies executable directive definitions into every subgraph, since
//     their applications may appear in any subgraph fetch.
//
//   - Prune:
//     Removes types that ended up with no members in a subgraph, then
//     cascades through everything that referenced them.
//
//   - Synthesize:
//     Adds the federation operation surface (_Any, _Service, _Entity,
//     _entities, _service) each subgraph must serve.
//
//   - Validate:
//     Reloads each subgraph as a standalone schema and fails loudly when
//     extraction produced something invalid.
//
// Error model:
//
//   - InvalidSupergraphError: the input SDL is not a well-formed fed 2
//     supergraph. Fix the supergraph (or the composer that built it).
//   - InvalidSubgraphError: extraction finished but a subgraph failed
//     validation. Either a bug here or a corrupted supergraph.
//   - InternalError: a pipeline invariant broke. Always a bug.
//
// None of these are retriable; extraction is deterministic.
package supergraph
