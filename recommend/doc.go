// Copyright 2026 SieveLabs
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


// Package recommend implements the assessment recommendation pipeline:
// query expansion, multi-retrieval aggregation, heuristic reranking, and
// diversity interleaving.
//
// # Pipeline
//
// A Recommender sequences the stages per request:
//
//  1. Intent classification (external capability, neutral fallback on failure)
//  2. Primary retrieval for the raw query
//  3. Auxiliary retrieval per expansion query (Planner rule table)
//  4. Aggregation: first-seen dedup by catalog URL
//  5. Heuristic scoring: additive keyword/category/duration rules
//  6. Diversity interleaving: hard/soft bucket round-robin when the query
//     signals both a domain and a behavioral need
//
// Scores are explainable additive sums over declarative bonus tables; no
// rule reads the accumulated score of another rule. The pipeline is
// stateless per request and never returns an empty list while retrieval
// produced candidates.
//
// # Failure semantics
//
// Classification failures degrade to core.NeutralIntent. Auxiliary
// retrieval failures are logged and skipped. Only a primary retrieval
// failure surfaces to the caller, because then there is nothing to rank.
package recommend
