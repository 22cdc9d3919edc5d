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


// Package openai implements the ai interfaces using OpenAI-compatible APIs.
//
// Both services are built on langchaingo and work with any OpenAI-compatible
// endpoint (Ollama, LocalAI, vLLM, OpenAI itself). The intent classifier uses
// JSON mode at temperature 0, strips markdown code fences, repairs common
// JSON defects, and retries malformed output up to the configured attempt
// count. Transient provider errors (rate limit, overload) retry with
// exponential backoff; all other errors fail fast so the caller can fall
// back to the neutral intent.
package openai
