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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidAssessment indicates an Assessment failed validation.
	ErrInvalidAssessment = errors.New("invalid assessment")

	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNegativeDuration indicates a negative duration value.
	ErrNegativeDuration = errors.New("duration cannot be negative")

	// ErrInvalidTestType indicates a test-type code that is not a single letter.
	ErrInvalidTestType = errors.New("test-type code must be a single letter")
)
