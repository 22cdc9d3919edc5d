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

import "fmt"

// ValidateAssessment validates an Assessment according to domain rules.
//
// Validation rules:
//   - URL must not be empty (it is the primary identity)
//   - Name must not be empty
//   - Duration must not be negative (0 means unknown)
//   - Test-type codes must be single letters
//
// NOT validated (populated later):
//   - Description (detail pages may yield none)
//   - Vector (empty until the indexer runs)
func ValidateAssessment(assessment *Assessment) error {
	if assessment == nil {
		return fmt.Errorf("%w: assessment is nil", ErrInvalidAssessment)
	}

	if assessment.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyURL)
	}

	if assessment.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyName)
	}

	if assessment.Duration < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrNegativeDuration)
	}

	for _, code := range assessment.TestTypes {
		if len(code) != 1 {
			return fmt.Errorf("%w: %w: %q", ErrInvalidAssessment, ErrInvalidTestType, code)
		}
	}

	return nil
}
