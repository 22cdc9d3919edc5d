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


package server

import "github.com/sievelabs/assessrec/core"

// RecommendRequest is the body of POST /v1/recommend.
type RecommendRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"omitempty,gte=1,lte=30"`
}

// AssessmentResult is one recommended assessment in the response, with
// test-type codes expanded to human-readable labels.
type AssessmentResult struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	AdaptiveSupport string   `json:"adaptive_support"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	RemoteSupport   string   `json:"remote_support"`
	TestType        []string `json:"test_type"`
}

// RecommendResponse is the body returned by POST /v1/recommend.
type RecommendResponse struct {
	RecommendedAssessments []AssessmentResult `json:"recommended_assessments"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func toAssessmentResult(c core.Candidate) AssessmentResult {
	return AssessmentResult{
		URL:             c.URL,
		Name:            c.Name,
		AdaptiveSupport: yesNo(c.AdaptiveSupport),
		Description:     c.Description,
		Duration:        c.Duration,
		RemoteSupport:   yesNo(c.RemoteSupport),
		TestType:        core.TestTypeLabels(c.TestTypes),
	}
}
