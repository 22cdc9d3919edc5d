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


package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/sievelabs/assessrec/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("%w: id needs 8 bytes, got %d", ErrSerializationFailed, len(data))
	}
	return core.ID(binary.LittleEndian.Uint64(data)), nil
}

// MarshalAssessment serializes an Assessment to bytes.
func MarshalAssessment(assessment *core.Assessment) ([]byte, error) {
	data, err := json.Marshal(assessment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalAssessment deserializes an Assessment from bytes.
func UnmarshalAssessment(data []byte) (*core.Assessment, error) {
	var assessment core.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return &assessment, nil
}
