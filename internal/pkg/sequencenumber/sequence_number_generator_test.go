// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2024, 3, 9, 18, 30, 5, 0, time.UTC)
	}
	g := NewGeneratorWith(clock, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name    string
		buyerID int64
		want    string
	}{
		{
			name:    "买家ID不足四位",
			buyerID: 1,
			want:    "202403091830050001nUfojc",
		},
		{
			name:    "买家ID超过四位",
			buyerID: 123456789,
			want:    "202403091830056789nUfojc",
		},
		{
			name:    "买家ID后四位为0",
			buyerID: 123450000,
			want:    "202403091830050000nUfojc",
		},
		{
			name:    "游客下单",
			buyerID: 0,
			want:    "202403091830050000nUfojc",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn := g.Generate(tc.buyerID)
			assert.Equal(t, tc.want, sn)
			assert.Len(t, sn, Length)
		})
	}
}

func TestGenerator_Unique(t *testing.T) {
	g := NewGenerator()
	sns := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		sn := g.Generate(1234)
		assert.Len(t, sn, Length)
		_, ok := sns[sn]
		assert.False(t, ok)
		sns[sn] = struct{}{}
	}
}
