package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotCategorized(t *testing.T) {
	isMain := false

	tests := []struct {
		name   string
		record DigestRecord
		want   bool
	}{
		{
			"unknown always needs work",
			DigestRecord{State: StateUnknown},
			true,
		},
		{
			"ignored never needs work",
			DigestRecord{State: StateIgnored},
			false,
		},
		{
			"in digest without type",
			DigestRecord{State: StateInDigest, ContentType: TypeUnknown},
			true,
		},
		{
			"in digest without is_main",
			DigestRecord{State: StateInDigest, ContentType: TypeNews, ContentCategory: CategorySystem},
			true,
		},
		{
			"in digest without category",
			DigestRecord{State: StateInDigest, ContentType: TypeNews, IsMain: &isMain},
			true,
		},
		{
			"type OTHER needs no category",
			DigestRecord{State: StateInDigest, ContentType: TypeOther, IsMain: &isMain},
			false,
		},
		{
			"fully categorized",
			DigestRecord{State: StateInDigest, ContentType: TypeNews, ContentCategory: CategorySystem, IsMain: &isMain},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.NotCategorized())
		})
	}
}
