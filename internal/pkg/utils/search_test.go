package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySearchTerm(t *testing.T) {
	cases := []struct {
		term     string
		expected SearchKind
	}{
		{"", SearchKindEmpty},
		{"   ", SearchKindEmpty},
		{"jane.doe+1@example.com", SearchKindEmail},
		{"0123456789abcdef01234567", SearchKindObjectID},
		{"abcdef0123", SearchKindUserID},
		{"3f2b6c4e-1d2a-4b8c-9e7f-0a1b2c3d4e5f", SearchKindUserID},
		{"ABCD-1234-EFGH", SearchKindShareCode},
		{"abcd-1234-efgh", SearchKindShareCode},
		{"Acme Diabetes Clinic", SearchKindText},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ClassifySearchTerm(tc.term), "term %q", tc.term)
	}
}

func TestSingleMatch(t *testing.T) {
	item, ok := SingleMatch([]string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", item)

	_, ok = SingleMatch([]string{})
	assert.False(t, ok, "no results should not redirect")

	_, ok = SingleMatch([]string{"a", "b"})
	assert.False(t, ok, "several results should not redirect")
}
