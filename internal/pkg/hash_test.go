package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationHashOrderInsensitive(t *testing.T) {
	a := ConversationHash([]uint64{3, 1, 2})
	b := ConversationHash([]uint64{2, 3, 1})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestConversationHashDedup(t *testing.T) {
	a := ConversationHash([]uint64{1, 2, 2, 1})
	b := ConversationHash([]uint64{1, 2})
	assert.Equal(t, a, b)
}

func TestConversationHashDistinctSets(t *testing.T) {
	a := ConversationHash([]uint64{1, 2})
	b := ConversationHash([]uint64{1, 3})
	assert.NotEqual(t, a, b)

	// 数值拼接不能歧义：{1,23} 与 {12,3} 必须不同
	c := ConversationHash([]uint64{1, 23})
	d := ConversationHash([]uint64{12, 3})
	assert.NotEqual(t, c, d)
}

func TestDedupIDsKeepsFirstOccurrence(t *testing.T) {
	out := DedupIDs([]uint64{5, 3, 5, 1, 3})
	assert.Equal(t, []uint64{5, 3, 1}, out)
}
