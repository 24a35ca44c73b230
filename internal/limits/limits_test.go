package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	l := FromEnv()

	assert.Equal(t, 1, l.PaginationMinPage)
	assert.Equal(t, 1000, l.PaginationMaxPage)
	assert.Equal(t, 20, l.PaginationDefaultLimit)
	assert.Equal(t, 100000, l.PaginationMaxOffset)
	assert.Equal(t, 250, l.MessageContentMax)
	assert.Equal(t, 2, l.ConversationMinParticipants)
	assert.Equal(t, 50, l.ConversationMaxParticipants)
	assert.Equal(t, int64(100), l.MessagesPerDayPerConversation)
	assert.Equal(t, int64(20), l.ConversationCreatesPerDayPerUser)
	assert.Equal(t, int64(50), l.ConversationDeletesPerDayPerUser)
	assert.Equal(t, 24, l.RateLimitWindowHours)
	assert.Equal(t, int64(10000), l.ConversationMaxMessagesForDelete)
	assert.False(t, l.DeletionRequiresApproval)
	assert.Equal(t, 730, l.AvailabilityMaxRangeDays)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LIMIT_MESSAGE_CONTENT_MAX", "500")
	t.Setenv("LIMIT_CONVERSATION_CREATES_PER_DAY", "5")
	t.Setenv("LIMIT_DELETION_REQUIRES_APPROVAL", "true")

	l := FromEnv()
	assert.Equal(t, 500, l.MessageContentMax)
	assert.Equal(t, int64(5), l.ConversationCreatesPerDayPerUser)
	assert.True(t, l.DeletionRequiresApproval)
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("LIMIT_PAGINATION_MAX_LIMIT", "not-a-number")

	l := FromEnv()
	assert.Equal(t, 100, l.PaginationMaxLimit)
}

func TestClampPage(t *testing.T) {
	l := FromEnv()

	assert.Equal(t, 1, l.ClampPage(0))
	assert.Equal(t, 1, l.ClampPage(-7))
	assert.Equal(t, 3, l.ClampPage(3))
	assert.Equal(t, 1000, l.ClampPage(5000))
}

func TestClampLimit(t *testing.T) {
	l := FromEnv()

	// 0 是未指定
	assert.Equal(t, 20, l.ClampLimit(0))
	assert.Equal(t, 10, l.ClampLimit(3))
	assert.Equal(t, 50, l.ClampLimit(50))
	assert.Equal(t, 100, l.ClampLimit(999))
}

func TestSnapshotMirrorsValues(t *testing.T) {
	l := FromEnv()
	snap := l.Snapshot()

	pagination, ok := snap["pagination"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, l.PaginationMaxPage, pagination["max_page"])

	rates, ok := snap["rate_limits"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, l.MessagesPerDayPerConversation, rates["messages_per_day_per_conversation"])

	deletion, ok := snap["deletion"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, l.ConversationMaxMessagesForDelete, deletion["conversation_max_messages_for_delete"])
}
