package pkg

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// ConversationHash 参与者集合的规范化去重键：
// 去重后按数值升序排列，用 ":" 拼接后取 SHA-256。
// 顺序无关，同一用户集合必得同一哈希。
func ConversationHash(participantIDs []uint64) string {
	seen := make(map[uint64]struct{}, len(participantIDs))
	ids := make([]uint64, 0, len(participantIDs))
	for _, id := range participantIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(id, 10))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// DedupIDs 去重并保持首次出现顺序
func DedupIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
