package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"CollabHub/internal/limits"
	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"
	"CollabHub/internal/repository/redis"

	"gorm.io/gorm"
)

type ConversationService struct {
	repo     *mysql.ConversationRepository
	userRepo *mysql.UserRepository
	rate     RateLimiter
	lim      *limits.Limits
}

func NewConversationService(lim *limits.Limits) *ConversationService {
	return &ConversationService{
		repo:     &mysql.ConversationRepository{DB: mysql.DB},
		userRepo: &mysql.UserRepository{DB: mysql.DB},
		rate:     &redis.RateLimitRepository{},
		lim:      lim,
	}
}

func (s *ConversationService) window() time.Duration {
	return time.Duration(s.lim.RateLimitWindowHours) * time.Hour
}

// CreateConversation 创建者隐式入会，participantIDs 是其选中的其他成员
func (s *ConversationService) CreateConversation(ctx context.Context, creatorID uint64, participantIDs []uint64, title, description string) (*model.Conversation, error) {
	// 去重并排除创建者自身
	others := make([]uint64, 0, len(participantIDs))
	for _, id := range pkg.DedupIDs(participantIDs) {
		if id != creatorID {
			others = append(others, id)
		}
	}
	total := len(others) + 1
	if total < s.lim.ConversationMinParticipants || total > s.lim.ConversationMaxParticipants {
		return nil, pkg.Validation("participant count must be between %d and %d, got %d",
			s.lim.ConversationMinParticipants, s.lim.ConversationMaxParticipants, total)
	}
	if utf8.RuneCountInString(title) > s.lim.ConversationTitleMax {
		return nil, pkg.Validation("title must be at most %d characters", s.lim.ConversationTitleMax)
	}
	if utf8.RuneCountInString(description) > s.lim.ConversationDescriptionMax {
		return nil, pkg.Validation("description must be at most %d characters", s.lim.ConversationDescriptionMax)
	}

	found, err := s.userRepo.ExistingIDs(others)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if len(found) != len(others) {
		return nil, pkg.NotFound("participant user")
	}

	all := append(append([]uint64{}, others...), creatorID)
	hash := pkg.ConversationHash(all)
	existing, err := s.repo.FindByHash(hash)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if existing != nil {
		// 带上已有会话 id，客户端可以直接跳转过去
		return nil, pkg.Conflict(fmt.Sprintf("conversation %d already exists for this participant set", existing.ID))
	}

	// 先占频控名额，落库失败再退回
	n, err := s.rate.IncrConversationCreate(ctx, creatorID, s.window())
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if n > s.lim.ConversationCreatesPerDayPerUser {
		s.rate.DecrConversationCreate(ctx, creatorID)
		return nil, pkg.RateLimited("conversation creation",
			s.lim.ConversationCreatesPerDayPerUser, s.lim.RateLimitWindowHours)
	}

	now := time.Now()
	conv := &model.Conversation{
		Title:            title,
		Description:      description,
		CreatorID:        &creatorID,
		ConversationHash: hash,
		CreatedAt:        now,
		LastMessageAt:    now,
	}
	if err = s.repo.CreateWithParticipants(conv, all, creatorID); err != nil {
		s.rate.DecrConversationCreate(ctx, creatorID)
		// 并发创建同一集合时唯一索引兜底，回查赢家的 id
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if dup, derr := s.repo.FindByHash(hash); derr == nil && dup != nil {
				return nil, pkg.Conflict(fmt.Sprintf("conversation %d already exists for this participant set", dup.ID))
			}
			return nil, pkg.Conflict("conversation already exists for this participant set")
		}
		return nil, pkg.Internal(err)
	}
	return conv, nil
}

// DeleteConversation 参与者方可删除；超大会话走线下支持流程
func (s *ConversationService) DeleteConversation(ctx context.Context, requesterID, conversationID uint64) error {
	if _, err := s.repo.FindByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("conversation")
		}
		return pkg.Internal(err)
	}
	ok, err := s.repo.IsParticipant(conversationID, requesterID)
	if err != nil {
		return pkg.Internal(err)
	}
	if !ok {
		return pkg.Forbidden("only participants can delete a conversation")
	}

	count, err := s.repo.MessageCount(conversationID)
	if err != nil {
		return pkg.Internal(err)
	}
	// 结构性阈值，非频控：重试无意义，需要人工介入
	if count > s.lim.ConversationMaxMessagesForDelete {
		return pkg.PolicyBlocked("conversation has too many messages to delete directly, please contact support")
	}

	n, err := s.rate.IncrConversationDelete(ctx, requesterID, s.window())
	if err != nil {
		return pkg.Internal(err)
	}
	if n > s.lim.ConversationDeletesPerDayPerUser {
		s.rate.DecrConversationDelete(ctx, requesterID)
		return pkg.RateLimited("conversation deletion",
			s.lim.ConversationDeletesPerDayPerUser, s.lim.RateLimitWindowHours)
	}

	if err = s.repo.DeleteCascade(conversationID, requesterID); err != nil {
		s.rate.DecrConversationDelete(ctx, requesterID)
		return pkg.Internal(err)
	}
	return nil
}

// ListConversations 按最近活跃降序
func (s *ConversationService) ListConversations(userID uint64) ([]mysql.ConversationPreview, error) {
	list, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return list, nil
}
