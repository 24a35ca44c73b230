package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"CollabHub/internal/limits"
	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"
	"CollabHub/internal/repository/redis"

	"gorm.io/gorm"
)

type MessageService struct {
	repo     *mysql.MessageRepository
	convRepo *mysql.ConversationRepository
	rate     RateLimiter
	lim      *limits.Limits
}

// MessagePage 分页元数据随页返回
type MessagePage struct {
	Items []model.Message `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func NewMessageService(lim *limits.Limits) *MessageService {
	return &MessageService{
		repo:     &mysql.MessageRepository{DB: mysql.DB},
		convRepo: &mysql.ConversationRepository{DB: mysql.DB},
		rate:     &redis.RateLimitRepository{},
		lim:      lim,
	}
}

// CreateMessage 频控按会话算，不分发送者
func (s *MessageService) CreateMessage(ctx context.Context, authorID, conversationID uint64, content string) (*model.Message, error) {
	n := utf8.RuneCountInString(content)
	if n == 0 {
		return nil, pkg.Validation("message content must not be empty")
	}
	if n > s.lim.MessageContentMax {
		return nil, pkg.Validation("message content must be at most %d characters", s.lim.MessageContentMax)
	}

	if _, err := s.convRepo.FindByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("conversation")
		}
		return nil, pkg.Internal(err)
	}
	ok, err := s.convRepo.IsParticipant(conversationID, authorID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if !ok {
		return nil, pkg.Forbidden("only participants can send messages")
	}

	cnt, err := s.rate.IncrConversationMessage(ctx, conversationID, time.Duration(s.lim.RateLimitWindowHours)*time.Hour)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if cnt > s.lim.MessagesPerDayPerConversation {
		s.rate.DecrConversationMessage(ctx, conversationID)
		return nil, pkg.RateLimited("conversation message",
			s.lim.MessagesPerDayPerConversation, s.lim.RateLimitWindowHours)
	}

	msg := &model.Message{
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err = s.repo.CreateAndTouch(msg); err != nil {
		s.rate.DecrConversationMessage(ctx, conversationID)
		return nil, pkg.Internal(err)
	}
	return msg, nil
}

// DeleteMessage 仅作者本人可删；删除不回退 last_message_at
func (s *MessageService) DeleteMessage(requesterID, messageID uint64) error {
	msg, err := s.repo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("message")
		}
		return pkg.Internal(err)
	}
	if msg.AuthorID != requesterID {
		return pkg.Forbidden("only the author can delete a message")
	}
	if err = s.repo.Delete(messageID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

// ListMessages page/limit 夹取是交互让步；offset 越界按校验失败处理而非静默空页
func (s *MessageService) ListMessages(userID, conversationID uint64, page, limit int) (*MessagePage, error) {
	if _, err := s.convRepo.FindByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("conversation")
		}
		return nil, pkg.Internal(err)
	}
	ok, err := s.convRepo.IsParticipant(conversationID, userID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if !ok {
		return nil, pkg.Forbidden("only participants can read messages")
	}

	page = s.lim.ClampPage(page)
	limit = s.lim.ClampLimit(limit)
	offset := (page - 1) * limit
	if offset > s.lim.PaginationMaxOffset {
		return nil, pkg.Validation("page offset exceeds maximum of %d", s.lim.PaginationMaxOffset)
	}

	items, total, err := s.repo.ListByConversation(conversationID, offset, limit)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return &MessagePage{Items: items, Total: total, Page: page, Limit: limit}, nil
}
