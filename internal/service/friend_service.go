package service

import (
	"errors"

	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"gorm.io/gorm"
)

type FriendService struct {
	friendRepo *mysql.FriendshipRepository
	inviteRepo *mysql.InvitationRepository
	userRepo   *mysql.UserRepository
}

func NewFriendService() *FriendService {
	return &FriendService{
		friendRepo: &mysql.FriendshipRepository{DB: mysql.DB},
		inviteRepo: &mysql.InvitationRepository{DB: mysql.DB},
		userRepo:   &mysql.UserRepository{DB: mysql.DB},
	}
}

// SendInvitation 幂等：重复发送只留一条边
func (s *FriendService) SendInvitation(fromID, toID uint64) error {
	if fromID == toID {
		return pkg.Validation("cannot invite yourself")
	}
	if _, err := s.userRepo.FindByID(toID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("user")
		}
		return pkg.Internal(err)
	}
	friends, err := s.friendRepo.Exists(fromID, toID)
	if err != nil {
		return pkg.Internal(err)
	}
	if friends {
		return pkg.Conflict("already friends")
	}
	if err = s.inviteRepo.Create(fromID, toID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

// AcceptInvitation userID 接受来自 fromID 的邀请，双方成为好友
func (s *FriendService) AcceptInvitation(userID, fromID uint64) error {
	err := s.inviteRepo.Accept(fromID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("invitation")
		}
		return pkg.Internal(err)
	}
	return nil
}

func (s *FriendService) RejectInvitation(userID, fromID uint64) error {
	deleted, err := s.inviteRepo.Delete(fromID, userID)
	if err != nil {
		return pkg.Internal(err)
	}
	if !deleted {
		return pkg.NotFound("invitation")
	}
	return nil
}

// RemoveFriend 对称、幂等：本来不是好友也算成功
func (s *FriendService) RemoveFriend(userID, friendID uint64) error {
	if userID == friendID {
		return pkg.Validation("cannot unfriend yourself")
	}
	if err := s.friendRepo.Remove(userID, friendID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

func (s *FriendService) ListFriends(userID uint64) ([]model.User, error) {
	list, err := s.friendRepo.ListFriends(userID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return list, nil
}

func (s *FriendService) ListSentInvitations(userID uint64) ([]model.Invitation, error) {
	list, err := s.inviteRepo.ListSent(userID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return list, nil
}

func (s *FriendService) ListReceivedInvitations(userID uint64) ([]model.Invitation, error) {
	list, err := s.inviteRepo.ListReceived(userID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return list, nil
}
