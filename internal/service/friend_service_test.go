package service

import (
	"testing"

	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFriendService(t *testing.T) (*FriendService, sqlmock.Sqlmock) {
	gdb, mock := newTestDB(t)
	svc := &FriendService{
		friendRepo: &mysql.FriendshipRepository{DB: gdb},
		inviteRepo: &mysql.InvitationRepository{DB: gdb},
		userRepo:   &mysql.UserRepository{DB: gdb},
	}
	return svc, mock
}

func TestSendInvitationToSelf(t *testing.T) {
	svc := &FriendService{}

	err := svc.SendInvitation(3, 3)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)
}

func TestSendInvitationTargetMissing(t *testing.T) {
	svc, mock := newFriendService(t)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.SendInvitation(3, 99)
	require.Error(t, err)
	assert.Equal(t, pkg.KindNotFound, pkg.AsError(err).Kind)
}

func TestSendInvitationAlreadyFriends(t *testing.T) {
	svc, mock := newFriendService(t)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery("SELECT count(.+) FROM `friendships`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.SendInvitation(3, 4)
	require.Error(t, err)
	assert.Equal(t, pkg.KindConflict, pkg.AsError(err).Kind)
}

func TestSendInvitationIdempotent(t *testing.T) {
	svc, mock := newFriendService(t)

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
		mock.ExpectQuery("SELECT count(.+) FROM `friendships`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		// ON DUPLICATE KEY 第二次 0 行也算成功
		mock.ExpectExec("INSERT INTO `invitations`").
			WillReturnResult(sqlmock.NewResult(0, int64(1-i)))
	}

	require.NoError(t, svc.SendInvitation(3, 4))
	require.NoError(t, svc.SendInvitation(3, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptInvitation(t *testing.T) {
	svc, mock := newFriendService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `invitations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `friendships`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `chat_outbox`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.AcceptInvitation(4, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptInvitationMissingRollsBack(t *testing.T) {
	svc, mock := newFriendService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `invitations`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.AcceptInvitation(4, 3)
	require.Error(t, err)
	assert.Equal(t, pkg.KindNotFound, pkg.AsError(err).Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectInvitationMissing(t *testing.T) {
	svc, mock := newFriendService(t)

	mock.ExpectExec("DELETE FROM `invitations`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.RejectInvitation(4, 3)
	require.Error(t, err)
	assert.Equal(t, pkg.KindNotFound, pkg.AsError(err).Kind)
}

func TestRemoveFriendIdempotent(t *testing.T) {
	svc, mock := newFriendService(t)

	// 边不存在照样成功
	mock.ExpectExec("DELETE FROM `friendships`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.RemoveFriend(3, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFriendSelf(t *testing.T) {
	svc := &FriendService{}

	err := svc.RemoveFriend(3, 3)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)
}
