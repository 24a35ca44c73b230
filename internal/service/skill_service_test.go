package service

import (
	"testing"

	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillService(t *testing.T) (*SkillService, sqlmock.Sqlmock) {
	gdb, mock := newTestDB(t)
	svc := &SkillService{
		repo:      &mysql.SkillRepository{DB: gdb},
		userSkill: &mysql.UserSkillRepository{DB: gdb},
	}
	return svc, mock
}

func TestCreateSkillAdminOnly(t *testing.T) {
	svc := &SkillService{}

	_, err := svc.CreateSkill(0, "Go", "", "", "")
	require.Error(t, err)
	assert.Equal(t, pkg.KindForbidden, pkg.AsError(err).Kind)
}

func TestCreateSkillDuplicateName(t *testing.T) {
	svc, mock := newSkillService(t)

	mock.ExpectExec("INSERT INTO `skills`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := svc.CreateSkill(RoleAdmin, "Go", "", "", "")
	require.Error(t, err)
	assert.Equal(t, pkg.KindConflict, pkg.AsError(err).Kind)
}

func TestAttachSkillMissing(t *testing.T) {
	svc, mock := newSkillService(t)

	mock.ExpectQuery("SELECT (.+) FROM `skills`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.AttachSkill(1, 99)
	require.Error(t, err)
	assert.Equal(t, pkg.KindNotFound, pkg.AsError(err).Kind)
}

func TestAttachSkillIdempotent(t *testing.T) {
	svc, mock := newSkillService(t)

	mock.ExpectQuery("SELECT (.+) FROM `skills`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	// 重复挂载 0 行也成功
	mock.ExpectExec("INSERT INTO `user_skills`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.AttachSkill(1, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
