package service

import (
	"strings"
	"testing"
	"time"

	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) (*ProjectService, sqlmock.Sqlmock) {
	gdb, mock := newTestDB(t)
	svc := &ProjectService{
		repo:       &mysql.ProjectRepository{DB: gdb},
		memberRepo: &mysql.ProjectMemberRepository{DB: gdb},
		lim:        testLimits(),
	}
	return svc, mock
}

func TestCreateProjectValidation(t *testing.T) {
	svc := &ProjectService{lim: testLimits()}
	now := time.Now()
	earlier := now.Add(-time.Hour)

	_, err := svc.CreateProject(1, "", "", "", nil, nil)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)

	_, err = svc.CreateProject(1, strings.Repeat("p", 26), "", "", nil, nil)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)

	_, err = svc.CreateProject(1, "ok", "", "", &now, &earlier)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)
}

func TestCreateProjectOwnerMembership(t *testing.T) {
	svc, mock := newProjectService(t)

	// 项目与 owner 成员一个事务落库
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `projects`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO `project_members`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	project, err := svc.CreateProject(1, "apollo", "", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProjectsClamps(t *testing.T) {
	svc, mock := newProjectService(t)

	mock.ExpectQuery("SELECT count(.+) FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	list, err := svc.ListProjects(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.Limit)
}

func TestJoinProjectMissing(t *testing.T) {
	svc, mock := newProjectService(t)

	mock.ExpectQuery("SELECT (.+) FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.JoinProject(1, 99)
	require.Error(t, err)
	assert.Equal(t, pkg.KindNotFound, pkg.AsError(err).Kind)
}
