package service

import (
	"strings"
	"testing"
	"time"

	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	gdb, mock := newTestDB(t)
	svc := &UserService{
		repo:      &mysql.UserRepository{DB: gdb},
		skillRepo: &mysql.UserSkillRepository{DB: gdb},
		rSession:  &fakeSession{},
		lim:       testLimits(),
	}
	return svc, mock
}

func TestRegisterValidation(t *testing.T) {
	svc := &UserService{lim: testLimits()}

	cases := []struct {
		name      string
		email     string
		password  string
		firstName string
	}{
		{"empty email", "", "pw", ""},
		{"no at sign", "not-an-email", "pw", ""},
		{"email too long", strings.Repeat("a", 250) + "@x.com", "pw", ""},
		{"empty password", "a@b.com", "", ""},
		{"first name too short", "a@b.com", "pw", "x"},
		{"first name too long", "a@b.com", "pw", strings.Repeat("n", 101)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.email, tc.password, tc.firstName, "")
			require.Error(t, err)
			assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock := newUserService(t)

	// TranslateError 把 1062 归一成 gorm.ErrDuplicatedKey
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := svc.Register("dup@b.com", "pw", "", "")
	require.Error(t, err)
	assert.Equal(t, pkg.KindConflict, pkg.AsError(err).Kind)
}

func TestRegisterSucceeds(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(9, 1))

	user, err := svc.Register("  new@b.com ", "pw", "Ana", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), user.ID)
	assert.Equal(t, "new@b.com", user.Email)
	// 存的是散列不是明文
	assert.NotEqual(t, "pw", user.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePasswordWrongOld(t *testing.T) {
	svc, mock := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}).AddRow(9, hash))

	err = svc.ChangePassword(9, "wrong", "next")
	require.Error(t, err)
	assert.Equal(t, pkg.KindForbidden, pkg.AsError(err).Kind)
}

func TestRefreshStoresNewSessionToken(t *testing.T) {
	sess := &fakeSession{}
	svc := &UserService{rSession: sess, lim: testLimits()}

	pair, err := pkg.GeneratePair(7, 0)
	require.NoError(t, err)

	next, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.AccessToken)
	// 换发的 access 必须覆盖会话里的旧 token，否则中间件会拒掉它
	assert.Equal(t, next.AccessToken, sess.tokens[7])
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := &UserService{rSession: &fakeSession{}, lim: testLimits()}

	_, err := svc.Refresh("not-a-token")
	require.Error(t, err)
	assert.Equal(t, pkg.KindUnauthenticated, pkg.AsError(err).Kind)
}

func TestUpdateProfileAvailability(t *testing.T) {
	svc := &UserService{lim: testLimits()}
	now := time.Now()
	later := now.Add(time.Hour)
	tooFar := now.Add(731 * 24 * time.Hour)

	// 只给一端
	err := svc.UpdateProfile(9, "", "", &now, nil)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)

	// 起点不早于终点
	err = svc.UpdateProfile(9, "", "", &later, &now)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)

	// 跨度超过上限
	err = svc.UpdateProfile(9, "", "", &now, &tooFar)
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.AsError(err).Kind)
}

func TestUpdateProfileWithinRange(t *testing.T) {
	svc, mock := newUserService(t)
	now := time.Now()
	end := now.Add(30 * 24 * time.Hour)

	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.UpdateProfile(9, "Ana", "Lee", &now, &end))
	assert.NoError(t, mock.ExpectationsWereMet())
}
