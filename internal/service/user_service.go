package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"CollabHub/internal/limits"
	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"
	"CollabHub/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo      *mysql.UserRepository
	skillRepo *mysql.UserSkillRepository
	rSession  SessionStore
	emailSvc  *EmailService
	lim       *limits.Limits
}

func NewUserService(lim *limits.Limits, emailSvc *EmailService) *UserService {
	return &UserService{
		repo:      &mysql.UserRepository{DB: mysql.DB},
		skillRepo: &mysql.UserSkillRepository{DB: mysql.DB},
		rSession:  &redis.SessionRepository{},
		emailSvc:  emailSvc,
		lim:       lim,
	}
}

// Profile 带技能列表的个人资料视图
type Profile struct {
	User   *model.User   `json:"user"`
	Skills []model.Skill `json:"skills"`
}

func (s *UserService) validateName(field, name string) error {
	if name == "" {
		return nil
	}
	n := utf8.RuneCountInString(name)
	if n < s.lim.UserNameMin || n > s.lim.UserNameMax {
		return pkg.Validation("%s must be between %d and %d characters", field, s.lim.UserNameMin, s.lim.UserNameMax)
	}
	return nil
}

// Register 邮箱唯一性靠唯一索引，冲突归一成 Conflict
func (s *UserService) Register(email, password, firstName, lastName string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkg.Validation("a valid email is required")
	}
	if utf8.RuneCountInString(email) > s.lim.EmailMax {
		return nil, pkg.Validation("email must be at most %d characters", s.lim.EmailMax)
	}
	if password == "" {
		return nil, pkg.Validation("password is required")
	}
	if err := s.validateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := s.validateName("last name", lastName); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkg.Internal(err)
	}

	user := &model.User{
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err = s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.Conflict("email already registered")
		}
		return nil, pkg.Internal(err)
	}
	return user, nil
}

func (s *UserService) Login(email, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, pkg.Unauthenticated("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, pkg.Unauthenticated("invalid email or password")
	}
	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	// 单点登录：把最新 access 写入 redis
	if err = s.rSession.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, pkg.Internal(err)
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	if err := s.rSession.DeleteUserToken(usrID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

// Refresh 换发新 token 对。新 access 必须同步写进会话存储，
// 否则中间件的单点登录比对会拒掉它
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, pkg.Unauthenticated(err.Error())
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	if err = s.rSession.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, pkg.Internal(err)
	}
	return pair, nil
}

// ChangePassword 登录态修改密码，成功后旧会话失效
func (s *UserService) ChangePassword(usrID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(usrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("user")
		}
		return pkg.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return pkg.Forbidden("old password is incorrect")
	}
	if newPassword == "" {
		return pkg.Validation("new password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkg.Internal(err)
	}
	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return pkg.Internal(err)
	}
	return s.Logout(usrID)
}

// ResetPassword 验证码走邮件两阶段流程
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyResetCode(email, code)
	if err != nil || !ok {
		return pkg.Forbidden("verification failed")
	}
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("user")
		}
		return pkg.Internal(err)
	}
	if newPassword == "" {
		return pkg.Validation("new password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkg.Internal(err)
	}
	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

func (s *UserService) GetProfile(usrID uint64) (*Profile, error) {
	user, err := s.repo.FindByID(usrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("user")
		}
		return nil, pkg.Internal(err)
	}
	skills, err := s.skillRepo.ListByUser(usrID)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return &Profile{User: user, Skills: skills}, nil
}

// UpdateProfile 可用窗口要么都给要么都不给，跨度受策略表约束
func (s *UserService) UpdateProfile(usrID uint64, firstName, lastName string, start, end *time.Time) error {
	if err := s.validateName("first name", firstName); err != nil {
		return err
	}
	if err := s.validateName("last name", lastName); err != nil {
		return err
	}
	if (start == nil) != (end == nil) {
		return pkg.Validation("availability start and end must be set together")
	}
	if start != nil {
		if !start.Before(*end) {
			return pkg.Validation("availability start must be before end")
		}
		maxRange := time.Duration(s.lim.AvailabilityMaxRangeDays) * 24 * time.Hour
		if end.Sub(*start) > maxRange {
			return pkg.Validation("availability range must be at most %d days", s.lim.AvailabilityMaxRangeDays)
		}
	}
	if err := s.repo.UpdateProfile(usrID, firstName, lastName, start, end); err != nil {
		return pkg.Internal(err)
	}
	return nil
}
