package service

import (
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendResetCode 发送重置密码验证码。
// 先写 pending 键，邮件发出后转 confirmed，校验只认 confirmed。
func (s *EmailService) SendResetCode(email string) error {
	code, err := pkg.NewResetCode()
	if err != nil {
		return err
	}

	if err = s.rds.SetResetCodePending(email, code); err != nil {
		return err
	}

	if err = pkg.SendResetCodeEmail(s.emailCfg, email, code, redis.DefaultEmailCodeTTL); err != nil {
		return err
	}

	if err = s.rds.ConfirmResetCode(email); err != nil {
		// 确认失败则清掉 pending 键
		_ = s.rds.DeleteResetCodePending(email)
		return err
	}
	return nil
}

// VerifyResetCode 校验验证码并一次性删除
func (s *EmailService) VerifyResetCode(email, code string) (bool, error) {
	val, err := s.rds.GetResetCode(email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteResetCode(email); err != nil {
		return false, err
	}
	return true, nil
}
