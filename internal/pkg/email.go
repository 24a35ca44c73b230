package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

const resetMailSubject = "CollabHub 密码重置验证码"

// SendResetCodeEmail 发送重置密码验证码邮件，正文内联生成
func SendResetCodeEmail(cfg SMTPConfig, to, code string, ttl time.Duration) error {
	body := fmt.Sprintf(
		`<p>您好，</p><p>您正在重置 CollabHub 账号密码，验证码：<b style="font-size:18px;">%s</b></p><p>%d 分钟内有效，请勿转发。若非本人操作请忽略本邮件。</p>`,
		code, int(ttl.Minutes()))

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", resetMailSubject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}
