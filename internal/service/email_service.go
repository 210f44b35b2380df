package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/pkg/logger"

	"go.uber.org/zap"
)

// EmailService SMTP邮件发送，目前只用于密码重置
type EmailService struct {
	cfg config.MailConfig
}

func NewEmailService(cfg config.MailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) SendPasswordReset(to, fullName, resetLink string) error {
	subject := "KTigerStudy 비밀번호 재설정"
	body := fmt.Sprintf(
		"안녕하세요 %s님,\r\n\r\n"+
			"아래 링크를 클릭하여 비밀번호를 재설정하세요. 링크는 15분간 유효합니다.\r\n\r\n"+
			"%s\r\n\r\n"+
			"본인이 요청하지 않았다면 이 메일을 무시하세요.\r\n",
		fullName, resetLink)

	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	if s.cfg.Host == "" {
		logger.Log.Warn("邮件服务未配置，跳过发送", zap.String("to", to))
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		logger.Log.Error("邮件发送失败", zap.String("to", to), zap.Error(err))
		return err
	}

	logger.Log.Info("邮件已发送", zap.String("to", to), zap.String("subject", subject))
	return nil
}
