package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"cfp_agreements/internal/infrastructure/config"
	"cfp_agreements/internal/usecase/interfaces"

	gomail "github.com/emersion/go-message/mail"
	"go.uber.org/zap"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers mail through an SMTP relay using STARTTLS when the
// server offers it.
type SMTPMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *zap.Logger
	now    func() time.Time
	send   sendFunc
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.Config, logger *zap.Logger) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPMailer{
		addr:   net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:   auth,
		from:   cfg.MailFrom,
		logger: logger,
		now:    time.Now,
		send:   smtp.SendMail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, e interfaces.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := Compose(m.from, e, m.now())
	if err != nil {
		return err
	}
	sender, err := gomail.ParseAddress(m.from)
	if err != nil {
		return fmt.Errorf("parsing sender: %w", err)
	}
	rcpts, err := parseRecipients(e.To)
	if err != nil {
		return err
	}
	envelope := make([]string, len(rcpts))
	for i, r := range rcpts {
		envelope[i] = r.Address
	}

	// net/smtp has no context support; run the exchange aside so a cancelled
	// request does not hang on a slow relay.
	done := make(chan error, 1)
	go func() { done <- m.send(m.addr, m.auth, sender.Address, envelope, msg) }()

	select {
	case <-ctx.Done():
		m.logger.Warn("[mail][smtp] send abandoned", zap.String("subject", e.Subject), zap.Error(ctx.Err()))
		return ctx.Err()
	case err := <-done:
		if err != nil {
			m.logger.Error("[mail][smtp] send failed", zap.String("subject", e.Subject), zap.Int("recipients", len(envelope)), zap.Error(err))
			return fmt.Errorf("sending mail: %w", err)
		}
	}
	m.logger.Info("[mail][smtp] sent", zap.String("subject", e.Subject), zap.Int("recipients", len(envelope)))
	return nil
}
