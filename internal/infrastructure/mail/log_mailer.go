package mail

import (
	"context"

	"cfp_agreements/internal/infrastructure/config"
	"cfp_agreements/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogMailer writes emails to the log instead of sending them. It is used
// when no SMTP relay is configured.
type LogMailer struct {
	logger *zap.Logger
}

var _ interfaces.IMailer = (*LogMailer)(nil)

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, e interfaces.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Info("[mail][log] email not sent, no SMTP relay configured",
		zap.Strings("to", e.To),
		zap.String("subject", e.Subject),
		zap.Int("text_len", len(e.Text)),
		zap.Int("html_len", len(e.HTML)),
	)
	return nil
}

// New picks the SMTP mailer when SMTP_HOST is set and the log mailer
// otherwise.
func New(cfg config.Config, logger *zap.Logger) interfaces.IMailer {
	if cfg.SMTPHost == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(cfg, logger)
}
