package usecase

import (
	"context"
	"strings"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/infrastructure/metrics"
	"cfp_agreements/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// INotificationUseCase sends the post-submission confirmation emails.
type INotificationUseCase interface {
	SendConfirmation(ctx context.Context, agreementID string, extraRecipients []string) (entities.Agreement, error)
}

type NotificationUseCase struct {
	agreements   interfaces.IAgreementRepository
	mailer       interfaces.IMailer
	companyInbox string
	logger       *zap.Logger
	now          func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(agreements interfaces.IAgreementRepository, mailer interfaces.IMailer, companyInbox string, logger *zap.Logger) *NotificationUseCase {
	return &NotificationUseCase{agreements: agreements, mailer: mailer, companyInbox: companyInbox, logger: logger, now: time.Now}
}

// SendConfirmation emails the client (plus any extra recipients) and, when
// configured, the company inbox. The agreement is marked as emailed only
// when the client email went out.
func (u *NotificationUseCase) SendConfirmation(ctx context.Context, agreementID string, extraRecipients []string) (entities.Agreement, error) {
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return entities.Agreement{}, ErrInvalidAgreementID
	}
	a, err := u.agreements.GetByID(ctx, agreementID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}

	recipients := uniqueRecipients(append([]string{a.Client.Email}, extraRecipients...))
	if len(recipients) == 0 {
		return entities.Agreement{}, ErrNoRecipients
	}

	msg, err := clientConfirmationEmail(a, recipients)
	if err != nil {
		return entities.Agreement{}, err
	}
	if err := u.mailer.Send(ctx, msg); err != nil {
		metrics.EmailsSent.WithLabelValues("client", "error").Inc()
		u.logger.Error("[notification][usecase] client email failed", zap.String("agreement_id", a.ID), zap.Error(err))
		return entities.Agreement{}, err
	}
	metrics.EmailsSent.WithLabelValues("client", "ok").Inc()

	if u.companyInbox != "" {
		notice, err := companyNotificationEmail(a, u.companyInbox)
		if err == nil {
			err = u.mailer.Send(ctx, notice)
		}
		metrics.EmailsSent.WithLabelValues("company", metrics.Outcome(err)).Inc()
		if err != nil {
			u.logger.Warn("[notification][usecase] company email failed", zap.String("agreement_id", a.ID), zap.Error(err))
		}
	}

	updated, err := u.agreements.MarkEmailSent(ctx, a.ID, strings.Join(recipients, ", "), u.now().UTC())
	if err != nil {
		return entities.Agreement{}, err
	}
	if updated.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	u.logger.Info("[notification][usecase] confirmation sent", zap.String("agreement_id", a.ID), zap.Int("recipients", len(recipients)))
	return updated, nil
}

func uniqueRecipients(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		key := strings.ToLower(r)
		if r == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
