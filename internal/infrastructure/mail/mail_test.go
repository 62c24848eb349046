package mail

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"cfp_agreements/internal/infrastructure/config"
	"cfp_agreements/internal/usecase/interfaces"

	gomail "github.com/emersion/go-message/mail"
	"go.uber.org/zap"
)

func testEmail() interfaces.Email {
	return interfaces.Email{
		To:      []string{"Jane Client <jane@client.example>", "ops@client.example"},
		Subject: "Your Service Agreement - CFP-SYS-01ABCDEF",
		Text:    "Thank you for your agreement.",
		HTML:    "<p>Thank you for your agreement.</p>",
	}
}

func TestCompose(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	raw, err := Compose("Core Fire Protection <noreply@corefire.example>", testEmail(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr, err := gomail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reading composed message: %v", err)
	}
	subject, err := mr.Header.Subject()
	if err != nil || subject != "Your Service Agreement - CFP-SYS-01ABCDEF" {
		t.Fatalf("unexpected subject %q err=%v", subject, err)
	}
	to, err := mr.Header.AddressList("To")
	if err != nil || len(to) != 2 || to[0].Address != "jane@client.example" {
		t.Fatalf("unexpected To header %v err=%v", to, err)
	}
	date, err := mr.Header.Date()
	if err != nil || !date.Equal(now) {
		t.Fatalf("unexpected date %v err=%v", date, err)
	}

	var types []string
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		h, ok := p.Header.(*gomail.InlineHeader)
		if !ok {
			t.Fatalf("expected inline part, got %T", p.Header)
		}
		ct, _, _ := h.ContentType()
		body, _ := io.ReadAll(p.Body)
		types = append(types, ct)
		if ct == "text/html" && !strings.Contains(string(body), "<p>") {
			t.Fatalf("html part lost markup: %q", body)
		}
	}
	if strings.Join(types, ",") != "text/plain,text/html" {
		t.Fatalf("unexpected parts %v", types)
	}
}

func TestComposeRejectsBadAddresses(t *testing.T) {
	e := testEmail()
	if _, err := Compose("not an address", e, time.Now()); err == nil {
		t.Fatalf("expected sender error")
	}
	e.To = nil
	if _, err := Compose("noreply@corefire.example", e, time.Now()); err == nil {
		t.Fatalf("expected error for no recipients")
	}
	e.To = []string{"@@"}
	if _, err := Compose("noreply@corefire.example", e, time.Now()); err == nil {
		t.Fatalf("expected recipient error")
	}
}

func TestSMTPMailerSend(t *testing.T) {
	cfg := config.Config{SMTPHost: "smtp.example", SMTPPort: 587, MailFrom: "Core Fire <noreply@corefire.example>"}
	m := NewSMTPMailer(cfg, zap.NewNop())

	var gotAddr, gotFrom string
	var gotTo []string
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo = addr, from, to
		if !bytes.Contains(msg, []byte("Subject: Your Service Agreement")) {
			t.Fatalf("message missing subject header")
		}
		return nil
	}

	if err := m.Send(context.Background(), testEmail()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "smtp.example:587" || gotFrom != "noreply@corefire.example" {
		t.Fatalf("unexpected envelope addr=%q from=%q", gotAddr, gotFrom)
	}
	if strings.Join(gotTo, ",") != "jane@client.example,ops@client.example" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
}

func TestSMTPMailerSendError(t *testing.T) {
	cfg := config.Config{SMTPHost: "smtp.example", SMTPPort: 25, MailFrom: "noreply@corefire.example"}
	m := NewSMTPMailer(cfg, zap.NewNop())
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("421 service not available")
	}
	if err := m.Send(context.Background(), testEmail()); err == nil {
		t.Fatalf("expected relay error")
	}
}

func TestSMTPMailerCancelledContext(t *testing.T) {
	cfg := config.Config{SMTPHost: "smtp.example", SMTPPort: 25, MailFrom: "noreply@corefire.example"}
	m := NewSMTPMailer(cfg, zap.NewNop())
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatalf("send must not be called")
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Send(ctx, testEmail()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewPicksMailer(t *testing.T) {
	if _, ok := New(config.Config{}, zap.NewNop()).(*LogMailer); !ok {
		t.Fatalf("expected log mailer without SMTP host")
	}
	if _, ok := New(config.Config{SMTPHost: "smtp.example", SMTPPort: 25}, zap.NewNop()).(*SMTPMailer); !ok {
		t.Fatalf("expected smtp mailer")
	}
}
