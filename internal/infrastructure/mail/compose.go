package mail

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"cfp_agreements/internal/usecase/interfaces"

	gomail "github.com/emersion/go-message/mail"
)

// Compose renders e as a multipart/alternative RFC 5322 message. The plain
// text part comes first so clients that cannot render HTML fall back to it.
func Compose(from string, e interfaces.Email, now time.Time) ([]byte, error) {
	sender, err := gomail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parsing sender %q: %w", from, err)
	}
	to, err := parseRecipients(e.To)
	if err != nil {
		return nil, err
	}

	var h gomail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*gomail.Address{sender})
	h.SetAddressList("To", to)
	h.SetSubject(e.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("generating message id: %w", err)
	}

	var buf bytes.Buffer
	mw, err := gomail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("creating message writer: %w", err)
	}
	iw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("creating inline writer: %w", err)
	}
	if err := writePart(iw, "text/plain", e.Text); err != nil {
		return nil, err
	}
	if e.HTML != "" {
		if err := writePart(iw, "text/html", e.HTML); err != nil {
			return nil, err
		}
	}
	if err := iw.Close(); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePart(iw *gomail.InlineWriter, contentType, body string) error {
	var ph gomail.InlineHeader
	ph.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	w, err := iw.CreatePart(ph)
	if err != nil {
		return fmt.Errorf("creating %s part: %w", contentType, err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return fmt.Errorf("writing %s part: %w", contentType, err)
	}
	return w.Close()
}

func parseRecipients(raw []string) ([]*gomail.Address, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("email has no recipients")
	}
	out := make([]*gomail.Address, 0, len(raw))
	for _, r := range raw {
		addr, err := gomail.ParseAddress(r)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient %q: %w", r, err)
		}
		out = append(out, addr)
	}
	return out, nil
}
