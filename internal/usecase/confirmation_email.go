package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/pricing"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/microcosm-cc/bluemonday"
)

var strictText = bluemonday.StrictPolicy()

var clientEmailTmpl = template.Must(template.New("client").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
<h1>Agreement Confirmed</h1>
<p>Dear {{.ContactName}},</p>
<p>Thank you for choosing Core Fire Protection Ltd. Your service agreement has been submitted and confirmed.</p>
<p><strong>Contract Reference:</strong> {{.Reference}}<br>
<strong>Start Date:</strong> {{.StartDate}}<br>
<strong>Annual Value:</strong> {{.GrandTotal}} (inc. VAT)</p>
<table cellpadding="6" style="border-collapse: collapse;">
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Frequency}}</td><td align="right">{{.Cost}}</td></tr>
{{end}}</table>
{{if .SpecialRequirements}}<p><strong>Special requirements:</strong> {{.SpecialRequirements}}</p>{{end}}
<p>We will contact you shortly to schedule your first service visit.</p>
<p>Best regards,<br><strong>Core Fire Protection Team</strong></p>
</body></html>`))

var companyEmailTmpl = template.Must(template.New("company").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
<h2>New Agreement Submitted</h2>
<p><strong>Action Required:</strong> a new service agreement requires review.</p>
<table cellpadding="6">
<tr><td>Contract Reference</td><td>{{.Reference}}</td></tr>
<tr><td>Client Name</td><td>{{.ClientName}}</td></tr>
<tr><td>Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
<tr><td>Telephone</td><td>{{.Telephone}}</td></tr>
<tr><td>Annual Value</td><td><strong>{{.GrandTotal}}</strong></td></tr>
<tr><td>Services</td><td>{{len .Lines}}</td></tr>
</table>
{{if .Unresolved}}<p>Prices to confirm: {{.Unresolved}}</p>{{end}}
</body></html>`))

type emailLine struct {
	Name      string
	Frequency string
	Cost      string
}

type emailView struct {
	Reference           string
	ClientName          string
	ContactName         string
	Email               string
	Telephone           string
	StartDate           string
	GrandTotal          string
	SpecialRequirements string
	Unresolved          string
	Lines               []emailLine
}

func newEmailView(a entities.Agreement) emailView {
	v := emailView{
		Reference:           a.ContractReference,
		ClientName:          clean(a.Client.ClientName),
		ContactName:         clean(a.Client.ContactName),
		Email:               a.Client.Email,
		Telephone:           clean(a.Client.Telephone),
		StartDate:           a.Terms.StartDate.Format("2 January 2006"),
		GrandTotal:          pricing.FormatGBP(a.Quote.GrandTotal),
		SpecialRequirements: clean(a.Terms.SpecialRequirements),
		Unresolved:          strings.Join(a.Quote.UnresolvedItems, ", "),
	}
	if v.ContactName == "" {
		v.ContactName = v.ClientName
	}
	for _, l := range a.Quote.LineItems {
		v.Lines = append(v.Lines, emailLine{Name: l.Name, Frequency: l.Frequency, Cost: pricing.FormatNullGBP(l.AnnualizedCost)})
	}
	return v
}

// clean strips any markup a client typed into a free-text field.
func clean(s string) string {
	return strings.TrimSpace(strictText.Sanitize(s))
}

func clientConfirmationEmail(a entities.Agreement, to []string) (interfaces.Email, error) {
	v := newEmailView(a)
	var buf bytes.Buffer
	if err := clientEmailTmpl.Execute(&buf, v); err != nil {
		return interfaces.Email{}, err
	}
	var text strings.Builder
	fmt.Fprintf(&text, "Dear %s,\n\nYour service agreement %s has been confirmed.\n", v.ContactName, v.Reference)
	fmt.Fprintf(&text, "Start date: %s\nAnnual value: %s (inc. VAT)\n\n", v.StartDate, v.GrandTotal)
	for _, l := range v.Lines {
		fmt.Fprintf(&text, "- %s (%s): %s\n", l.Name, l.Frequency, l.Cost)
	}
	text.WriteString("\nCore Fire Protection Team\n")

	return interfaces.Email{
		To:      to,
		Subject: fmt.Sprintf("Your Service Agreement - %s", a.ContractReference),
		HTML:    buf.String(),
		Text:    text.String(),
	}, nil
}

func companyNotificationEmail(a entities.Agreement, inbox string) (interfaces.Email, error) {
	v := newEmailView(a)
	var buf bytes.Buffer
	if err := companyEmailTmpl.Execute(&buf, v); err != nil {
		return interfaces.Email{}, err
	}
	text := fmt.Sprintf("New agreement %s\nClient: %s\nEmail: %s\nTelephone: %s\nAnnual value: %s\n",
		v.Reference, v.ClientName, v.Email, v.Telephone, v.GrandTotal)
	return interfaces.Email{
		To:      []string{inbox},
		Subject: fmt.Sprintf("New Agreement: %s - %s", a.ContractReference, v.ClientName),
		HTML:    buf.String(),
		Text:    text,
	}, nil
}
