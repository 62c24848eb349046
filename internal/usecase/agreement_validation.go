package usecase

import (
	"bytes"
	"encoding/base64"
	"errors"
	"reflect"
	"strings"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// MaxSignatureBytes bounds a decoded signature image.
const MaxSignatureBytes = 1 << 20

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type clientRules struct {
	ClientName  string `json:"clientName" validate:"required,max=200"`
	SiteAddress string `json:"siteAddress" validate:"required"`
	City        string `json:"city" validate:"required"`
	Postcode    string `json:"postcode" validate:"required,max=10"`
	ContactName string `json:"contactName" validate:"required"`
	Telephone   string `json:"telephone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

type termsRules struct {
	DurationMonths int `json:"contractDurationMonths" validate:"min=1,max=120"`
}

type signatureRules struct {
	Image     string `json:"image" validate:"required"`
	PrintName string `json:"printName" validate:"required"`
}

type submissionRules struct {
	Client           clientRules    `json:"client"`
	Terms            termsRules     `json:"terms"`
	TermsAccepted    bool           `json:"termsAccepted" validate:"required"`
	ClientSignature  signatureRules `json:"clientSignature"`
	CompanySignature signatureRules `json:"companySignature"`
}

var submissionValidator = newSubmissionValidator()

func newSubmissionValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var ruleReasons = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "is below the minimum",
	"max":      "exceeds the maximum",
}

// validateSubmission collects every invalid field of a submission into a
// single ValidationError.
func validateSubmission(in SubmitInput, quote entities.Quote) error {
	terms := in.Terms
	if terms.DurationMonths == 0 {
		terms.DurationMonths = entities.DefaultContractMonths
	}
	rules := submissionRules{
		Client: clientRules{
			ClientName:  strings.TrimSpace(in.Client.ClientName),
			SiteAddress: strings.TrimSpace(in.Client.SiteAddress),
			City:        strings.TrimSpace(in.Client.City),
			Postcode:    strings.TrimSpace(in.Client.Postcode),
			ContactName: strings.TrimSpace(in.Client.ContactName),
			Telephone:   strings.TrimSpace(in.Client.Telephone),
			Email:       strings.TrimSpace(in.Client.Email),
		},
		Terms:            termsRules{DurationMonths: terms.DurationMonths},
		TermsAccepted:    in.TermsAccepted,
		ClientSignature:  signatureRules{Image: in.ClientSignature.Image, PrintName: strings.TrimSpace(in.ClientSignature.PrintName)},
		CompanySignature: signatureRules{Image: in.CompanySignature.Image, PrintName: strings.TrimSpace(in.CompanySignature.PrintName)},
	}

	verr := &apperr.ValidationError{}
	if err := submissionValidator.Struct(rules); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			reason, ok := ruleReasons[fe.Tag()]
			if !ok {
				reason = "is invalid"
			}
			if fe.Field() == "termsAccepted" {
				reason = "must be accepted"
			}
			verr.Add(fieldPath(fe.Namespace()), reason)
		}
	}

	if in.Terms.StartDate.IsZero() {
		verr.Add("terms.startDate", "is required")
	}
	if len(quote.LineItems) == 0 {
		verr.Add("selections", "at least one service must be included")
	}
	for _, id := range quote.UnresolvedItems {
		verr.Add("selections."+id+".unitPrice", "price must be confirmed before submission")
	}
	if rules.ClientSignature.Image != "" {
		if _, err := decodeSignature(rules.ClientSignature.Image); err != nil {
			verr.Add("clientSignature.image", err.Error())
		}
	}
	if rules.CompanySignature.Image != "" {
		if _, err := decodeSignature(rules.CompanySignature.Image); err != nil {
			verr.Add("companySignature.image", err.Error())
		}
	}
	return verr.OrNil()
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// decodeSignature accepts a PNG as a data URL or bare base64.
func decodeSignature(raw string) ([]byte, error) {
	payload := strings.TrimSpace(raw)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 {
			return nil, errors.New("malformed data URL")
		}
		header := payload[:comma]
		if !strings.HasPrefix(header, "data:image/png") || !strings.HasSuffix(header, ";base64") {
			return nil, errors.New("must be a base64 PNG image")
		}
		payload = payload[comma+1:]
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxSignatureBytes+3 {
		return nil, errors.New("image is too large")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.New("is not valid base64")
	}
	if len(data) > MaxSignatureBytes {
		return nil, errors.New("image is too large")
	}
	if !bytes.HasPrefix(data, pngMagic) {
		return nil, errors.New("must be a PNG image")
	}
	return data, nil
}
