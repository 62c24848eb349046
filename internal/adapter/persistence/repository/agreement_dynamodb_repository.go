package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAgreementsTableName = "agreements"
	defaultReferencesTableName = "agreement_references"
)

// Positions of the writes in the Create transaction, used to read
// CancellationReasons.
const (
	txAgreementPut = iota
	txReferencePut
	txDraftUpdate
)

type agreementItem struct {
	ID                string        `dynamodbav:"id"`
	ContractReference string        `dynamodbav:"contract_reference"`
	TemplateID        string        `dynamodbav:"template_id"`
	Client            clientItem    `dynamodbav:"client"`
	Terms             termsItem     `dynamodbav:"terms"`
	EndDate           string        `dynamodbav:"end_date"`
	RenewalDate       string        `dynamodbav:"renewal_date,omitempty"`
	ServicesIncluded  string        `dynamodbav:"services_included"`
	Quote             string        `dynamodbav:"quote"`
	TermsAccepted     bool          `dynamodbav:"terms_accepted"`
	ClientSignature   signatureItem `dynamodbav:"client_signature"`
	CompanySignature  signatureItem `dynamodbav:"company_signature"`
	Status            string        `dynamodbav:"status"`
	DraftToken        string        `dynamodbav:"draft_token,omitempty"`
	EmailSentAt       string        `dynamodbav:"email_sent_at,omitempty"`
	EmailSentTo       string        `dynamodbav:"email_sent_to,omitempty"`
	ReminderSentAt    string        `dynamodbav:"reminder_sent_at,omitempty"`
	CreatedAt         string        `dynamodbav:"created_at"`
	UpdatedAt         string        `dynamodbav:"updated_at"`
}

type referenceItem struct {
	ContractReference string `dynamodbav:"contract_reference"`
	AgreementID       string `dynamodbav:"agreement_id"`
}

// AgreementDynamoRepository persists agreements in DynamoDB.
//
// Table requirements:
//   - agreements: PK id (string)
//   - agreement_references: PK contract_reference (string), one row per
//     issued reference so uniqueness can be enforced inside a transaction
//   - agreement_drafts: see DraftDynamoRepository
type AgreementDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	referencesTable string
	draftsTable     string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client, tableName, referencesTable, draftsTable string) *AgreementDynamoRepository {
	if tableName == "" {
		tableName = defaultAgreementsTableName
	}
	if referencesTable == "" {
		referencesTable = defaultReferencesTableName
	}
	if draftsTable == "" {
		draftsTable = defaultDraftsTableName
	}
	return &AgreementDynamoRepository{
		ddb:             ddb,
		tableName:       tableName,
		referencesTable: referencesTable,
		draftsTable:     draftsTable,
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	it, err := toAgreementItem(a)
	if err != nil {
		return entities.Agreement{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Agreement{}, err
	}
	refAV, err := attributevalue.MarshalMap(referenceItem{ContractReference: a.ContractReference, AgreementID: a.ID})
	if err != nil {
		return entities.Agreement{}, err
	}

	writes := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		{Put: &types.Put{
			TableName:                aws.String(r.referencesTable),
			Item:                     refAV,
			ConditionExpression:      aws.String("attribute_not_exists(#ref)"),
			ExpressionAttributeNames: map[string]string{"#ref": "contract_reference"},
		}},
	}
	if a.DraftToken != "" {
		writes = append(writes, types.TransactWriteItem{Update: &types.Update{
			TableName: aws.String(r.draftsTable),
			Key: map[string]types.AttributeValue{
				"token": stringAttr(a.DraftToken),
			},
			ConditionExpression: aws.String("#status = :draft"),
			UpdateExpression:    aws.String("SET #status = :submitted, #agreement_id = :agreement_id, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#status":       "status",
				"#agreement_id": "agreement_id",
				"#updated_at":   "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":draft":        stringAttr(string(entities.DraftStatusDraft)),
				":submitted":    stringAttr(string(entities.DraftStatusSubmitted)),
				":agreement_id": stringAttr(a.ID),
				":updated_at":   stringAttr(formatTime(a.CreatedAt)),
			},
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		return entities.Agreement{}, mapTransactionError(err)
	}
	return a, nil
}

func mapTransactionError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		switch i {
		case txReferencePut:
			return interfaces.ErrDuplicateReference
		case txDraftUpdate:
			return interfaces.ErrDraftConsumed
		}
	}
	return err
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}
	return unmarshalAgreement(out.Item)
}

// List returns every agreement, newest first. Agreement volume is small
// enough for a full scan.
func (r *AgreementDynamoRepository) List(ctx context.Context) ([]entities.Agreement, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Agreement, 0, len(raw))
	for _, item := range raw {
		a, err := unmarshalAgreement(item)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Search matches query case-insensitively against the client name, the
// contract reference and the client email. DynamoDB's contains() is case
// sensitive, so filtering happens after the scan.
func (r *AgreementDynamoRepository) Search(ctx context.Context, query string) ([]entities.Agreement, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entities.Agreement, 0)
	for _, a := range all {
		if matchesQuery(a, q) {
			out = append(out, a)
		}
	}
	return out, nil
}

func matchesQuery(a entities.Agreement, q string) bool {
	for _, field := range []string{a.Client.ClientName, a.ContractReference, a.Client.Email} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (r *AgreementDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.AgreementStatus) (entities.Agreement, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "#status = :from"
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":from":       stringAttr(string(from)),
			":to":         stringAttr(string(to)),
			":updated_at": stringAttr(now),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return cond, expr, vals, names
	})
}

func (r *AgreementDynamoRepository) MarkEmailSent(ctx context.Context, id, sentTo string, at time.Time) (entities.Agreement, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #email_sent_at = :email_sent_at, #email_sent_to = :email_sent_to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":email_sent_at": stringAttr(formatTime(at)),
			":email_sent_to": stringAttr(sentTo),
			":updated_at":    stringAttr(now),
		}
		names := map[string]string{
			"#email_sent_at": "email_sent_at",
			"#email_sent_to": "email_sent_to",
			"#updated_at":    "updated_at",
		}
		return "", expr, vals, names
	})
}

// update applies a conditional UpdateItem. A failed condition (missing row
// or a stale precondition) yields a zero-value Agreement.
func (r *AgreementDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (condition, updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Agreement, error) {
	now := formatTime(time.Now())
	cond, updateExpr, values, names := build(now)

	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Agreement{}, nil
		}
		return entities.Agreement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Agreement{}, nil
	}
	return unmarshalAgreement(out.Attributes)
}

func unmarshalAgreement(item map[string]types.AttributeValue) (entities.Agreement, error) {
	var it agreementItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it)
}

func toAgreementItem(a entities.Agreement) (agreementItem, error) {
	quote, err := encodeQuote(a.Quote)
	if err != nil {
		return agreementItem{}, err
	}
	return agreementItem{
		ID:                a.ID,
		ContractReference: a.ContractReference,
		TemplateID:        a.TemplateID,
		Client:            toClientItem(a.Client),
		Terms:             toTermsItem(a.Terms),
		EndDate:           formatTime(a.EndDate),
		RenewalDate:       formatTimePtr(a.RenewalDate),
		ServicesIncluded:  a.ServicesIncluded,
		Quote:             quote,
		TermsAccepted:     a.TermsAccepted,
		ClientSignature:   toSignatureItem(a.ClientSignature),
		CompanySignature:  toSignatureItem(a.CompanySignature),
		Status:            string(a.Status),
		DraftToken:        a.DraftToken,
		EmailSentAt:       formatTimePtr(a.EmailSentAt),
		EmailSentTo:       a.EmailSentTo,
		ReminderSentAt:    formatTimePtr(a.ReminderSentAt),
		CreatedAt:         formatTime(a.CreatedAt),
		UpdatedAt:         formatTime(a.UpdatedAt),
	}, nil
}

func fromAgreementItem(it agreementItem) (entities.Agreement, error) {
	quote, err := decodeQuote(it.Quote)
	if err != nil {
		return entities.Agreement{}, err
	}
	return entities.Agreement{
		ID:                it.ID,
		ContractReference: it.ContractReference,
		TemplateID:        it.TemplateID,
		Client:            fromClientItem(it.Client),
		Terms:             fromTermsItem(it.Terms),
		EndDate:           parseTime(it.EndDate),
		RenewalDate:       parseTimePtr(it.RenewalDate),
		ServicesIncluded:  it.ServicesIncluded,
		Quote:             quote,
		TermsAccepted:     it.TermsAccepted,
		ClientSignature:   fromSignatureItem(it.ClientSignature),
		CompanySignature:  fromSignatureItem(it.CompanySignature),
		Status:            entities.AgreementStatus(it.Status),
		DraftToken:        it.DraftToken,
		EmailSentAt:       parseTimePtr(it.EmailSentAt),
		EmailSentTo:       it.EmailSentTo,
		ReminderSentAt:    parseTimePtr(it.ReminderSentAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}, nil
}
