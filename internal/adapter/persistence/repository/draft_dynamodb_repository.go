package repository

import (
	"context"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "agreement_drafts"

type draftItem struct {
	Token       string          `dynamodbav:"token"`
	TemplateID  string          `dynamodbav:"template_id"`
	Client      clientItem      `dynamodbav:"client"`
	Terms       termsItem       `dynamodbav:"terms"`
	Selections  []selectionItem `dynamodbav:"selections"`
	Discount    string          `dynamodbav:"discount"`
	Status      string          `dynamodbav:"status"`
	AgreementID string          `dynamodbav:"agreement_id,omitempty"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists drafts in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//
// A draft is only ever overwritten while its status is draft; once an
// agreement supersedes it the row is frozen. Callers carry CreatedAt over
// from the stored draft.
type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client, tableName string) *DraftDynamoRepository {
	if tableName == "" {
		tableName = defaultDraftsTableName
	}
	return &DraftDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *DraftDynamoRepository) Upsert(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	now := r.now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	if d.Status == "" {
		d.Status = entities.DraftStatusDraft
	}

	av, err := attributevalue.MarshalMap(toDraftItem(d))
	if err != nil {
		return entities.Draft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token) OR #status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#token":  "token",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft": stringAttr(string(entities.DraftStatusDraft)),
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Draft{}, interfaces.ErrDraftConsumed
		}
		return entities.Draft{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Draft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": stringAttr(token),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Draft{}, err
	}
	if len(out.Item) == 0 {
		return entities.Draft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Draft{}, err
	}
	return fromDraftItem(it), nil
}

func toDraftItem(d entities.Draft) draftItem {
	return draftItem{
		Token:       d.Token,
		TemplateID:  d.TemplateID,
		Client:      toClientItem(d.Client),
		Terms:       toTermsItem(d.Terms),
		Selections:  toSelectionItems(d.Selections),
		Discount:    d.Discount.String(),
		Status:      string(d.Status),
		AgreementID: d.AgreementID,
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}
}

func fromDraftItem(it draftItem) entities.Draft {
	return entities.Draft{
		Token:       it.Token,
		TemplateID:  it.TemplateID,
		Client:      fromClientItem(it.Client),
		Terms:       fromTermsItem(it.Terms),
		Selections:  fromSelectionItems(it.Selections),
		Discount:    parseDecimal(it.Discount),
		Status:      entities.DraftStatus(it.Status),
		AgreementID: it.AgreementID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
