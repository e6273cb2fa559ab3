package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfirmationsTableName = "purchase_confirmations"
	confirmationsQuotationIDIndex = "quotation_id-index"
)

type purchaseConfirmationItem struct {
	ID            string  `dynamodbav:"id"`
	QuotationID   string  `dynamodbav:"quotation_id"`
	ProposalID    int64   `dynamodbav:"proposal_id"`
	SupplierName  string  `dynamodbav:"supplier_name"`
	SupplierTaxID string  `dynamodbav:"supplier_tax_id,omitempty"`
	UnitPrice     float64 `dynamodbav:"unit_price"`
	Quantity      float64 `dynamodbav:"quantity"`
	Total         float64 `dynamodbav:"total"`
	ConfirmedAt   string  `dynamodbav:"confirmed_at"`
}

// PurchaseConfirmationDynamoRepository journals confirmed purchases in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id, string)

type PurchaseConfirmationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseConfirmationRepository = (*PurchaseConfirmationDynamoRepository)(nil)

func NewPurchaseConfirmationDynamoRepository(ddb *dynamodb.Client, tableName string) *PurchaseConfirmationDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultConfirmationsTableName
	}
	return &PurchaseConfirmationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PurchaseConfirmationDynamoRepository) Create(ctx context.Context, c entities.PurchaseConfirmation) (entities.PurchaseConfirmation, error) {
	av, err := attributevalue.MarshalMap(toPurchaseConfirmationItem(c))
	if err != nil {
		return entities.PurchaseConfirmation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PurchaseConfirmation{}, err
	}
	return c, nil
}

// ListByQuotationID returns every confirmation for the quotation, following
// pagination until the index is exhausted.
func (r *PurchaseConfirmationDynamoRepository) ListByQuotationID(ctx context.Context, quotationID int64) ([]entities.PurchaseConfirmation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(confirmationsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: strconv.FormatInt(quotationID, 10)},
		},
	}

	items := make([]entities.PurchaseConfirmation, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it purchaseConfirmationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPurchaseConfirmationItem(it))
		}
	}
	return items, nil
}

func toPurchaseConfirmationItem(c entities.PurchaseConfirmation) purchaseConfirmationItem {
	return purchaseConfirmationItem{
		ID:            c.ID,
		QuotationID:   strconv.FormatInt(c.QuotationID, 10),
		ProposalID:    c.ProposalID,
		SupplierName:  c.SupplierName,
		SupplierTaxID: c.SupplierTaxID,
		UnitPrice:     c.UnitPrice,
		Quantity:      c.Quantity,
		Total:         c.Total,
		ConfirmedAt:   c.ConfirmedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPurchaseConfirmationItem(it purchaseConfirmationItem) entities.PurchaseConfirmation {
	qid, _ := strconv.ParseInt(it.QuotationID, 10, 64)
	at, _ := time.Parse(time.RFC3339Nano, it.ConfirmedAt)
	return entities.PurchaseConfirmation{
		ID:            it.ID,
		QuotationID:   qid,
		ProposalID:    it.ProposalID,
		SupplierName:  it.SupplierName,
		SupplierTaxID: it.SupplierTaxID,
		UnitPrice:     it.UnitPrice,
		Quantity:      it.Quantity,
		Total:         it.Total,
		ConfirmedAt:   at,
	}
}
