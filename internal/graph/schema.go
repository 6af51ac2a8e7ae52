// Package graph declares the API operations, their argument and result
// contracts, and binds each one to its handler.
package graph

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/baharkarakas/trade-ledger/internal/models"
)

// Handlers is the set of operations the schema dispatches to.
type Handlers interface {
	List(ctx context.Context, page models.Page) ([]models.TransactionRecord, error)
	ListByUser(ctx context.Context, userID int, page models.Page) ([]models.TransactionRecord, error)
	Get(ctx context.Context, id string) (*models.TransactionRecord, error)
	TopStocks(ctx context.Context) ([]models.TopStock, error)
	Create(ctx context.Context, in models.NewTransaction) (models.TransactionResponse, error)
}

var transactionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Transaction",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"user_id":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"stock_symbol": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"shares":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"price":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"timestamp":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var topStockType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopStock",
	Fields: graphql.Fields{
		"stock_symbol": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"total_shares": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var transactionResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TransactionResponse",
	Fields: graphql.Fields{
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"transaction_id": &graphql.Field{
			Type: graphql.ID,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if resp, ok := p.Source.(models.TransactionResponse); ok && resp.TransactionID != nil {
					return *resp.TransactionID, nil
				}
				return nil, nil
			},
		},
		"transaction": &graphql.Field{
			Type: transactionType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if resp, ok := p.Source.(models.TransactionResponse); ok && resp.Transaction != nil {
					return *resp.Transaction, nil
				}
				return nil, nil
			},
		},
	},
})

func pageArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: models.DefaultLimit},
		"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: models.DefaultOffset},
	}
}

// NewSchema builds the executable schema over h.
func NewSchema(h Handlers) (graphql.Schema, error) {
	byUserArgs := pageArgs()
	byUserArgs["user_id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"transactions": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(transactionType))),
				Args: pageArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return h.List(p.Context, page(p.Args))
				},
			},
			"transactionsByUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(transactionType))),
				Args: byUserArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return h.ListByUser(p.Context, p.Args["user_id"].(int), page(p.Args))
				},
			},
			"transaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rec, err := h.Get(p.Context, fmt.Sprint(p.Args["id"]))
					if err != nil || rec == nil {
						return nil, err
					}
					return *rec, nil
				},
			},
			"topStocks": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(topStockType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return h.TopStocks(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTransaction": &graphql.Field{
				Type: graphql.NewNonNull(transactionResponseType),
				Args: graphql.FieldConfigArgument{
					"user_id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"stock_symbol": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"shares":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"price":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					price, err := toFloat(p.Args["price"])
					if err != nil {
						return nil, err
					}
					return h.Create(p.Context, models.NewTransaction{
						UserID:      p.Args["user_id"].(int),
						StockSymbol: p.Args["stock_symbol"].(string),
						Shares:      p.Args["shares"].(int),
						Price:       price,
					})
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// page reads the optional pagination arguments. An explicit null counts as absent.
func page(args map[string]interface{}) models.Page {
	var pg models.Page
	if v, ok := args["limit"].(int); ok {
		pg.Limit = &v
	}
	if v, ok := args["offset"].(int); ok {
		pg.Offset = &v
	}
	return pg
}

// Float arguments written as integer literals may arrive as int.
func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("price: unexpected %T", v)
}
