package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/service/query"
)

type transactionMongoRepo struct {
	q query.Mongo
}

func NewTransactionRepo(q query.Mongo) domain.TransactionRepo {
	return &transactionMongoRepo{
		q: q,
	}
}

func (r *transactionMongoRepo) Create(ctx bCtx.Ctx, tx *domain.Transaction) error {
	if err := r.q.Insert(ctx, domain.TableTransactions, tx); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *transactionMongoRepo) FindOne(ctx bCtx.Ctx, id string) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	if err := r.q.FindOne(ctx, domain.TableTransactions, bson.M{"id": id}, tx); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return tx, nil
}

func (r *transactionMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...domain.TransactionFindAllOptionsFunc) ([]*domain.Transaction, error) {
	opts, err := domain.GetTransactionFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	selector := bson.M{}
	if opts.Type != nil {
		selector["type"] = *opts.Type
	}
	if opts.Buyer != nil {
		selector["buyerUsername"] = *opts.Buyer
	}
	if opts.Seller != nil {
		selector["sellerUsername"] = *opts.Seller
	}

	sortField := "-timestamp"
	if opts.SortDir != nil && *opts.SortDir == domain.SortDirAsc {
		sortField = "timestamp"
	}

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []*domain.Transaction{}
	if err := r.q.Search(ctx, domain.TableTransactions, offset, limit, sortField, selector, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
