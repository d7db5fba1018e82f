package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ivelichko/pennywise/internal/model"
)

// ErrNotFound is returned when an identifier doesn't match any stored record.
var ErrNotFound = errors.New("record not found")

//go:generate mockery --name=TransactionStore

type TransactionStore interface {
	Create(ctx context.Context, tx *model.Transaction) (string, error)
	Page(ctx context.Context, offset, limit int) ([]model.Transaction, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, id string) error
}

type Transactions struct {
	coll *mongo.Collection
}

func NewTransactions(cli *mongo.Client, db string) *Transactions {
	return &Transactions{
		coll: cli.Database(db).Collection("transactions"),
	}
}

type txDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Amount      int64              `bson:"amount"`
	Description string             `bson:"description"`
	Tag         string             `bson:"tag"`
	Date        time.Time          `bson:"date"`
	Kind        string             `bson:"kind"`
}

func (d txDoc) model() model.Transaction {
	return model.Transaction{
		ID:          d.ID.Hex(),
		Amount:      d.Amount,
		Description: d.Description,
		Tag:         d.Tag,
		Date:        d.Date,
		Kind:        d.Kind,
	}
}

// Create inserts the transaction and returns the identifier mongo assigned.
// The caller never supplies an identifier.
func (t *Transactions) Create(ctx context.Context, tx *model.Transaction) (string, error) {
	res, err := t.coll.InsertOne(ctx, txDoc{
		Amount:      tx.Amount,
		Description: tx.Description,
		Tag:         tx.Tag,
		Date:        tx.Date,
		Kind:        tx.Kind,
	})
	if err != nil {
		return "", fmt.Errorf("mongo couldn't InsertOne in Create method: %v", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongo returned unexpected id type %T in Create method", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Page returns one fixed-size page ordered by date descending. The _id
// tiebreak keeps same-date records in a stable order across fetches.
func (t *Transactions) Page(ctx context.Context, offset, limit int) ([]model.Transaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := t.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in Page method: %v", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err = cursor.Close(ctx)
		if err != nil {
			logrus.Errorf("mongo couldn't close cursor in Page method")
		}
	}(cursor, ctx)

	var page []model.Transaction
	for cursor.Next(ctx) {
		var doc txDoc
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo couldn't Decode in Page method: %v", err)
		}
		page = append(page, doc.model())
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor err in Page method: %v", err)
	}
	return page, nil
}

func (t *Transactions) Update(ctx context.Context, tx *model.Transaction) error {
	oid, err := primitive.ObjectIDFromHex(tx.ID)
	if err != nil {
		return fmt.Errorf("invalid transaction id %q in Update method: %v", tx.ID, err)
	}
	res, err := t.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{
		{Key: "amount", Value: tx.Amount},
		{Key: "description", Value: tx.Description},
		{Key: "tag", Value: tx.Tag},
		{Key: "date", Value: tx.Date},
		{Key: "kind", Value: tx.Kind},
	}}})
	if err != nil {
		return fmt.Errorf("mongo couldn't UpdateByID in Update method: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *Transactions) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid transaction id %q in Delete method: %v", id, err)
	}
	res, err := t.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongo couldn't DeleteOne in Delete method: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
