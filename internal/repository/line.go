package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ivelichko/pennywise/internal/model"
)

// Collection names served by Lines.
const (
	CollectionIncomes   = "incomes"
	CollectionRecurring = "recurring_expenses"
)

//go:generate mockery --name=LineStore

type LineStore interface {
	Create(ctx context.Context, line *model.Line) (string, error)
	All(ctx context.Context) ([]model.Line, error)
	Update(ctx context.Context, line *model.Line) error
	Delete(ctx context.Context, id string) error
}

// Lines stores one flat collection of money lines. Incomes and recurring
// expenses are two instances over different collection names.
type Lines struct {
	coll *mongo.Collection
}

func NewLines(cli *mongo.Client, db, collection string) *Lines {
	return &Lines{
		coll: cli.Database(db).Collection(collection),
	}
}

type lineDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Description string             `bson:"description"`
	Amount      int64              `bson:"amount"`
}

func (d lineDoc) model() model.Line {
	return model.Line{
		ID:          d.ID.Hex(),
		Description: d.Description,
		Amount:      d.Amount,
	}
}

func (l *Lines) Create(ctx context.Context, line *model.Line) (string, error) {
	res, err := l.coll.InsertOne(ctx, lineDoc{
		Description: line.Description,
		Amount:      line.Amount,
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

func (l *Lines) All(ctx context.Context) ([]model.Line, error) {
	cursor, err := l.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in All method: %v", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err = cursor.Close(ctx)
		if err != nil {
			logrus.Errorf("mongo couldn't close cursor in All method")
		}
	}(cursor, ctx)

	var lines []model.Line
	for cursor.Next(ctx) {
		var doc lineDoc
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo couldn't Decode in All method: %v", err)
		}
		lines = append(lines, doc.model())
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor err in All method: %v", err)
	}
	return lines, nil
}

func (l *Lines) Update(ctx context.Context, line *model.Line) error {
	oid, err := primitive.ObjectIDFromHex(line.ID)
	if err != nil {
		return fmt.Errorf("invalid line id %q in Update method: %v", line.ID, err)
	}
	res, err := l.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{
		{Key: "description", Value: line.Description},
		{Key: "amount", Value: line.Amount},
	}}})
	if err != nil {
		return fmt.Errorf("mongo couldn't UpdateByID in Update method: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (l *Lines) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid line id %q in Delete method: %v", id, err)
	}
	res, err := l.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongo couldn't DeleteOne in Delete method: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
