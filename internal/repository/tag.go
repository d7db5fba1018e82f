package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ivelichko/pennywise/internal/model"
)

//go:generate mockery --name=TagStore

type TagStore interface {
	Create(ctx context.Context, tag *model.Tag) (string, error)
	All(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orders map[string]int) error
}

type Tags struct {
	coll *mongo.Collection
}

func NewTags(cli *mongo.Client, db string) *Tags {
	return &Tags{
		coll: cli.Database(db).Collection("tags"),
	}
}

type tagDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Icon  string             `bson:"icon"`
	Color string             `bson:"color"`
	Order int                `bson:"order"`
}

func (d tagDoc) model() model.Tag {
	return model.Tag{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Icon:  d.Icon,
		Color: d.Color,
		Order: d.Order,
	}
}

func (t *Tags) Create(ctx context.Context, tag *model.Tag) (string, error) {
	res, err := t.coll.InsertOne(ctx, tagDoc{
		Name:  tag.Name,
		Icon:  tag.Icon,
		Color: tag.Color,
		Order: tag.Order,
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

func (t *Tags) All(ctx context.Context) ([]model.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := t.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in All method: %v", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err = cursor.Close(ctx)
		if err != nil {
			logrus.Errorf("mongo couldn't close cursor in All method")
		}
	}(cursor, ctx)

	var tags []model.Tag
	for cursor.Next(ctx) {
		var doc tagDoc
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo couldn't Decode in All method: %v", err)
		}
		tags = append(tags, doc.model())
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor err in All method: %v", err)
	}
	return tags, nil
}

func (t *Tags) Update(ctx context.Context, tag *model.Tag) error {
	oid, err := primitive.ObjectIDFromHex(tag.ID)
	if err != nil {
		return fmt.Errorf("invalid tag id %q in Update method: %v", tag.ID, err)
	}
	res, err := t.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: tag.Name},
		{Key: "icon", Value: tag.Icon},
		{Key: "color", Value: tag.Color},
		{Key: "order", Value: tag.Order},
	}}})
	if err != nil {
		return fmt.Errorf("mongo couldn't UpdateByID in Update method: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *Tags) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid tag id %q in Delete method: %v", id, err)
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

// Reorder rewrites the order field of every listed tag in one bulk write.
// There is no server-side transaction; the ledger owns rollback.
func (t *Tags) Reorder(ctx context.Context, orders map[string]int) error {
	if len(orders) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(orders))
	for id, order := range orders {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return fmt.Errorf("invalid tag id %q in Reorder method: %v", id, err)
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: oid}}).
			SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "order", Value: order}}}}))
	}
	if _, err := t.coll.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("mongo couldn't BulkWrite in Reorder method: %v", err)
	}
	return nil
}
