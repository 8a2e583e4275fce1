package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// MongoDishStore keeps dishes in a MongoDB collection. All counter updates
// go through $inc so concurrent clicks and orders never lose updates.
type MongoDishStore struct {
	collection *mongo.Collection
}

func NewMongoDishStore(collection *mongo.Collection) *MongoDishStore {
	return &MongoDishStore{collection: collection}
}

func (s *MongoDishStore) Insert(ctx context.Context, dish *models.Dish) (*models.Dish, error) {
	if err := validateDish(dish); err != nil {
		return nil, err
	}

	now := time.Now()
	dish.ID = primitive.NewObjectID()
	dish.ClickCount = 0
	dish.OrderCount = 0
	if dish.IsAvailable == nil {
		available := true
		dish.IsAvailable = &available
	}
	dish.CreatedAt = now
	dish.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *MongoDishStore) FindAll(ctx context.Context) ([]models.Dish, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dishes := []models.Dish{}
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *MongoDishStore) FindByID(ctx context.Context, id string) (*models.Dish, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids are indistinguishable from unknown ones.
		return nil, ErrNotFound
	}

	var dish models.Dish
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&dish)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *MongoDishStore) IncrementClick(ctx context.Context, id string) (*models.Dish, error) {
	return s.increment(ctx, id, bson.M{"clickCount": int64(1)})
}

func (s *MongoDishStore) IncrementOrder(ctx context.Context, id string, quantity int64) (*models.Dish, error) {
	return s.increment(ctx, id, bson.M{"orderCount": quantity})
}

func (s *MongoDishStore) increment(ctx context.Context, id string, counters bson.M) (*models.Dish, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{
		"$inc": counters,
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var dish models.Dish
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&dish)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *MongoDishStore) FindTopByPopularity(ctx context.Context, limit int64) ([]models.Dish, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "orderCount", Value: -1}, {Key: "clickCount", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dishes := []models.Dish{}
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// DeleteAll removes every dish. Only the offline seeder calls this; it is
// never exposed as an endpoint.
func (s *MongoDishStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
