package repository

import (
	"context"
	"errors"
	"time"

	"github.com/docqa/pdfchat-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UploadRepo persists upload records. A record is queryable by its id
// immediately after CreateUpload returns, before any extraction happens.
type UploadRepo interface {
	CreateUpload(ctx context.Context, record *types.UploadRecord) (string, error)
	GetUpload(ctx context.Context, id string) (*types.UploadRecord, error)
	UpdateExtractedText(ctx context.Context, id string, text string) error
}

type uploadRepo struct {
	collection *mongo.Collection
}

func NewUploadRepo(collection *mongo.Collection) UploadRepo {
	return &uploadRepo{
		collection: collection,
	}
}

func (r *uploadRepo) CreateUpload(ctx context.Context, record *types.UploadRecord) (string, error) {
	record.CreatedAt = time.Now().Unix()
	res, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	record.ID = oid.Hex()
	return record.ID, nil
}

func (r *uploadRepo) GetUpload(ctx context.Context, id string) (*types.UploadRecord, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids behave like unknown ones
		return nil, types.ErrNotFound
	}
	var record types.UploadRecord
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// UpdateExtractedText sets the text field in place. Last writer wins, no
// optimistic-concurrency check.
func (r *uploadRepo) UpdateExtractedText(ctx context.Context, id string, text string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrNotFound
	}
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"extracted_text": text}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
