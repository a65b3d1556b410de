package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/thread"
)

const threadCollection = "threads"

// ThreadRepository stores threads as single documents embedding their
// message arrays. Save replaces the whole document, so a turn's two
// appends land in one write. Concurrent saves to the same id are
// last-write-wins; there is no per-thread locking.
type ThreadRepository struct {
	coll *mongo.Collection
}

func NewThreadRepository(client *mongo.Client, database string) *ThreadRepository {
	return &ThreadRepository{coll: client.Database(database).Collection(threadCollection)}
}

func (r *ThreadRepository) Get(ctx context.Context, id string) (*thread.Thread, error) {
	var th thread.Thread
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&th)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.New(apperror.NotFound, "thread not found")
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.Store, "find thread", err)
	}
	return &th, nil
}

func (r *ThreadRepository) Save(ctx context.Context, t *thread.Thread) error {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t, options.Replace().SetUpsert(true))
	if err != nil {
		return apperror.Wrap(apperror.Store, "save thread", err)
	}
	return nil
}

func (r *ThreadRepository) List(ctx context.Context) ([]thread.Thread, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, apperror.Wrap(apperror.Store, "list threads", err)
	}
	defer cur.Close(ctx)

	threads := []thread.Thread{}
	if err := cur.All(ctx, &threads); err != nil {
		return nil, apperror.Wrap(apperror.Store, "decode threads", err)
	}
	return threads, nil
}

func (r *ThreadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Wrap(apperror.Store, "delete thread", err)
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.NotFound, "thread not found")
	}
	return nil
}
