package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
)

// ErrNotFound is returned when a record or user does not exist. Callers are
// expected to degrade (sentinel identity, empty detail view) rather than fail.
var ErrNotFound = errors.New("not found")

// Update writes only whitelisted fields. Identity and creation fields
// (userId, userEmail, createdAt, the id itself) are set exactly once at
// creation, and fields belonging to the other record shape are dropped so an
// event can never acquire contentImageUrls or a blog a date.
var sharedMutableFields = map[string]bool{
	"title":    true,
	"content":  true,
	"font":     true,
	"imageUrl": true,
}

var kindMutableFields = map[models.Kind]map[string]bool{
	models.KindBlog: {
		"contentImageUrls": true,
	},
	models.KindEvent: {
		"link":     true,
		"date":     true,
		"location": true,
	},
}

// RecordStore is the single adapter over the blog/event/user collections.
// One instance is constructed at startup and shared process-wide.
type RecordStore struct {
	db *mongo.Database
}

// Records is the process-wide store handle, set by Init in main.
var Records *RecordStore

func Init(db *mongo.Database) *RecordStore {
	Records = &RecordStore{db: db}
	return Records
}

func New(db *mongo.Database) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) collection(kind models.Kind) *mongo.Collection {
	return s.db.Collection(string(kind))
}

// Create assigns createdAt at call time, persists the record and returns the
// generated id. It never touches an existing document.
func (s *RecordStore) Create(ctx context.Context, rec *models.Record) (string, error) {
	rec.ID = primitive.NilObjectID
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	res, err := s.collection(rec.Kind).InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store returned unexpected id type")
	}
	rec.ID = oid
	return oid.Hex(), nil
}

// GetByID fetches one record, or ErrNotFound.
func (s *RecordStore) GetByID(ctx context.Context, kind models.Kind, id string) (*models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var rec models.Record
	err = s.collection(kind).FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec.Kind = kind
	return &rec, nil
}

// ListAll returns every record of a kind, in store order. Callers that need
// chronological order must sort explicitly.
func (s *RecordStore) ListAll(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	return s.list(ctx, kind, bson.M{})
}

// ListByOwner returns the records whose userId matches exactly.
func (s *RecordStore) ListByOwner(ctx context.Context, kind models.Kind, userID string) ([]models.Record, error) {
	return s.list(ctx, kind, bson.M{"userId": userID})
}

// ListByField runs an exact-match equality query on a single field.
func (s *RecordStore) ListByField(ctx context.Context, kind models.Kind, field, value string) ([]models.Record, error) {
	return s.list(ctx, kind, bson.M{field: value})
}

func (s *RecordStore) list(ctx context.Context, kind models.Kind, filter bson.M) ([]models.Record, error) {
	cursor, err := s.collection(kind).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Kind = kind
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// Update merges the given fields into an existing record. The payload is
// reduced to the kind's mutable fields before the write, so a caller-supplied
// userId, createdAt or off-shape field is silently ignored. Updating a
// missing record returns ErrNotFound.
func (s *RecordStore) Update(ctx context.Context, kind models.Kind, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	clean := sanitizeUpdate(kind, fields)
	if len(clean) == 0 {
		return nil
	}

	res, err := s.collection(kind).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": clean})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record. Deleting an id that is already gone is success,
// so callers never retry on double delete.
func (s *RecordStore) Delete(ctx context.Context, kind models.Kind, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.collection(kind).DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func sanitizeUpdate(kind models.Kind, fields map[string]interface{}) bson.M {
	clean := bson.M{}
	for k, v := range fields {
		if sharedMutableFields[k] || kindMutableFields[kind][k] {
			clean[k] = v
		}
	}
	return clean
}
