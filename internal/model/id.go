package model

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID identifies a stored document. The Mongo backend stores it as an ObjectID
// and the SQL backend as a UUID string; the API always renders it as a string.
type ID string

// String returns the textual form of the id.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset. The bson encoder uses it for omitempty.
func (id ID) IsZero() bool {
	return id == ""
}

// ObjectID parses the id as a Mongo ObjectID.
func (id ID) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(string(id))
}

// UUID parses the id as a UUID.
func (id ID) UUID() (uuid.UUID, error) {
	return uuid.Parse(string(id))
}

// NewObjectID returns a fresh ObjectID-backed id.
func NewObjectID() ID {
	return ID(primitive.NewObjectID().Hex())
}

// NewUUID returns a fresh UUID-backed id.
func NewUUID() ID {
	return ID(uuid.New().String())
}

// MarshalBSONValue stores hex ids as ObjectIDs so documents written by other
// clients of the same collections keep matching.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue accepts ObjectID and string encoded ids.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		*id = ID(raw.ObjectID().Hex())
	case bsontype.String:
		*id = ID(raw.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		return fmt.Errorf("cannot decode %s into model.ID", t)
	}
	return nil
}
