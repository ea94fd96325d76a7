package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClinicRecord is one entry of the static clinic directory. Records are
// loaded once at startup and never mutated afterwards.
type ClinicRecord struct {
    ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    Name    string             `bson:"name" json:"name"`
    Address string             `bson:"address" json:"address"`
    Area    string             `bson:"area" json:"area"`
    City    string             `bson:"city" json:"city"`
    Pincode string             `bson:"pincode" json:"pincode"`
    Phone   string             `bson:"phone" json:"phone"`
    Timing  string             `bson:"timing" json:"timing"`
}
