package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account types offered by the form. The server stores whatever non-empty
// string it receives; the enumeration is a UI constraint only.
const (
	AccountTypeTeamMember     = "Team Member"
	AccountTypeTeamLeader     = "Team Leader"
	AccountTypeProjectManager = "Project Manager"
)

// Record represents one person/account entry
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Country       string             `bson:"country" json:"country"`
	AccountType   string             `bson:"accountType" json:"accountType"`
	Username      string             `bson:"username" json:"username"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	PhotoURL      *string            `bson:"photoUrl,omitempty" json:"photoUrl"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecordFields holds the mutable fields of a record, i.e. everything the
// form submits. Updates replace all of these at once.
type RecordFields struct {
	Country       string  `bson:"country" json:"country"`
	AccountType   string  `bson:"accountType" json:"accountType"`
	Username      string  `bson:"username" json:"username"`
	FirstName     string  `bson:"firstName" json:"firstName"`
	LastName      string  `bson:"lastName" json:"lastName"`
	Email         string  `bson:"email" json:"email"`
	ContactNumber string  `bson:"contactNumber" json:"contactNumber"`
	PhotoURL      *string `bson:"photoUrl" json:"photoUrl"`
}
