package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

func ValidApplicationStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Job is the listing snapshot embedded into an application at apply
// time, so the application survives the listing changing or going away.
type Job struct {
	ID              string   `bson:"id,omitempty" json:"id,omitempty"`
	Title           string   `bson:"title,omitempty" json:"title,omitempty"`
	Company         string   `bson:"company,omitempty" json:"company,omitempty"`
	Location        string   `bson:"location,omitempty" json:"location,omitempty"`
	Type            string   `bson:"type,omitempty" json:"type,omitempty"`
	Salary          string   `bson:"salary,omitempty" json:"salary,omitempty"`
	Description     string   `bson:"description,omitempty" json:"description,omitempty"`
	Requirements    []string `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Benefits        []string `bson:"benefits,omitempty" json:"benefits,omitempty"`
	PostedDate      string   `bson:"postedDate,omitempty" json:"postedDate,omitempty"`
	Logo            string   `bson:"logo,omitempty" json:"logo,omitempty"`
	IsRemote        bool     `bson:"isRemote,omitempty" json:"isRemote,omitempty"`
	ExperienceLevel string   `bson:"experienceLevel,omitempty" json:"experienceLevel,omitempty"`
	Category        string   `bson:"category,omitempty" json:"category,omitempty"`
	Applicants      int      `bson:"applicants,omitempty" json:"applicants,omitempty"`
}

type Application struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string        `bson:"userId" json:"userId"`
	JobID       string        `bson:"jobId" json:"jobId"`
	Status      string        `bson:"status" json:"status"`
	AppliedDate time.Time     `bson:"appliedDate" json:"appliedDate"`
	Job         Job           `bson:"job" json:"job"`
}
