package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a CareerHub account document. The followers/following arrays
// hold hex user ids with set semantics enforced at write time, and the
// messages array is an append-only log of every message the user sent
// or received.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	CareerHubID  string        `bson:"careerHubId" json:"careerHubId"`
	Username     string        `bson:"username" json:"username"`
	Password     string        `bson:"password,omitempty" json:"-"`

	AccountPrivacy string `bson:"accountPrivacy,omitempty" json:"accountPrivacy,omitempty"`
	// usernameStatus is a client-side annotation, stored as-is and
	// never required to stay consistent with the username itself.
	UsernameStatus string `bson:"usernameStatus,omitempty" json:"usernameStatus,omitempty"`

	Followers []string  `bson:"followers" json:"followers"`
	Following []string  `bson:"following" json:"following"`
	Messages  []Message `bson:"messages" json:"messages"`

	Photo       string   `bson:"photo,omitempty" json:"photo,omitempty"`
	BannerImage string   `bson:"bannerImage,omitempty" json:"bannerImage,omitempty"`
	Gender      string   `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth string   `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Biography   string   `bson:"biography,omitempty" json:"biography,omitempty"`
	Skills      []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience  string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Education   string   `bson:"education,omitempty" json:"education,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	State       string   `bson:"state,omitempty" json:"state,omitempty"`
	Country     string   `bson:"country,omitempty" json:"country,omitempty"`
	Phone       string   `bson:"phone,omitempty" json:"phone,omitempty"`
	GithubURL   string   `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LinkedinURL string   `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	TelegramID  string   `bson:"telegramId,omitempty" json:"telegramId,omitempty"`
	InstagramID string   `bson:"instagramId,omitempty" json:"instagramId,omitempty"`
	DiscordID   string   `bson:"discordId,omitempty" json:"discordId,omitempty"`
}

// Message is embedded in the user document, never a collection of its
// own. senderUsername is a snapshot taken at send time and does not
// follow later renames. The copy in the sender's log and the copy in
// the receiver's log share no identity.
type Message struct {
	SenderID       string    `bson:"senderId" json:"senderId"`
	SenderUsername string    `bson:"senderUsername" json:"senderUsername"`
	Message        string    `bson:"message" json:"message"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
}
