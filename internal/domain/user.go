package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish regular users from bucket curators
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the owner of a 75-day challenge. Every log, sheet and problem
// belongs to exactly one user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`

	// StartDate anchors the challenge window (stored as a calendar day, see Day).
	StartDate    time.Time `bson:"startDate" json:"startDate"`
	TargetWeight *float64  `bson:"targetWeight,omitempty" json:"targetWeight,omitempty"`

	LeetCodeHandle   string `bson:"leetcodeHandle,omitempty" json:"leetcodeHandle,omitempty"`
	CodeChefHandle   string `bson:"codechefHandle,omitempty" json:"codechefHandle,omitempty"`
	CodeforcesHandle string `bson:"codeforcesHandle,omitempty" json:"codeforcesHandle,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate carries the optional profile fields a user may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name             *string
	LeetCodeHandle   *string
	CodeChefHandle   *string
	CodeforcesHandle *string
	TargetWeight     *float64
	StartDate        *time.Time
}

// Apply overlays the non-nil fields onto the user.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil && *p.Name != "" {
		u.Name = *p.Name
	}
	if p.LeetCodeHandle != nil {
		u.LeetCodeHandle = *p.LeetCodeHandle
	}
	if p.CodeChefHandle != nil {
		u.CodeChefHandle = *p.CodeChefHandle
	}
	if p.CodeforcesHandle != nil {
		u.CodeforcesHandle = *p.CodeforcesHandle
	}
	if p.TargetWeight != nil {
		u.TargetWeight = p.TargetWeight
	}
	if p.StartDate != nil {
		u.StartDate = Day(*p.StartDate)
	}
}
