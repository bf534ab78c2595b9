package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinWeightKg  = 20.0
	MaxWeightKg  = 300.0
	MinBodyFatPc = 1.0
	MaxBodyFatPc = 50.0
)

// Measurements are optional body measurements in centimetres.
type Measurements struct {
	Chest  *float64 `bson:"chest" json:"chest"`
	Waist  *float64 `bson:"waist" json:"waist"`
	Hips   *float64 `bson:"hips" json:"hips"`
	Arms   *float64 `bson:"arms" json:"arms"`
	Thighs *float64 `bson:"thighs" json:"thighs"`
}

// Merge overlays the non-nil measurements from other.
func (m *Measurements) Merge(other *Measurements) {
	if other == nil {
		return
	}
	setFloatPtr(&m.Chest, other.Chest)
	setFloatPtr(&m.Waist, other.Waist)
	setFloatPtr(&m.Hips, other.Hips)
	setFloatPtr(&m.Arms, other.Arms)
	setFloatPtr(&m.Thighs, other.Thighs)
}

// PhysiqueLog is a weigh-in for one calendar day, on a timeline independent
// of the daily logs. (UserID, Date) is unique.
type PhysiqueLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         time.Time          `bson:"date" json:"date"`
	Weight       float64            `bson:"weight" json:"weight"`
	BodyFat      *float64           `bson:"bodyFat" json:"bodyFat"`
	Measurements Measurements       `bson:"measurements" json:"measurements"`
	WeekNumber   int                `bson:"weekNumber" json:"weekNumber"` // 1..11
	Notes        string             `bson:"notes" json:"notes"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *PhysiqueLog) Validate() error {
	if p.UserID == primitive.NilObjectID {
		return invalid("userId", "is required")
	}
	if p.Date.IsZero() {
		return invalid("date", "is required")
	}
	if p.Weight < MinWeightKg || p.Weight > MaxWeightKg {
		return invalid("weight", "must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg)
	}
	if p.BodyFat != nil && (*p.BodyFat < MinBodyFatPc || *p.BodyFat > MaxBodyFatPc) {
		return invalid("bodyFat", "must be between %.0f and %.0f percent", MinBodyFatPc, MaxBodyFatPc)
	}
	return nil
}
