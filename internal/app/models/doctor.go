package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Name              LocalizedText        `bson:"name"`
	Email             string               `bson:"email"`
	Phone             string               `bson:"phone,omitempty"`
	Address           LocalizedText        `bson:"address"`
	Status            string               `bson:"status"`
	Specialization    string               `bson:"specialization"`
	Specialties       []LocalizedText      `bson:"specialties,omitempty"`
	SpecialWords      []LocalizedText      `bson:"specialWords,omitempty"`
	Bio               LocalizedText        `bson:"bio,omitempty"`
	YearsOfExperience int                  `bson:"yearsOfExperience"`
	Clinics           []primitive.ObjectID `bson:"clinics"`
	Schedules         []ScheduleEntry      `bson:"schedules,omitempty"`
	ImageURL          string               `bson:"imageUrl,omitempty"`
	ImageKey          string               `bson:"imageKey,omitempty"`
	TimeModel         `bson:",inline"`
}

// ScheduleEntry describes the days and working hours a doctor keeps at
// one clinic. Days never contains "All"; it is expanded on write. The
// clinic reference stays empty on general-practice entries.
type ScheduleEntry struct {
	Clinic    primitive.ObjectID `bson:"clinic,omitempty"`
	Days      []string           `bson:"days"`
	StartTime string             `bson:"startTime,omitempty"`
	EndTime   string             `bson:"endTime,omitempty"`
}
