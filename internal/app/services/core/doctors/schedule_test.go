package doctors

import (
	"testing"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateSchedules(t *testing.T) {
	clinicID := primitive.NewObjectID()
	otherClinicID := primitive.NewObjectID()

	clinicsByID := map[primitive.ObjectID]models.Clinic{
		clinicID: {
			ID:            clinicID,
			AvailableDays: []string{"Monday", "Tuesday", "Wednesday"},
		},
		otherClinicID: {
			ID:            otherClinicID,
			AvailableDays: []string{constvars.WeekdayAll},
		},
	}

	t.Run("General doctor only needs valid day names", func(t *testing.T) {
		entries := []models.ScheduleEntry{
			{Clinic: clinicID, Days: []string{"Monday", "Friday"}},
		}
		err := ValidateSchedules(constvars.SpecializationGeneral, nil, entries, clinicsByID)
		assert.NoError(t, err)
	})

	t.Run("Empty day set fails", func(t *testing.T) {
		entries := []models.ScheduleEntry{{Clinic: clinicID, Days: nil}}
		err := ValidateSchedules(constvars.SpecializationGeneral, nil, entries, clinicsByID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Invalid day name fails", func(t *testing.T) {
		entries := []models.ScheduleEntry{{Clinic: clinicID, Days: []string{"Funday"}}}
		err := ValidateSchedules(constvars.SpecializationGeneral, nil, entries, clinicsByID)
		assert.Error(t, err)
	})

	t.Run("Specialized doctor with compatible schedule passes", func(t *testing.T) {
		entries := []models.ScheduleEntry{
			{Clinic: clinicID, Days: []string{"Monday", "Tuesday"}, StartTime: "09:00", EndTime: "17:00"},
		}
		err := ValidateSchedules(constvars.SpecializationSpecialized, []primitive.ObjectID{clinicID}, entries, clinicsByID)
		assert.NoError(t, err)
	})

	t.Run("Schedule clinic outside the doctor's clinics fails", func(t *testing.T) {
		entries := []models.ScheduleEntry{
			{Clinic: otherClinicID, Days: []string{"Monday"}, StartTime: "09:00", EndTime: "17:00"},
		}
		err := ValidateSchedules(constvars.SpecializationSpecialized, []primitive.ObjectID{clinicID}, entries, clinicsByID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientUnlinkedClinic, customErr.ClientMessage)
	})

	t.Run("Days outside the clinic's available days fail", func(t *testing.T) {
		entries := []models.ScheduleEntry{
			{Clinic: clinicID, Days: []string{"Saturday"}, StartTime: "09:00", EndTime: "17:00"},
		}
		err := ValidateSchedules(constvars.SpecializationSpecialized, []primitive.ObjectID{clinicID}, entries, clinicsByID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientIncompatibleDays, customErr.ClientMessage)
	})

	t.Run("Clinic open every day accepts any weekday", func(t *testing.T) {
		entries := []models.ScheduleEntry{
			{Clinic: otherClinicID, Days: []string{"Saturday", "Sunday"}, StartTime: "10:00", EndTime: "14:00"},
		}
		err := ValidateSchedules(constvars.SpecializationSpecialized, []primitive.ObjectID{otherClinicID}, entries, clinicsByID)
		assert.NoError(t, err)
	})

	t.Run("Malformed working hours fail for specialized doctors", func(t *testing.T) {
		entries := []models.ScheduleEntry{
			{Clinic: clinicID, Days: []string{"Monday"}, StartTime: "9:00", EndTime: "17:00"},
		}
		err := ValidateSchedules(constvars.SpecializationSpecialized, []primitive.ObjectID{clinicID}, entries, clinicsByID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidTimeFormat, customErr.ClientMessage)
	})
}
