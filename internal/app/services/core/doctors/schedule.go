package doctors

import (
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateSchedules checks every schedule entry against the doctor's
// clinic list and the clinics' availability.
//
// Entries are validated after "All" expansion, so Days holds concrete
// weekday names. General doctors only need valid day sets; specialized
// doctors must reference a linked clinic, stay within the clinic's
// available days, and carry well-formed working hours.
func ValidateSchedules(
	specialization string,
	doctorClinics []primitive.ObjectID,
	entries []models.ScheduleEntry,
	clinicsByID map[primitive.ObjectID]models.Clinic,
) error {
	linked := make(map[primitive.ObjectID]struct{}, len(doctorClinics))
	for _, clinicID := range doctorClinics {
		linked[clinicID] = struct{}{}
	}

	for _, entry := range entries {
		if len(entry.Days) == 0 {
			return exceptions.ErrInvalidScheduleDays(nil)
		}
		for _, day := range entry.Days {
			if !utils.IsValidWeekday(day) {
				return exceptions.ErrInvalidScheduleDays(nil)
			}
		}

		if specialization != constvars.SpecializationSpecialized {
			continue
		}

		if _, ok := linked[entry.Clinic]; !ok {
			return exceptions.ErrUnlinkedScheduleClinic(nil)
		}
		clinic, ok := clinicsByID[entry.Clinic]
		if !ok {
			return exceptions.ErrUnlinkedScheduleClinic(nil)
		}

		if !utils.ContainsAllDays(clinic.AvailableDays) && !utils.IsDaySubset(entry.Days, clinic.AvailableDays) {
			return exceptions.ErrIncompatibleScheduleDays(nil)
		}

		if !utils.IsValidTime(entry.StartTime) || !utils.IsValidTime(entry.EndTime) {
			return exceptions.ErrInvalidScheduleTime(nil)
		}
	}
	return nil
}
