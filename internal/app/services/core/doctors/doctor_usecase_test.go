package doctors

import (
	"testing"

	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildScheduleEntries(t *testing.T) {
	t.Run("Clinic-less entry survives for general schedules", func(t *testing.T) {
		entries := []requests.ScheduleEntry{
			{Days: []string{constvars.WeekdayAll}},
		}

		schedules, err := buildScheduleEntries(entries)

		assert.NoError(t, err)
		assert.Len(t, schedules, 1)
		assert.True(t, schedules[0].Clinic.IsZero())
		assert.Equal(t, constvars.Weekdays, schedules[0].Days)
	})

	t.Run("Clinic reference is converted when present", func(t *testing.T) {
		clinicID := primitive.NewObjectID()
		entries := []requests.ScheduleEntry{
			{Clinic: clinicID.Hex(), Days: []string{"Monday"}, StartTime: "09:00", EndTime: "17:00"},
		}

		schedules, err := buildScheduleEntries(entries)

		assert.NoError(t, err)
		assert.Equal(t, clinicID, schedules[0].Clinic)
	})

	t.Run("Malformed clinic reference fails", func(t *testing.T) {
		entries := []requests.ScheduleEntry{
			{Clinic: "not-a-hex-string-but-24ch", Days: []string{"Monday"}},
		}

		_, err := buildScheduleEntries(entries)

		assert.Error(t, err)
	})
}

func TestCreateDoctorRequestValidation(t *testing.T) {
	newGeneralRequest := func() *requests.CreateDoctor {
		return &requests.CreateDoctor{
			Name:           "د. أحمد الزهراني",
			Email:          "ahmed@example.com",
			Address:        "الرياض، حي الملقا",
			Specialization: constvars.SpecializationGeneral,
			SpecialWords:   []string{"كشف عام"},
			Clinics:        []string{primitive.NewObjectID().Hex()},
			Schedules: []requests.ScheduleEntry{
				{Days: []string{"Monday", "Wednesday"}},
			},
		}
	}

	t.Run("General doctor with a clinic-less schedule entry is accepted", func(t *testing.T) {
		err := utils.ValidateStruct(newGeneralRequest())
		assert.NoError(t, err)
	})

	t.Run("Schedule clinic must be a full hex string when present", func(t *testing.T) {
		request := newGeneralRequest()
		request.Schedules[0].Clinic = "abc"

		err := utils.ValidateStruct(request)
		assert.Error(t, err)
	})

	t.Run("Special words are required", func(t *testing.T) {
		request := newGeneralRequest()
		request.SpecialWords = nil

		err := utils.ValidateStruct(request)
		assert.Error(t, err)
	})
}
