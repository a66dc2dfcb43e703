package testimonials

import (
	"context"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testimonialUsecase struct {
	TestimonialRepository TestimonialRepository
}

func NewTestimonialUsecase(testimonialRepository TestimonialRepository) TestimonialUsecase {
	return &testimonialUsecase{
		TestimonialRepository: testimonialRepository,
	}
}

func (uc *testimonialUsecase) GetAllTestimonials(ctx context.Context, page, pageSize int) ([]responses.Testimonial, int, error) {
	testimonialsList, err := uc.TestimonialRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.TestimonialRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Testimonial, 0, len(testimonialsList))
	for i := range testimonialsList {
		result = append(result, *buildTestimonialResponse(&testimonialsList[i]))
	}
	return result, int(total), nil
}

func (uc *testimonialUsecase) GetTestimonialByID(ctx context.Context, testimonialID string) (*responses.Testimonial, error) {
	testimonial, err := uc.TestimonialRepository.FindByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, exceptions.ErrTestimonialNotFound(nil)
	}
	return buildTestimonialResponse(testimonial), nil
}

func (uc *testimonialUsecase) CreateTestimonial(ctx context.Context, request *requests.CreateTestimonial) (*responses.Testimonial, error) {
	now := time.Now()
	testimonialModel := &models.Testimonial{
		Name:     request.Name,
		JobTitle: request.JobTitle,
		Text:     request.Text,
		Rating:   request.Rating,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	testimonialID, err := uc.TestimonialRepository.CreateTestimonial(ctx, testimonialModel)
	if err != nil {
		return nil, err
	}

	objectID, err := primitive.ObjectIDFromHex(testimonialID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	testimonialModel.ID = objectID

	return buildTestimonialResponse(testimonialModel), nil
}

func (uc *testimonialUsecase) UpdateTestimonial(ctx context.Context, testimonialID string, request *requests.UpdateTestimonial) (*responses.Testimonial, error) {
	testimonial, err := uc.TestimonialRepository.FindByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, exceptions.ErrTestimonialNotFound(nil)
	}

	if request.Name != "" {
		testimonial.Name = request.Name
	}
	if request.JobTitle != "" {
		testimonial.JobTitle = request.JobTitle
	}
	if request.Text != "" {
		testimonial.Text = request.Text
	}
	if request.Rating != nil {
		testimonial.Rating = *request.Rating
	}

	testimonial.UpdatedAt = time.Now()
	if err := uc.TestimonialRepository.UpdateTestimonial(ctx, testimonial); err != nil {
		return nil, err
	}

	return buildTestimonialResponse(testimonial), nil
}

func (uc *testimonialUsecase) DeleteTestimonial(ctx context.Context, testimonialID string) error {
	testimonial, err := uc.TestimonialRepository.FindByID(ctx, testimonialID)
	if err != nil {
		return err
	}
	if testimonial == nil {
		return exceptions.ErrTestimonialNotFound(nil)
	}
	return uc.TestimonialRepository.DeleteByID(ctx, testimonialID)
}

func buildTestimonialResponse(testimonial *models.Testimonial) *responses.Testimonial {
	return &responses.Testimonial{
		ID:        testimonial.ID.Hex(),
		Name:      testimonial.Name,
		JobTitle:  testimonial.JobTitle,
		Text:      testimonial.Text,
		Rating:    testimonial.Rating,
		CreatedAt: testimonial.CreatedAt,
	}
}
