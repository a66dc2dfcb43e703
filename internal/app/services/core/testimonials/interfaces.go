package testimonials

import (
	"context"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
)

type TestimonialUsecase interface {
	GetAllTestimonials(ctx context.Context, page, pageSize int) ([]responses.Testimonial, int, error)
	GetTestimonialByID(ctx context.Context, testimonialID string) (*responses.Testimonial, error)
	CreateTestimonial(ctx context.Context, request *requests.CreateTestimonial) (*responses.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonialID string, request *requests.UpdateTestimonial) (*responses.Testimonial, error)
	DeleteTestimonial(ctx context.Context, testimonialID string) error
}

type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, testimonialModel *models.Testimonial) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Testimonial, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, testimonialID string) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonialModel *models.Testimonial) error
	DeleteByID(ctx context.Context, testimonialID string) error
}
