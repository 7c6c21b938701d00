package enquiry

import (
	"context"
	"strings"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/repository"
)

type EnquiryUseCase interface {
	Create(ctx context.Context, input CreateEnquiryInput) (*domain.Enquiry, error)
}

type CreateEnquiryInput struct {
	Name    string
	Email   string
	Message string
}

type EnquiryService struct {
	enquiries repository.EnquiryRepository
}

func NewEnquiryService(enquiries repository.EnquiryRepository) *EnquiryService {
	return &EnquiryService{enquiries: enquiries}
}

// Create stores a contact form submission with status new.
func (s *EnquiryService) Create(ctx context.Context, input CreateEnquiryInput) (*domain.Enquiry, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	email := strings.TrimSpace(input.Email)

	if name == "" {
		return nil, domain.ValidationError{Field: "name", Msg: "Name is required"}
	}
	if !domain.ValidEmail(email) {
		return nil, domain.ValidationError{Field: "email", Msg: "Invalid email address"}
	}
	if message == "" {
		return nil, domain.ValidationError{Field: "message", Msg: "Message is required"}
	}

	enquiry := &domain.Enquiry{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  domain.EnquiryStatusNew,
	}
	if err := s.enquiries.Create(ctx, enquiry); err != nil {
		return nil, err
	}
	return enquiry, nil
}

var _ EnquiryUseCase = (*EnquiryService)(nil)
