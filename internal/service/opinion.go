package service

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"what-to-watch-backend/internal/database/models"
	apperrors "what-to-watch-backend/internal/errors"
	"what-to-watch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// OpinionService provides opinion-related business logic
type OpinionService struct {
	repo      repository.OpinionRepositoryInterface
	validator *validator.Validate
}

// Ensure OpinionService implements OpinionServiceInterface
var _ OpinionServiceInterface = (*OpinionService)(nil)

// NewOpinionService creates a new OpinionService
func NewOpinionService(repo repository.OpinionRepositoryInterface, validator *validator.Validate) *OpinionService {
	return &OpinionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOpinionRequest represents the request to create an opinion
type CreateOpinionRequest struct {
	Title   string  `json:"title" validate:"required,max=128"`
	Text    string  `json:"text" validate:"required"`
	Source  *string `json:"source" validate:"omitempty,max=256"`
	AddedBy *string `json:"added_by" validate:"omitempty,max=64"`
}

// UpdateOpinionRequest represents a partial update. Only the fields present
// in the JSON body are overwritten; unknown keys are dropped at decode time,
// so id and timestamp can never be set through this path.
type UpdateOpinionRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=128"`
	Text    *string `json:"text" validate:"omitempty,min=1"`
	Source  *string `json:"source" validate:"omitempty,max=256"`
	AddedBy *string `json:"added_by" validate:"omitempty,max=64"`
}

// OpinionResponse represents a single opinion in API responses
type OpinionResponse struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	Source    *string `json:"source"`
	Timestamp *string `json:"timestamp"`
	AddedBy   *string `json:"added_by"`
}

// Create validates the request, rejects duplicate text and persists a new
// opinion. The store assigns id and timestamp.
func (s *OpinionService) Create(req *CreateOpinionRequest) (*OpinionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err, "insufficient data to create an opinion")
	}

	exists, err := s.repo.ExistsByText(req.Text, 0)
	if err != nil {
		return nil, apperrors.NewStorageError("check opinion text uniqueness", err)
	}
	if exists {
		return nil, apperrors.ErrOpinionTextExists
	}

	opinion := &models.Opinion{
		Title:   req.Title,
		Text:    req.Text,
		Source:  req.Source,
		AddedBy: req.AddedBy,
	}
	if err := s.repo.Create(opinion); err != nil {
		return nil, apperrors.NewStorageError("add the opinion", err)
	}

	return s.toResponse(opinion), nil
}

// GetByID retrieves an opinion by id
func (s *OpinionService) GetByID(id uint) (*OpinionResponse, error) {
	opinion, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpinionNotFound
		}
		return nil, apperrors.NewStorageError("get the opinion", err)
	}
	return s.toResponse(opinion), nil
}

// List retrieves all opinions
func (s *OpinionService) List() ([]OpinionResponse, error) {
	opinions, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStorageError("list opinions", err)
	}

	responses := make([]OpinionResponse, len(opinions))
	for i := range opinions {
		responses[i] = *s.toResponse(&opinions[i])
	}
	return responses, nil
}

// Update applies a partial update to an existing opinion. A text value
// colliding with a different row is rejected before anything is written.
func (s *OpinionService) Update(id uint, req *UpdateOpinionRequest) (*OpinionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err, "insufficient data to update the opinion")
	}

	opinion, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOpinionNotFound
		}
		return nil, apperrors.NewStorageError("get the opinion", err)
	}

	if req.Text != nil && *req.Text != opinion.Text {
		exists, err := s.repo.ExistsByText(*req.Text, opinion.ID)
		if err != nil {
			return nil, apperrors.NewStorageError("check opinion text uniqueness", err)
		}
		if exists {
			return nil, apperrors.ErrOpinionTextExists
		}
	}

	opinion.Apply(models.OpinionFields{
		Title:   req.Title,
		Text:    req.Text,
		Source:  req.Source,
		AddedBy: req.AddedBy,
	})

	if err := s.repo.Update(opinion); err != nil {
		return nil, apperrors.NewStorageError("update the opinion", err)
	}

	return s.toResponse(opinion), nil
}

// Delete removes an opinion by id
func (s *OpinionService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOpinionNotFound
		}
		return apperrors.NewStorageError("delete the opinion", err)
	}
	return nil
}

// PickRandom returns a uniformly chosen opinion, or ErrNoOpinions when the
// store is empty. A count/fetch race that leaves the drawn offset out of
// range is reported as absence as well, not as an internal error.
func (s *OpinionService) PickRandom() (*OpinionResponse, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, apperrors.NewStorageError("count opinions", err)
	}
	if total == 0 {
		return nil, apperrors.ErrNoOpinions
	}

	offset := rand.IntN(int(total))
	opinion, err := s.repo.GetAtOffset(offset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoOpinions
		}
		return nil, apperrors.NewStorageError("get a random opinion", err)
	}

	return s.toResponse(opinion), nil
}

// toResponse converts an Opinion model to its API representation
func (s *OpinionService) toResponse(opinion *models.Opinion) *OpinionResponse {
	var timestamp *string
	if !opinion.Timestamp.IsZero() {
		formatted := opinion.Timestamp.UTC().Format(time.RFC3339)
		timestamp = &formatted
	}
	return &OpinionResponse{
		ID:        opinion.ID,
		Title:     opinion.Title,
		Text:      opinion.Text,
		Source:    opinion.Source,
		Timestamp: timestamp,
		AddedBy:   opinion.AddedBy,
	}
}

// translateValidationError maps validator failures onto the error taxonomy:
// a missing required field gets the fixed "insufficient data" message, any
// other constraint breach keeps its field context.
func translateValidationError(err error, requiredMessage string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return apperrors.NewAPIError(requiredMessage, http.StatusBadRequest)
			}
		}
		if len(verrs) > 0 {
			fe := verrs[0]
			return apperrors.NewValidationError(fe.Field(), "failed on the '"+fe.Tag()+"' constraint")
		}
	}
	return apperrors.NewValidationError("", err.Error())
}
