package handlers

import (
	"net/http"
	"strconv"

	apperrors "what-to-watch-backend/internal/errors"
	"what-to-watch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OpinionHandler handles JSON API requests for opinions
type OpinionHandler struct {
	opinionService service.OpinionServiceInterface
}

// NewOpinionHandler creates a new opinion handler
func NewOpinionHandler(opinionService service.OpinionServiceInterface) *OpinionHandler {
	return &OpinionHandler{
		opinionService: opinionService,
	}
}

// MessageResponse represents a standard API error body
type MessageResponse struct {
	Message string `json:"message" example:"opinion not found"`
}

// respondError renders any handler-level failure as {"message": ...} with
// the status the error taxonomy assigns it (default 400).
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"message": err.Error()})
}

// opinionID parses the :id path parameter. Anything non-numeric is treated
// the same as an unknown id.
func opinionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.ErrOpinionNotFound)
		return 0, false
	}
	return uint(id), true
}

// GetOpinion handles GET /api/opinions/{id}/
// @Summary Get opinion by ID
// @Description Get a specific opinion by its numeric id
// @Tags opinions
// @Accept json
// @Produce json
// @Param id path int true "Opinion ID"
// @Success 200 {object} map[string]service.OpinionResponse "Successfully retrieved opinion"
// @Failure 404 {object} MessageResponse "Opinion not found"
// @Router /opinions/{id}/ [get]
func (h *OpinionHandler) GetOpinion(c *gin.Context) {
	id, ok := opinionID(c)
	if !ok {
		return
	}

	opinion, err := h.opinionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opinion": opinion})
}

// UpdateOpinion handles PATCH /api/opinions/{id}/
// @Summary Partially update an opinion
// @Description Overwrite only the fields present in the body; id and timestamp cannot be changed
// @Tags opinions
// @Accept json
// @Produce json
// @Param id path int true "Opinion ID"
// @Param opinion body service.UpdateOpinionRequest true "Fields to update"
// @Success 200 {object} map[string]service.OpinionResponse "Successfully updated opinion"
// @Failure 400 {object} MessageResponse "Invalid JSON body"
// @Failure 404 {object} MessageResponse "Opinion not found"
// @Failure 409 {object} MessageResponse "An opinion with this text already exists"
// @Failure 500 {object} MessageResponse "Database failure"
// @Router /opinions/{id}/ [patch]
func (h *OpinionHandler) UpdateOpinion(c *gin.Context) {
	id, ok := opinionID(c)
	if !ok {
		return
	}

	var req service.UpdateOpinionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewAPIError("invalid JSON body", http.StatusBadRequest))
		return
	}

	opinion, err := h.opinionService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opinion": opinion})
}

// DeleteOpinion handles DELETE /api/opinions/{id}/
// @Summary Delete an opinion
// @Description Remove an opinion by id
// @Tags opinions
// @Produce json
// @Param id path int true "Opinion ID"
// @Success 204 "Opinion deleted"
// @Failure 404 {object} MessageResponse "Opinion not found"
// @Failure 500 {object} MessageResponse "Database failure"
// @Router /opinions/{id}/ [delete]
func (h *OpinionHandler) DeleteOpinion(c *gin.Context) {
	id, ok := opinionID(c)
	if !ok {
		return
	}

	if err := h.opinionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOpinions handles GET /api/opinions/
// @Summary List all opinions
// @Description Get every stored opinion in insertion order
// @Tags opinions
// @Produce json
// @Success 200 {object} map[string][]service.OpinionResponse "Successfully retrieved opinions"
// @Failure 500 {object} MessageResponse "Database failure"
// @Router /opinions/ [get]
func (h *OpinionHandler) ListOpinions(c *gin.Context) {
	opinions, err := h.opinionService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opinions": opinions})
}

// CreateOpinion handles POST /api/opinions/
// @Summary Create a new opinion
// @Description Create an opinion; title and text are required, text must be unique
// @Tags opinions
// @Accept json
// @Produce json
// @Param opinion body service.CreateOpinionRequest true "Opinion data"
// @Success 201 {object} map[string]service.OpinionResponse "Successfully created opinion"
// @Failure 400 {object} MessageResponse "Missing title or text, or invalid JSON"
// @Failure 409 {object} MessageResponse "An opinion with this text already exists"
// @Failure 500 {object} MessageResponse "Database failure"
// @Router /opinions/ [post]
func (h *OpinionHandler) CreateOpinion(c *gin.Context) {
	var req service.CreateOpinionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewAPIError("invalid JSON body", http.StatusBadRequest))
		return
	}

	opinion, err := h.opinionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"opinion": opinion})
}

// GetRandomOpinion handles GET /api/get-random-opinion/
// @Summary Get a random opinion
// @Description Return a uniformly chosen opinion from the database
// @Tags opinions
// @Produce json
// @Success 200 {object} map[string]service.OpinionResponse "Successfully retrieved a random opinion"
// @Failure 404 {object} MessageResponse "There are no opinions in the database"
// @Router /get-random-opinion/ [get]
func (h *OpinionHandler) GetRandomOpinion(c *gin.Context) {
	opinion, err := h.opinionService.PickRandom()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opinion": opinion})
}
