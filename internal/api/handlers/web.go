package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	apperrors "what-to-watch-backend/internal/errors"
	"what-to-watch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageTemplates parses the embedded HTML pages for the browser-facing views
func PageTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// WebHandler serves the browser-facing pages: the random opinion home page,
// the submission form and the per-opinion detail view.
type WebHandler struct {
	opinionService service.OpinionServiceInterface
}

// NewWebHandler creates a new web handler
func NewWebHandler(opinionService service.OpinionServiceInterface) *WebHandler {
	return &WebHandler{
		opinionService: opinionService,
	}
}

// opinionFormData carries the submitted values back into the form together
// with per-field errors and the duplicate-text warning.
type opinionFormData struct {
	Title   string
	Text    string
	Source  string
	Errors  map[string]string
	Warning string
}

// Home handles GET / and shows a random opinion. An empty store gets the
// fixed "no opinions yet" page instead of an error.
func (h *WebHandler) Home(c *gin.Context) {
	opinion, err := h.opinionService.PickRandom()
	if err != nil {
		if errors.Is(err, apperrors.ErrNoOpinions) {
			c.HTML(http.StatusOK, "no_opinions.html", nil)
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "opinion.html", gin.H{"Opinion": opinion})
}

// AddOpinionForm handles GET /add and renders an empty submission form
func (h *WebHandler) AddOpinionForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_opinion.html", opinionFormData{})
}

// AddOpinionSubmit handles POST /add. Validation failures and duplicate text
// redisplay the form (still 200); success redirects to the new opinion's
// detail page.
func (h *WebHandler) AddOpinionSubmit(c *gin.Context) {
	form := opinionFormData{
		Title:  strings.TrimSpace(c.PostForm("title")),
		Text:   strings.TrimSpace(c.PostForm("text")),
		Source: strings.TrimSpace(c.PostForm("source")),
		Errors: make(map[string]string),
	}

	if form.Title == "" {
		form.Errors["title"] = "Title is required"
	} else if len(form.Title) > 128 {
		form.Errors["title"] = "Title must be at most 128 characters"
	}
	if form.Text == "" {
		form.Errors["text"] = "Text is required"
	}
	if len(form.Source) > 256 {
		form.Errors["source"] = "Source must be at most 256 characters"
	}

	if len(form.Errors) > 0 {
		c.HTML(http.StatusOK, "add_opinion.html", form)
		return
	}

	req := service.CreateOpinionRequest{
		Title: form.Title,
		Text:  form.Text,
	}
	if form.Source != "" {
		req.Source = &form.Source
	}

	opinion, err := h.opinionService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOpinionTextExists) {
			form.Warning = "An opinion with this text already exists"
			c.HTML(http.StatusOK, "add_opinion.html", form)
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusFound, "/opinions/"+strconv.FormatUint(uint64(opinion.ID), 10))
}

// OpinionDetail handles GET /opinions/:id
func (h *WebHandler) OpinionDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", nil)
		return
	}

	opinion, err := h.opinionService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrOpinionNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", nil)
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "opinion.html", gin.H{"Opinion": opinion})
}
