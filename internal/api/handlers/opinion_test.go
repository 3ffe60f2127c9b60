package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"what-to-watch-backend/internal/api/routes"
	"what-to-watch-backend/internal/service"
	"what-to-watch-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type opinionEnvelope struct {
	Opinion service.OpinionResponse `json:"opinion"`
}

type opinionsEnvelope struct {
	Opinions []service.OpinionResponse `json:"opinions"`
}

// OpinionAPITestSuite exercises the JSON API end to end: real router, real
// service and repository over an in-memory database.
type OpinionAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	httpSuite *testutils.HTTPTestSuite
}

func (s *OpinionAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.db = testutils.SetupTestDB(s.T())
	s.httpSuite = testutils.SetupHTTPTest(routes.SetupRoutes(s.db, testutils.TestConfig()))
}

func (s *OpinionAPITestSuite) SetupTest() {
	testutils.CleanTestDB(s.db)
}

func (s *OpinionAPITestSuite) createOpinion(title, text string) service.OpinionResponse {
	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/api/opinions/", map[string]interface{}{
		"title": title,
		"text":  text,
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var envelope opinionEnvelope
	testutils.ParseJSONResponse(s.T(), recorder, &envelope)
	return envelope.Opinion
}

func (s *OpinionAPITestSuite) TestCreateThenGetRoundTrip() {
	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/api/opinions/", map[string]interface{}{
		"title":    "Dune",
		"text":     "Visually stunning.",
		"source":   "https://example.com/review",
		"added_by": "alice",
	})

	var created opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &created)
	assert.NotZero(s.T(), created.Opinion.ID)
	assert.NotNil(s.T(), created.Opinion.Timestamp)

	recorder = s.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/opinions/%d/", created.Opinion.ID), nil)

	var fetched opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &fetched)
	assert.Equal(s.T(), "Dune", fetched.Opinion.Title)
	assert.Equal(s.T(), "Visually stunning.", fetched.Opinion.Text)
	s.Require().NotNil(fetched.Opinion.Source)
	assert.Equal(s.T(), "https://example.com/review", *fetched.Opinion.Source)
	s.Require().NotNil(fetched.Opinion.AddedBy)
	assert.Equal(s.T(), "alice", *fetched.Opinion.AddedBy)
}

func (s *OpinionAPITestSuite) TestRepeatedGetReturnsIdenticalJSON() {
	created := s.createOpinion("Dune", "Visually stunning.")

	url := fmt.Sprintf("/api/opinions/%d/", created.ID)
	first := s.httpSuite.MakeRequest(http.MethodGet, url, nil)
	second := s.httpSuite.MakeRequest(http.MethodGet, url, nil)

	assert.Equal(s.T(), http.StatusOK, first.Code)
	assert.Equal(s.T(), first.Body.String(), second.Body.String())
}

func (s *OpinionAPITestSuite) TestCreateMissingRequiredFields() {
	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/api/opinions/", map[string]interface{}{
		"title": "Dune",
	})

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusBadRequest, "insufficient data")
}

func (s *OpinionAPITestSuite) TestCreateInvalidJSON() {
	recorder := s.httpSuite.MakeRawRequest(http.MethodPost, "/api/opinions/", "{not json")

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusBadRequest, "invalid JSON body")
}

func (s *OpinionAPITestSuite) TestCreateDuplicateTextAddsNoRow() {
	s.createOpinion("Dune", "Visually stunning.")

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/api/opinions/", map[string]interface{}{
		"title": "Another take",
		"text":  "Visually stunning.",
	})
	testutils.AssertMessageResponse(s.T(), recorder, http.StatusConflict, "already exists")

	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/opinions/", nil)
	var list opinionsEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &list)
	assert.Len(s.T(), list.Opinions, 1)
}

func (s *OpinionAPITestSuite) TestGetUnknownID() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/opinions/4242/", nil)

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "opinion not found")
}

func (s *OpinionAPITestSuite) TestGetNonNumericID() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/opinions/abc/", nil)

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "opinion not found")
}

func (s *OpinionAPITestSuite) TestPatchMergesFields() {
	created := s.createOpinion("Dune", "Visually stunning.")

	recorder := s.httpSuite.MakeRequest(http.MethodPatch, fmt.Sprintf("/api/opinions/%d/", created.ID), map[string]interface{}{
		"source": "IMDB",
	})

	var updated opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &updated)
	assert.Equal(s.T(), "Dune", updated.Opinion.Title)
	assert.Equal(s.T(), "Visually stunning.", updated.Opinion.Text)
	s.Require().NotNil(updated.Opinion.Source)
	assert.Equal(s.T(), "IMDB", *updated.Opinion.Source)
}

func (s *OpinionAPITestSuite) TestPatchIgnoresStoreManagedFields() {
	created := s.createOpinion("Dune", "Visually stunning.")

	recorder := s.httpSuite.MakeRequest(http.MethodPatch, fmt.Sprintf("/api/opinions/%d/", created.ID), map[string]interface{}{
		"id":        99999,
		"timestamp": "1999-01-01T00:00:00Z",
		"source":    "IMDB",
	})

	var updated opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &updated)
	assert.Equal(s.T(), created.ID, updated.Opinion.ID)
	assert.Equal(s.T(), *created.Timestamp, *updated.Opinion.Timestamp)
}

func (s *OpinionAPITestSuite) TestPatchTextCollisionLeavesTargetUnmodified() {
	s.createOpinion("Dune", "Visually stunning.")
	target := s.createOpinion("Arrival", "Thoughtful sci-fi.")

	recorder := s.httpSuite.MakeRequest(http.MethodPatch, fmt.Sprintf("/api/opinions/%d/", target.ID), map[string]interface{}{
		"text": "Visually stunning.",
	})
	testutils.AssertMessageResponse(s.T(), recorder, http.StatusConflict, "already exists")

	recorder = s.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/opinions/%d/", target.ID), nil)
	var unchanged opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &unchanged)
	assert.Equal(s.T(), "Thoughtful sci-fi.", unchanged.Opinion.Text)
}

func (s *OpinionAPITestSuite) TestPatchInvalidJSON() {
	created := s.createOpinion("Dune", "Visually stunning.")

	recorder := s.httpSuite.MakeRawRequest(http.MethodPatch, fmt.Sprintf("/api/opinions/%d/", created.ID), "not json at all")

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusBadRequest, "invalid JSON body")
}

func (s *OpinionAPITestSuite) TestPatchUnknownID() {
	recorder := s.httpSuite.MakeRequest(http.MethodPatch, "/api/opinions/4242/", map[string]interface{}{
		"source": "IMDB",
	})

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "opinion not found")
}

func (s *OpinionAPITestSuite) TestDeleteSemantics() {
	recorder := s.httpSuite.MakeRequest(http.MethodDelete, "/api/opinions/4242/", nil)
	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "opinion not found")

	created := s.createOpinion("Dune", "Visually stunning.")

	recorder = s.httpSuite.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/opinions/%d/", created.ID), nil)
	assert.Equal(s.T(), http.StatusNoContent, recorder.Code)
	assert.Zero(s.T(), recorder.Body.Len())

	recorder = s.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/opinions/%d/", created.ID), nil)
	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "opinion not found")
}

func (s *OpinionAPITestSuite) TestListWrapsCollection() {
	s.createOpinion("Dune", "Visually stunning.")
	s.createOpinion("Arrival", "Thoughtful sci-fi.")

	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/opinions/", nil)

	var list opinionsEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &list)
	s.Require().Len(list.Opinions, 2)
	assert.Equal(s.T(), "Dune", list.Opinions[0].Title)
	assert.Equal(s.T(), "Arrival", list.Opinions[1].Title)
}

func (s *OpinionAPITestSuite) TestRandomOverEmptyStore() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/get-random-opinion/", nil)

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "no opinions")
}

func (s *OpinionAPITestSuite) TestRandomReturnsStoredRow() {
	created := s.createOpinion("Dune", "Visually stunning.")

	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/get-random-opinion/", nil)

	var picked opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &picked)
	assert.Equal(s.T(), created.ID, picked.Opinion.ID)
	assert.Equal(s.T(), "Visually stunning.", picked.Opinion.Text)
}

// TestDuneEndToEnd walks the documented example: create, then patch in a
// source and check title and text survived untouched.
func (s *OpinionAPITestSuite) TestDuneEndToEnd() {
	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/api/opinions/", map[string]interface{}{
		"title": "Dune",
		"text":  "Visually stunning.",
	})

	var created opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &created)
	assert.Equal(s.T(), "Dune", created.Opinion.Title)
	assert.Equal(s.T(), "Visually stunning.", created.Opinion.Text)
	assert.NotZero(s.T(), created.Opinion.ID)
	assert.NotNil(s.T(), created.Opinion.Timestamp)

	recorder = s.httpSuite.MakeRequest(http.MethodPatch, fmt.Sprintf("/api/opinions/%d/", created.Opinion.ID), map[string]interface{}{
		"source": "IMDB",
	})

	var patched opinionEnvelope
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &patched)
	s.Require().NotNil(patched.Opinion.Source)
	assert.Equal(s.T(), "IMDB", *patched.Opinion.Source)
	assert.Equal(s.T(), "Dune", patched.Opinion.Title)
	assert.Equal(s.T(), "Visually stunning.", patched.Opinion.Text)
}

func (s *OpinionAPITestSuite) TestUnknownEndpoint() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/no-such-route/", nil)

	testutils.AssertMessageResponse(s.T(), recorder, http.StatusNotFound, "endpoint not found")
}

func TestOpinionAPITestSuite(t *testing.T) {
	suite.Run(t, new(OpinionAPITestSuite))
}
