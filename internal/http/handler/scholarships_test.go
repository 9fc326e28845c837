package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scholarstream/internal/apperror"
	"scholarstream/internal/model"
	serviceMocks "scholarstream/internal/service/mocks"
)

func TestCreateScholarship(t *testing.T) {
	mockSvc := new(serviceMocks.MockScholarshipService)
	app := newApp()
	app.Post("/scholarships", CreateScholarship(mockSvc))

	fees := 25.0
	in := model.ScholarshipInput{ScholarshipName: "Global Merit", ApplicationFees: &fees}
	mockSvc.On("Create", mock.Anything, in).
		Return(&model.Scholarship{ID: validID, ScholarshipName: "Global Merit"}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/scholarships", in))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Scholarship created successfully", body["message"])
	assert.Equal(t, validID, body["scholarshipId"])
	mockSvc.AssertExpectations(t)
}

func TestSearchScholarships(t *testing.T) {
	mockSvc := new(serviceMocks.MockScholarshipService)
	app := newApp()
	app.Get("/scholarships/all-scholarships", SearchScholarships(mockSvc))

	t.Run("filters are passed through", func(t *testing.T) {
		want := model.ScholarshipFilter{
			Search:   "oxford",
			Country:  "UK",
			Category: "Full fund",
			Degree:   "Masters",
			Sort:     model.SortFeesAsc,
			Limit:    10,
			Offset:   20,
		}
		mockSvc.On("Search", mock.Anything, want).
			Return([]model.Scholarship{{ID: validID}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/scholarships/all-scholarships?search=oxford&country=UK&category=Full%20fund&degree=Masters&sort=fees_asc&limit=10&offset=20", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Total        int                 `json:"total"`
			Scholarships []model.Scholarship `json:"scholarships"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 1, body.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no filters", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, model.ScholarshipFilter{}).Return([]model.Scholarship{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/scholarships/all-scholarships", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, float64(0), body["total"])
		assert.Equal(t, []any{}, body["scholarships"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/scholarships/all-scholarships?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid limit", errorMessage(t, resp))
	})

	t.Run("invalid sort", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, model.ScholarshipFilter{Sort: "cheapest"}).
			Return(nil, apperror.BadRequest("Invalid sort option")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/scholarships/all-scholarships?sort=cheapest", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid sort option", errorMessage(t, resp))
	})
}

func TestScholarshipByID(t *testing.T) {
	mockSvc := new(serviceMocks.MockScholarshipService)
	app := newApp()
	app.Get("/scholarships/:id", GetScholarship(mockSvc))
	app.Put("/scholarships/:id", UpdateScholarship(mockSvc))
	app.Delete("/scholarships/:id", DeleteScholarship(mockSvc))

	t.Run("get not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, validID).Return(nil, apperror.NotFound("Scholarship not found")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/scholarships/"+validID, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Scholarship not found", errorMessage(t, resp))
	})

	t.Run("update", func(t *testing.T) {
		degree := "PhD"
		mockSvc.On("Update", mock.Anything, validID, model.ScholarshipUpdate{Degree: &degree}).
			Return(&model.Scholarship{ID: validID, Degree: degree}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/scholarships/"+validID, map[string]string{"degree": "PhD"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Scholarship updated successfully", body["message"])
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, validID).Return(int64(1), nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/scholarships/"+validID, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Scholarship deleted successfully", body["message"])
		assert.Equal(t, float64(1), body["deletedCount"])
	})

	mockSvc.AssertExpectations(t)
}
