package main

import (
	"dependencySheet/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expectedApiRoutes := [][3]string{
		{http.MethodPost, "/sheet1/A1", "SetCellAction"},
		{http.MethodGet, "/sheet1/A1", "GetCellAction"},
		{http.MethodGet, "/sheet1", "GetSheetAction"},
		{http.MethodGet, "/sheet1/print", "PrintSheetAction"},
		{http.MethodPost, "/sheet1/A1/subscribe", "SubscribeAction"},
		{http.MethodPost, "/percentiles", "PercentilesAction"},
		{http.MethodPost, "/sequences/numbers", "AppendSequenceAction"},
		{http.MethodGet, "/sequences/numbers", "GetSequenceAction"},
		{http.MethodDelete, "/sheet1", "DeleteSheetAction"},
	}

	for _, expectedRoute := range expectedApiRoutes {
		t.Run("Route "+expectedRoute[2], func(t *testing.T) {
			apiController := mocks.NewApiController(t)
			router := SetupRouter(apiController, nil)

			apiController.On(expectedRoute[2], mock.Anything).Return()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(expectedRoute[0], "/api/"+ApiVersion+expectedRoute[1], nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			apiController.AssertNumberOfCalls(t, expectedRoute[2], 1)
		})
	}

	t.Run("healthcheck", func(t *testing.T) {
		apiController := mocks.NewApiController(t)
		router := SetupRouter(apiController, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "health", w.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		apiController := mocks.NewApiController(t)
		metrics := NewMetrics()
		metrics.IncSequenceAppends()
		router := SetupRouter(apiController, metrics.Handler())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "sequence_appends_total 1"))
	})
}
