package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/handler"
	"taxdesk/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performCalc(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.NewCalculatorHandler(service.NewCalculatorService())

	r := gin.New()
	r.POST("/api/v1/calculator/gst", h.Calculate)
	r.GET("/api/v1/calculator/gst/slabs", h.CompareSlabs)
	r.POST("/api/v1/calculator/items/summary", h.SummarizeItems)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculate(t *testing.T) {
	w := performCalc(t, http.MethodPost, "/api/v1/calculator/gst",
		`{"amount": 1000, "rate": 18, "inclusive": false}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TaxableAmount float64 `json:"taxable_amount"`
			CGST          float64 `json:"cgst"`
			SGST          float64 `json:"sgst"`
			IGST          float64 `json:"igst"`
			TotalAmount   float64 `json:"total_amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.InDelta(t, 1000, resp.Data.TaxableAmount, 1e-6)
	assert.InDelta(t, 90, resp.Data.CGST, 1e-6)
	assert.InDelta(t, 90, resp.Data.SGST, 1e-6)
	assert.InDelta(t, 180, resp.Data.IGST, 1e-6)
	assert.InDelta(t, 1180, resp.Data.TotalAmount, 1e-6)
}

func TestCalculate_InvalidRate(t *testing.T) {
	w := performCalc(t, http.MethodPost, "/api/v1/calculator/gst",
		`{"amount": 1000, "rate": 150}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_RATE", resp.Error.Code)
}

func TestCompareSlabs_Endpoint(t *testing.T) {
	w := performCalc(t, http.MethodGet, "/api/v1/calculator/gst/slabs?amount=1000", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Rate float64 `json:"rate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	assert.Equal(t, float64(0), resp.Data[0].Rate)
	assert.Equal(t, float64(28), resp.Data[4].Rate)
}

func TestCompareSlabs_MissingAmount(t *testing.T) {
	w := performCalc(t, http.MethodGet, "/api/v1/calculator/gst/slabs", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummarizeItems_Endpoint(t *testing.T) {
	w := performCalc(t, http.MethodPost, "/api/v1/calculator/items/summary",
		`[{"name":"A","quantity":2,"unit_price":500,"rate":18},
		  {"name":"B","quantity":1,"unit_price":1000,"rate":5}]`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items   []json.RawMessage `json:"items"`
			Summary struct {
				TaxableTotal float64 `json:"taxable_total"`
				GrandTotal   float64 `json:"grand_total"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 2)
	assert.InDelta(t, 2000, resp.Data.Summary.TaxableTotal, 1e-6)
	assert.InDelta(t, 2230, resp.Data.Summary.GrandTotal, 1e-6)
}
