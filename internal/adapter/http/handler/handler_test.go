package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/internal/core/ports/mocks"
	"bancomeme-receipt-studio/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testDeps struct {
	session *mocks.MockSessionService
	export  *mocks.MockExportService
	view    *mocks.MockReceiptView
}

func newTestRouter(t *testing.T) (*gin.Engine, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := testDeps{
		session: mocks.NewMockSessionService(ctrl),
		export:  mocks.NewMockExportService(ctrl),
		view:    mocks.NewMockReceiptView(ctrl),
	}

	r := SetupRouter(RouterDeps{
		SessionSvc: deps.session,
		ExportSvc:  deps.export,
		View:       deps.view,
		Logger:     zerolog.Nop(),
	})
	return r, deps
}

func stubRecord() domain.ReceiptRecord {
	return domain.ReceiptRecord{
		Date:            "1 septiembre 2026",
		Time:            "10:20:30",
		Amount:          "1500.00",
		SenderAccount:   "12345",
		ReceiverAccount: "98765",
		ReceiverName:    "EL SAT",
		ReceiverBank:    "Cuenta BANCOMEME",
		Concept:         "tacos",
		Reference:       "1234567",
		Folio:           "987654321",
		TrackingKey:     "MBANO12345678901234567890",
		Email:           "ay@gmail.com",
		CircleColor:     domain.DefaultCircleColor,
	}
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestGetReceipt(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.session.EXPECT().Current().Return(stubRecord())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/receipt", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "EL SAT", data["receiver_name"])
	assert.Equal(t, "1,500.00", data["display_amount"])
	assert.NotEmpty(t, resp["request_id"])
}

func TestUpdateField(t *testing.T) {
	r, deps := newTestRouter(t)

	updated := stubRecord()
	updated.ReceiverName = "DON RAMON"
	deps.session.EXPECT().UpdateField("receiverName", "DON RAMON").Return(updated, nil)

	body := `{"name":"receiverName","value":"DON RAMON"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/receipt/fields", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w.Body)["data"].(map[string]interface{})
	assert.Equal(t, "DON RAMON", data["receiver_name"])
}

func TestUpdateField_TrimsValue(t *testing.T) {
	r, deps := newTestRouter(t)

	deps.session.EXPECT().UpdateField("concept", "tacos").Return(stubRecord(), nil)

	body := `{"name":"concept","value":"  tacos  "}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/receipt/fields", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateField_UnknownFieldRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	// Binding rejects field names before the service sees them.
	body := `{"name":"ssn","value":"x"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/receipt/fields", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "REC_002", resp["error_code"])
}

func TestUpdateField_MissingName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/receipt/fields", bytes.NewBufferString(`{"value":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateField_ServiceError(t *testing.T) {
	r, deps := newTestRouter(t)

	deps.session.EXPECT().
		UpdateField("amount", "x").
		Return(domain.ReceiptRecord{}, apperror.ErrUnknownField(errors.New("nope")))

	body := `{"name":"amount","value":"x"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/receipt/fields", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "REC_001", resp["error_code"])
}

func TestRegenerate(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.session.EXPECT().Regenerate().Return(stubRecord())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/receipt/regenerate", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w.Body)["data"].(map[string]interface{})
	assert.Equal(t, "MBANO12345678901234567890", data["tracking_key"])
}

func TestExport_JPEGDefault(t *testing.T) {
	r, deps := newTestRouter(t)

	result := &ports.ExportResult{
		Filename:         "bancomeme-1,500-el-sat-1234567-2026-09-01T10-20-30.jpg",
		Format:           "jpeg",
		Size:             4096,
		Width:            720,
		Height:           1560,
		MetadataEmbedded: true,
	}
	deps.export.EXPECT().ExportJPEG(gomock.Any()).Return(result, true, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/receipt/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w.Body)["data"].(map[string]interface{})
	assert.Equal(t, true, data["exported"])

	res := data["result"].(map[string]interface{})
	assert.Equal(t, result.Filename, res["filename"])
	assert.Equal(t, true, res["metadata_embedded"])
}

func TestExport_PNGAndPDFFormats(t *testing.T) {
	tests := []struct {
		format string
		setup  func(deps testDeps)
	}{
		{"png", func(deps testDeps) {
			deps.export.EXPECT().ExportPNG(gomock.Any()).
				Return(&ports.ExportResult{Filename: "bancomeme-receipt.png", Format: "png"}, true, nil)
		}},
		{"pdf", func(deps testDeps) {
			deps.export.EXPECT().ExportPDF(gomock.Any()).
				Return(&ports.ExportResult{Filename: "bancomeme-receipt.pdf", Format: "pdf"}, true, nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, deps := newTestRouter(t)
			tt.setup(deps)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/receipt/export?format="+tt.format, nil))

			require.Equal(t, http.StatusOK, w.Code)
			data := decodeEnvelope(t, w.Body)["data"].(map[string]interface{})
			assert.Equal(t, true, data["exported"])
		})
	}
}

func TestExport_BusyReturnsNotExported(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.export.EXPECT().ExportJPEG(gomock.Any()).Return(nil, false, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/receipt/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w.Body)["data"].(map[string]interface{})
	assert.Equal(t, false, data["exported"])
	assert.NotContains(t, data, "result")
}

func TestExport_UnknownFormat(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/receipt/export?format=bmp", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "REC_002", resp["error_code"])
}

func TestExport_PipelineError(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.export.EXPECT().
		ExportJPEG(gomock.Any()).
		Return(nil, true, apperror.ErrRenderFailure(errors.New("layout failed")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/receipt/export", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "EXP_002", resp["error_code"])
}

func TestPreview(t *testing.T) {
	r, deps := newTestRouter(t)

	deps.session.EXPECT().Current().Return(stubRecord())
	deps.view.EXPECT().
		Render(gomock.Any(), stubRecord()).
		Return(image.NewRGBA(image.Rect(0, 0, 360, 640)), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/receipt/preview", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bancomeme-receipt.png")

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 360, img.Bounds().Dx())
}

func TestPreview_RenderError(t *testing.T) {
	r, deps := newTestRouter(t)

	deps.session.EXPECT().Current().Return(stubRecord())
	deps.view.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("layout failed"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/receipt/preview", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "EXP_002", resp["error_code"])
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "export_sink"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "export_sink", err: errors.New("read-only filesystem")})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: 3.0.3"))
	t.Cleanup(func() { SetSwaggerSpec(nil) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}
