package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupHandlerTestDB(t *testing.T) {
	t.Helper()
	originalSQLitePath := common.SQLitePath
	common.SQLitePath = filepath.Join(t.TempDir(), "handler_test.db")

	err := model.InitDB()
	assert.NoError(t, err)

	t.Cleanup(func() {
		common.SQLitePath = originalSQLitePath
	})
}

func newJSONContext(t *testing.T, method string, path string, payload any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	ctx.Set("lang", "en")
	return ctx, recorder
}

func decodeAPIResponse(t *testing.T, recorder *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

func TestCreateAndGetChecklist(t *testing.T) {
	setupHandlerTestDB(t)

	ctx, recorder := newJSONContext(t, http.MethodPost, "/api/checklists", map[string]any{
		"title":       "Trip",
		"description": "summer trip",
	})
	ctx.Set("principal", service.OwnerPrincipal(1))
	CreateChecklist(ctx)

	resp := decodeAPIResponse(t, recorder)
	assert.True(t, resp.Success)
	var created model.Checklist
	assert.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "Trip", created.Title)
	assert.NotNil(t, created.OwnerId)
	assert.Equal(t, int64(1), *created.OwnerId)

	ctx, recorder = newJSONContext(t, http.MethodGet, "/api/checklists/1", nil)
	ctx.Set("principal", service.OwnerPrincipal(1))
	ctx.Params = gin.Params{{Key: "id", Value: "1"}}
	GetChecklist(ctx)
	resp = decodeAPIResponse(t, recorder)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateChecklist_RejectsMissingTitle(t *testing.T) {
	setupHandlerTestDB(t)

	ctx, recorder := newJSONContext(t, http.MethodPost, "/api/checklists", map[string]any{
		"description": "no title",
	})
	ctx.Set("principal", service.OwnerPrincipal(1))
	CreateChecklist(ctx)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeAPIResponse(t, recorder)
	assert.False(t, resp.Success)
}

func TestGetChecklists_SoftDenyWithoutPrincipal(t *testing.T) {
	setupHandlerTestDB(t)

	ctx, recorder := newJSONContext(t, http.MethodGet, "/api/checklists", nil)
	GetChecklists(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeAPIResponse(t, recorder)
	assert.True(t, resp.Success)
	assert.JSONEq(t, "[]", string(resp.Data))
}

func TestGetChecklist_TokenHolderScopedToOwnChecklist(t *testing.T) {
	setupHandlerTestDB(t)

	ownerId := int64(1)
	shared := model.Checklist{Title: "Shared", OwnerId: &ownerId}
	assert.NoError(t, shared.Insert())
	other := model.Checklist{Title: "Other", OwnerId: &ownerId}
	assert.NoError(t, other.Insert())

	ctx, recorder := newJSONContext(t, http.MethodGet, "/api/checklists", nil)
	ctx.Set("principal", service.TokenPrincipal(shared.Id))
	ctx.Params = gin.Params{{Key: "id", Value: itoaId(other.Id)}}
	GetChecklist(ctx)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func itoaId(id int64) string {
	return strconv.FormatInt(id, 10)
}
