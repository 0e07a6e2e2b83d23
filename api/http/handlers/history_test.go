package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/backend/pkg/history"
)

type fakeHistoryUC struct {
	analyses map[int64]history.Analysis
	saved    []history.Analysis
}

func newFakeHistoryUC() *fakeHistoryUC {
	return &fakeHistoryUC{analyses: make(map[int64]history.Analysis)}
}

func (f *fakeHistoryUC) Save(_ context.Context, a history.Analysis) (int64, error) {
	f.saved = append(f.saved, a)
	return int64(len(f.saved)), nil
}

func (f *fakeHistoryUC) List(_ context.Context, _ uuid.UUID) ([]history.Item, error) {
	return nil, nil
}

func (f *fakeHistoryUC) Get(_ context.Context, userID uuid.UUID, id int64) (history.Analysis, error) {
	a, ok := f.analyses[id]
	if !ok || a.UserID != userID {
		return history.Analysis{}, history.ErrNotFound
	}
	return a, nil
}

func (f *fakeHistoryUC) Delete(_ context.Context, userID uuid.UUID, id int64) error {
	a, ok := f.analyses[id]
	if !ok || a.UserID != userID {
		return history.ErrNotFound
	}
	delete(f.analyses, id)
	return nil
}

func (f *fakeHistoryUC) Compare(_ context.Context, _ uuid.UUID, ids []int64) (history.Comparison, error) {
	if len(ids) < 2 {
		return history.Comparison{}, history.ErrNotEnoughIDs
	}
	return history.Comparison{}, history.ErrNotFound
}

func historyApp(uc history.UseCase, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	h := NewHistoryHandler(uc, quietLogger())
	mw := stubIdentity(userID, "u@example.com")
	app.Get("/history", mw, h.List)
	app.Post("/history", mw, h.Save)
	app.Post("/history/compare", mw, h.Compare)
	app.Get("/history/:id", mw, h.Get)
	app.Delete("/history/:id", mw, h.Delete)
	return app
}

func TestCompareHandler_SingleID(t *testing.T) {
	app := historyApp(newFakeHistoryUC(), uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/history/compare", strings.NewReader(`{"ids":[5]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Please provide at least 2 analysis IDs to compare", body["message"])
}

func TestGetHandler_NotFound(t *testing.T) {
	app := historyApp(newFakeHistoryUC(), uuid.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/history/9", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Analysis not found", body["message"])
}

func TestGetHandler_InvalidID(t *testing.T) {
	app := historyApp(newFakeHistoryUC(), uuid.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/history/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteHandler_WrongOwner(t *testing.T) {
	owner := uuid.New()
	uc := newFakeHistoryUC()
	uc.analyses[9] = history.Analysis{ID: 9, UserID: owner}

	// caller is a different user
	app := historyApp(uc, uuid.New())
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/history/9", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, uc.analyses, int64(9), "row must remain intact")
}

func TestSaveHandler_RequiresJobRoleAndText(t *testing.T) {
	uc := newFakeHistoryUC()
	app := historyApp(uc, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(`{"job_role":"","resume_text":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, uc.saved)
}

func TestSaveHandler_PersistsIdentityFromLocals(t *testing.T) {
	userID := uuid.New()
	uc := newFakeHistoryUC()
	app := historyApp(uc, userID)

	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(
		`{"job_role":"Backend Developer","resume_text":"...","match_percentage":72,"matched_skills":["Go"],"missing_skills":["Redis"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, uc.saved, 1)
	require.Equal(t, userID, uc.saved[0].UserID)
	require.Equal(t, "u@example.com", uc.saved[0].UserEmail)
	require.Equal(t, 72, uc.saved[0].MatchPercentage)
}
