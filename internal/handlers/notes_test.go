package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadNotesRequest(t *testing.T, r *gin.Engine, cookies []*http.Cookie, filename, contentType, title string, categoryID uint, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, w.WriteField("title", title))
	require.NoError(t, w.WriteField("categoryId", fmt.Sprint(categoryID)))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/notes", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNotesUploadAndDownload(t *testing.T) {
	r := newTestRouter(t)
	admin := registerAndLoginAdmin(t, r, "boss@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{"name": "Science"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(decodeBody(t, w)["data"].(map[string]any)["id"].(float64))

	content := []byte("%PDF-1.4 fake body")
	rec := uploadNotesRequest(t, r, admin, "chapter1.pdf", "application/pdf", "Chapter 1", categoryID, content)
	require.Equal(t, http.StatusCreated, rec.Code)
	notesID := uint(decodeBody(t, rec)["data"].(map[string]any)["id"].(float64))

	user := registerAndLoginUser(t, r, "jane@example.com")
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/user/notes/%d/download", notesID), nil)
	for _, ck := range user {
		req.AddCookie(ck)
	}
	download := httptest.NewRecorder()
	r.ServeHTTP(download, req)

	require.Equal(t, http.StatusOK, download.Code)
	assert.Contains(t, download.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, download.Header().Get("Content-Disposition"), "chapter1.pdf")
	assert.Equal(t, content, download.Body.Bytes())
}

func TestNotesUploadRejectsNonPDF(t *testing.T) {
	r := newTestRouter(t)
	admin := registerAndLoginAdmin(t, r, "boss@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{"name": "Science"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(decodeBody(t, w)["data"].(map[string]any)["id"].(float64))

	// Right content type, wrong extension.
	rec := uploadNotesRequest(t, r, admin, "notes.txt", "application/pdf", "Bad upload", categoryID, []byte("text"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestNotesListPaginates(t *testing.T) {
	r := newTestRouter(t)
	admin := registerAndLoginAdmin(t, r, "boss@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{"name": "Science"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(decodeBody(t, w)["data"].(map[string]any)["id"].(float64))

	for i := 0; i < 3; i++ {
		rec := uploadNotesRequest(t, r, admin, fmt.Sprintf("n%d.pdf", i), "application/pdf", fmt.Sprintf("Notes %d", i), categoryID, []byte("pdf"))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/notes?page=0&size=2", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(3), page["totalElements"])
	assert.Len(t, page["content"].([]any), 2)
	assert.Equal(t, float64(2), page["totalPages"])
}

func TestNotesDownloadUnknownID(t *testing.T) {
	r := newTestRouter(t)
	user := registerAndLoginUser(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/user/notes/999/download", nil, user)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
