package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/controllers"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/storage"
)

func newMenuFixture(t *testing.T) (*repositories.MemoryMenuRepository, *controllers.MenuController) {
	t.Helper()
	storage.RegisterDisk("memory", storage.NewMemoryDisk())
	storage.SetDefault("memory")
	repo := repositories.NewMemoryMenuRepository()
	catalog := services.NewCatalogService(repo)
	stock := services.NewStockService(repo, 0)
	return repo, controllers.NewMenuController(catalog, stock)
}

// multipartUpload builds a /upload-menu form body. A nil file map leaves the
// file part out.
func multipartUpload(t *testing.T, fields map[string]string, filename string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestMenuController_UploadMenu(t *testing.T) {
	repo, ctrl := newMenuFixture(t)

	body, contentType := multipartUpload(t, map[string]string{
		"name":        "Kare-Kare",
		"price":       "250",
		"description": "oxtail in peanut sauce",
		"quantity":    "8",
	}, "kare-kare.jpg", []byte("picture bytes"))

	req := httptest.NewRequest(http.MethodPost, "/upload-menu", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ctrl.UploadMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
			Image    string  `json:"image"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Menu item added successfully", resp.Message)
	assert.Equal(t, "Kare-Kare", resp.Data.Name)
	assert.Equal(t, 8, resp.Data.Quantity)
	require.NotEmpty(t, resp.Data.Image)
	assert.True(t, storage.Exists(resp.Data.Image))

	items, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, resp.Data.Image, items[0].Image)
}

func TestMenuController_UploadMenu_NoFile(t *testing.T) {
	_, ctrl := newMenuFixture(t)

	body, contentType := multipartUpload(t, map[string]string{
		"name":  "Turon",
		"price": "20",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/upload-menu", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ctrl.UploadMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Image    string `json:"image"`
			Quantity int    `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Data.Image)
	assert.Equal(t, 0, resp.Data.Quantity)
}

func TestMenuController_UploadMenu_BadFields(t *testing.T) {
	_, ctrl := newMenuFixture(t)

	cases := []struct {
		name   string
		fields map[string]string
	}{
		{"bad price", map[string]string{"name": "Sisig", "price": "not-a-number"}},
		{"bad quantity", map[string]string{"name": "Sisig", "price": "150", "quantity": "eight"}},
		{"missing name", map[string]string{"name": "", "price": "150"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, tc.fields, "", nil)
			req := httptest.NewRequest(http.MethodPost, "/upload-menu", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			ctrl.UploadMenu(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
		})
	}
}
