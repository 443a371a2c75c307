package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"share-a-bite-backend/domain"
	"share-a-bite-backend/entities"
	"share-a-bite-backend/internal/api/handlers"
	"share-a-bite-backend/internal/api/routes"
	"share-a-bite-backend/internal/middleware"
	"share-a-bite-backend/pkg/food"
	"share-a-bite-backend/pkg/identity"
	"share-a-bite-backend/pkg/request"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type fakeUploader struct {
	uploaded []string
}

func (f *fakeUploader) UploadFile(name string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 {
		allowed := false
		for _, t := range allowedTypes {
			if strings.EqualFold(t, contentType) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", domain.ErrInvalidImageFormat
		}
	}
	key := folder + "/" + name
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeUploader) GetPublicLinkKey(key string) string {
	return "https://cdn.test/" + key
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(toEmail, subject, body string) error {
	f.sent = append(f.sent, toEmail)
	return nil
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	uploader *fakeUploader
	mailer   *fakeMailer
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Food{}, &entities.FoodRequest{}))

	uploader := &fakeUploader{}
	mailer := &fakeMailer{}
	v := validator.New()
	resolver := identity.NewResolver(testJWTSecret)

	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)
	foodService := food.NewFoodService(foodRepository, requestRepository, uploader)
	requestService := request.NewRequestService(requestRepository, foodRepository, mailer)

	app := fiber.New()
	routesConfig := routes.Config{
		App:            app,
		FoodHandler:    handlers.NewFoodHandler(foodService, v, resolver),
		RequestHandler: handlers.NewRequestHandler(requestService, v, resolver),
		Middleware:     middleware.NewMiddleware(),
	}
	routesConfig.Setup()

	return &testEnv{app: app, db: db, uploader: uploader, mailer: mailer}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func seedFood(t *testing.T, db *gorm.DB, id, name string, quantity int, ownerEmail, status, createdAt string) entities.Food {
	t.Helper()
	item := entities.Food{
		ID:             id,
		Name:           name,
		QuantityNumber: quantity,
		Donator:        entities.Donator{Name: ownerEmail, Email: ownerEmail},
		Status:         status,
		CreatedAt:      createdAt,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedRequest(t *testing.T, db *gorm.DB, id, foodID, requesterEmail, status, createdAt string) entities.FoodRequest {
	t.Helper()
	item := entities.FoodRequest{
		ID:        id,
		FoodID:    foodID,
		Requester: entities.Requester{Name: requesterEmail, Email: requesterEmail},
		Location:  "somewhere",
		Reason:    "need it",
		Contact:   "123",
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func multipartImage(t *testing.T, field, filename, contentType string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-an-image"))
	require.NoError(t, err)

	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}
