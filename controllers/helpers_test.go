package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/recisbogor/recup-backend/config"
	"github.com/recisbogor/recup-backend/controllers"
	"github.com/recisbogor/recup-backend/routes"
	"github.com/recisbogor/recup-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBCounter atomic.Int64

// setupTest wires an in-memory DB, fake service clients, and the real route
// table. Each test gets its own database.
func setupTest(t *testing.T) (*gin.Engine, *fakeUploader, *fakeGateway) {
	t.Helper()

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	config.DB = db
	config.Redis = nil

	up := &fakeUploader{}
	gw := &fakeGateway{token: "snap-test-token"}
	controllers.Media = up
	controllers.Payments = gw
	controllers.MidtransServerKey = "SB-Mid-server-testkey"

	r := gin.New()
	routes.SetupRoutes(r)
	return r, up, gw
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// multipartRequest builds a multipart form with text fields plus one file per
// entry in files; the file contents are the field name, which the fake
// uploader echoes into the URL it returns.
func multipartRequest(t *testing.T, path string, fields map[string]string, files []string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, name := range files {
		fw, err := mw.CreateFormFile(name, name+".jpg")
		if err != nil {
			t.Fatalf("create file %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(name)); err != nil {
			t.Fatalf("write file %s: %v", name, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// fakeUploader returns https://media.test/<folder>/<file-contents> and
// records every upload it served.
type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
	fail    bool
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, folder string) (string, error) {
	if f.fail {
		return "", errors.New("media host unavailable")
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	url := "https://media.test/" + folder + "/" + string(content)
	f.mu.Lock()
	f.uploads = append(f.uploads, url)
	f.mu.Unlock()
	return url, nil
}

type fakeGateway struct {
	token    string
	fail     bool
	lastSess services.SnapSession
}

func (f *fakeGateway) CreateSession(s services.SnapSession) (string, error) {
	f.lastSess = s
	if f.fail {
		return "", errors.New("gateway unavailable")
	}
	return f.token, nil
}
