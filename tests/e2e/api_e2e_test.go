package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/router"
	"github.com/devfolio/internal/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const baseURL = "https://portfolio.test"

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) *http.Response {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp
}

type e2eSuite struct {
	handler http.Handler
	disk    *storage.Disk
	public  *localClient
	admin   *localClient
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := gdb.AutoMigrate(&db.User{}, &db.Profile{}, &db.Project{}, &db.Skill{}, &db.Experience{}, &db.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	disk := storage.NewDisk(t.TempDir())
	cfg := config.AppConfig{
		SessionSecret:     "e2e-secret",
		StorageURLPath:    "/storage",
		ContactRatePerMin: 100,
		ContactBurst:      100,
	}

	handler := router.Setup(gdb, disk, nil, cfg)
	suite := &e2eSuite{
		handler: handler,
		disk:    disk,
		public:  newLocalClient(handler, false),
		admin:   newLocalClient(handler, true),
	}
	suite.login(t)
	return suite
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "secret123"})
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := s.admin.Do(req)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return value
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartRequest(t *testing.T, method, url string, fields map[string]string, fileField, filename string, fileContent []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAPIEndToEnd(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("write endpoints require auth", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"title": "x"})
		req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/projects", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := suite.public.Do(req)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", resp.StatusCode)
		}
	})

	var projectID uint

	t.Run("create project with uploaded image", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, baseURL+"/api/projects", map[string]string{
			"title":       "Portfolio",
			"description": "Personal site",
			"tech_stack":  `["Go","Gin"]`,
		}, "image", "shot.png", pngBytes(t))

		resp := suite.admin.Do(req)
		if resp.StatusCode != http.StatusCreated {
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
		}

		created := decodeJSON[db.Project](t, resp)
		projectID = created.ID
		if created.ImageURL == nil || !strings.Contains(*created.ImageURL, "/storage/projects/") {
			t.Fatalf("unexpected image url: %v", created.ImageURL)
		}

		files, err := suite.disk.List(storage.CollectionProjects)
		if err != nil || len(files) != 1 {
			t.Fatalf("expected one stored file, got %v (%v)", files, err)
		}
	})

	t.Run("clearing image_url removes the stored file", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, fmt.Sprintf("%s/api/projects/%d", baseURL, projectID), map[string]string{
			"title":       "Portfolio",
			"description": "Personal site",
			"tech_stack":  "Go,Gin",
			"image_url":   "",
		}, "", "", nil)

		resp := suite.admin.Do(req)
		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}

		updated := decodeJSON[db.Project](t, resp)
		if updated.ImageURL != nil {
			t.Fatalf("expected image cleared, got %v", *updated.ImageURL)
		}

		files, err := suite.disk.List(storage.CollectionProjects)
		if err != nil || len(files) != 0 {
			t.Fatalf("expected empty storage, got %v (%v)", files, err)
		}
	})

	t.Run("profile upsert and public read", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, baseURL+"/api/profile", map[string]string{
			"name":     "Henri",
			"headline": "Backend Developer",
		}, "avatar", "me.png", pngBytes(t))

		resp := suite.admin.Do(req)
		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}
		resp.Body.Close()

		getReq, _ := http.NewRequest(http.MethodGet, baseURL+"/api/profile", nil)
		getResp := suite.public.Do(getReq)
		if getResp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", getResp.StatusCode)
		}
		profile := decodeJSON[map[string]any](t, getResp)
		avatar, _ := profile["avatar_url"].(string)
		if !strings.HasPrefix(avatar, "storage/profile/") {
			t.Fatalf("unexpected avatar url: %q", avatar)
		}
	})

	t.Run("contact message flow", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":    "Visitor",
			"email":   "visitor@example.com",
			"message": "Nice portfolio!",
		})
		req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := suite.public.Do(req)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		listReq, _ := http.NewRequest(http.MethodGet, baseURL+"/api/messages", nil)
		listResp := suite.admin.Do(listReq)
		if listResp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", listResp.StatusCode)
		}
		messages := decodeJSON[[]db.ContactMessage](t, listResp)
		if len(messages) != 1 || messages[0].Name != "Visitor" {
			t.Fatalf("unexpected messages: %v", messages)
		}
	})

	t.Run("logout revokes access", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/logout", nil)
		resp := suite.admin.Do(req)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		listReq, _ := http.NewRequest(http.MethodGet, baseURL+"/api/messages", nil)
		listResp := suite.admin.Do(listReq)
		listResp.Body.Close()
		if listResp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", listResp.StatusCode)
		}
	})
}
