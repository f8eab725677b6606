package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() config.Config {
	return config.Config{
		AppPort:         ":0",
		ShutdownTimeout: time.Second,
		Database: config.Database{
			Driver: config.DriverSQLite,
			DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		},
		TokenTTL: time.Hour,
		LogLevel: logrus.InfoLevel,
	}
}

func openTestDB(t *testing.T, cfg config.Config) *gorm.DB {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	db, err := database.Open(cfg.Database, log)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestHealthCheck(t *testing.T) {
	cfg := testConfig()
	db := openTestDB(t, cfg)
	log, _ := logtest.NewNullLogger()
	app := newApp(cfg, db, nil, log)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["database"])
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	cfg := testConfig()
	db := openTestDB(t, cfg)
	log, _ := logtest.NewNullLogger()
	app := newApp(cfg, db, nil, log)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "down", body["database"])
}

func TestNewApp_WriteGuard(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "test_jwt_secret"
	db := openTestDB(t, cfg)
	log, _ := logtest.NewNullLogger()
	app := newApp(cfg, db, nil, log)

	payload := `{"name":"Desk Lamp","price":39.5,"sku":"HOME-LAMP","category":"home"}`

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL).IssueToken("catalog-admin")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// reads stay public
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/products", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuditProductEvent(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	err := auditProductEvent(log)(models.ProductEvent{
		Type:      models.ProductDeleted,
		ProductID: 7,
		SKU:       "BK-GO",
	})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, models.ProductDeleted, entry.Data["event"])
	assert.Equal(t, uint(7), entry.Data["product_id"])
}
