package endpoint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/icutrack/icu-api/middleware"
	"github.com/icutrack/icu-api/model"
)

const testAdminToken = "test-admin-token"

// newTestDB opens a private in-memory database with the same error translation
// the production connector uses, migrated for both collections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Patient{}, &model.User{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// setupTestRouter wires the same middleware and routes the server uses in main.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DatabaseMiddleware(db))

	api := r.Group("/api")
	api.GET("/patients", ListPatients)
	api.POST("/patients", CreatePatient)
	api.POST("/login", Login)
	api.GET("/health/db", middleware.AdminTokenRequired(testAdminToken), DatabaseHealth)

	admin := api.Group("/admin", middleware.AdminTokenRequired(testAdminToken))
	admin.POST("/seed-users", SeedUsers)
	admin.PATCH("/users/:username", AdminUpdateUser)

	return r
}

// sendJSON marshals the payload and sends it with the given method and path.
func sendJSON(t *testing.T, r http.Handler, method, path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	rr, err := doRequest(r, requestParams{method: method, path: path, body: b, headers: headers})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return rr
}

func adminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testAdminToken}
}

// validPatientPayload returns a complete create request as a mutable map so
// tests can drop or blank individual fields.
func validPatientPayload(patientID int, doctorID string) map[string]interface{} {
	return map[string]interface{}{
		"patient_id":          patientID,
		"name":                "A",
		"age":                 70,
		"gender":              "F",
		"diagnosis":           "sepsis",
		"apache_score":        20,
		"admission_date":      "2024-01-01",
		"discharge_date":      "2024-01-10",
		"attending_doctor_id": doctorID,
		"bed_id":              3,
	}
}

// envelopeResponse mirrors util.APIResponse with a raw data payload for reuse
// across assertions.
type envelopeResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelopeResponse {
	t.Helper()
	var body envelopeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a valid envelope: %v (%s)", err, rr.Body.String())
	}
	return body
}
