package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/icutrack/icu-api/model"
	"github.com/icutrack/icu-api/util"
)

type createPatientRequest struct {
	PatientID         int     `json:"patient_id" example:"1"`
	Name              string  `json:"name" example:"A"`
	Age               int     `json:"age" example:"70"`
	Gender            string  `json:"gender" example:"F"`
	Diagnosis         string  `json:"diagnosis" example:"sepsis"`
	ApacheScore       float64 `json:"apache_score" example:"20"`
	AdmissionDate     string  `json:"admission_date" example:"2024-01-01"`
	DischargeDate     string  `json:"discharge_date" example:"2024-01-10"`
	AttendingDoctorID string  `json:"attending_doctor_id" example:"D001"`
	BedID             int     `json:"bed_id" example:"3"`
}

// firstMissingField reports the first required field that is absent or zero,
// checked in declared order, or "" when the payload is complete. Validation
// stops at the first failure rather than collecting a full report.
func (r createPatientRequest) firstMissingField() string {
	checks := []struct {
		field   string
		present bool
	}{
		{"patient_id", r.PatientID != 0},
		{"name", r.Name != ""},
		{"age", r.Age != 0},
		{"gender", r.Gender != ""},
		{"diagnosis", r.Diagnosis != ""},
		{"apache_score", r.ApacheScore != 0},
		{"admission_date", r.AdmissionDate != ""},
		{"discharge_date", r.DischargeDate != ""},
		{"attending_doctor_id", r.AttendingDoctorID != ""},
		{"bed_id", r.BedID != 0},
	}
	for _, check := range checks {
		if !check.present {
			return check.field
		}
	}
	return ""
}

// isDuplicateKeyError reports whether an insert failed on a unique constraint.
// TranslateError handles the mysql and sqlite drivers; the substring checks
// cover drivers that predate gorm's error translation.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// ListPatients godoc
// @Summary      List patients
// @Description  Get all patient records, optionally filtered by attending doctor
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        doctorID query string false "Filter by attending doctor username"
// @Success      200 {array} model.Patient "Patient records"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patients [get]
func ListPatients(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	query := db
	if doctorID := c.Query("doctorID"); doctorID != "" {
		query = query.Where("attending_doctor_id = ?", doctorID)
	}

	patients := make([]model.Patient, 0)
	if err := query.Find(&patients).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patients",
			Err: err,
		})
		return
	}

	// The front end consumes a bare array, not the response envelope.
	c.JSON(http.StatusOK, patients)
}

// CreatePatient godoc
// @Summary      Create a new patient
// @Description  Register a new ICU patient record
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body createPatientRequest true "Patient information"
// @Success      201 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      400 {object} util.APIResponse "Missing required field"
// @Failure      409 {object} util.APIResponse "Duplicate patient_id"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patients [post]
func CreatePatient(c *gin.Context) {
	patientRequest := createPatientRequest{}

	if err := c.ShouldBindJSON(&patientRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	if field := patientRequest.firstMissingField(); field != "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Missing required field: %s", field),
			Err: fmt.Errorf("field %s is required", field),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	patient := model.Patient{
		PatientID:         patientRequest.PatientID,
		Name:              patientRequest.Name,
		Age:               patientRequest.Age,
		Gender:            patientRequest.Gender,
		Diagnosis:         patientRequest.Diagnosis,
		ApacheScore:       patientRequest.ApacheScore,
		AdmissionDate:     patientRequest.AdmissionDate,
		DischargeDate:     patientRequest.DischargeDate,
		AttendingDoctorID: patientRequest.AttendingDoctorID,
		BedID:             patientRequest.BedID,
	}

	if err := db.Create(&patient).Error; err != nil {
		// The store enforces patient_id uniqueness atomically; a collision is a
		// distinct client-visible condition, not a generic server fault.
		if isDuplicateKeyError(err) {
			util.CallConflict(c, util.APIErrorParams{
				Msg: "Patient with this patient_id already exists",
				Err: err,
			})
			return
		}
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create patient",
			Err: err,
		})
		return
	}

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Patient created",
		Data: patient,
	})
}
