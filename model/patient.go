package model

import "gorm.io/gorm"

// Patient represents one ICU admission record
// @Description ICU patient information
type Patient struct {
	gorm.Model
	PatientID         int     `json:"patient_id" gorm:"column:patient_id;uniqueIndex" example:"1"`
	Name              string  `json:"name" gorm:"column:name" example:"A"`
	Age               int     `json:"age" gorm:"column:age" example:"70"`
	Gender            string  `json:"gender" gorm:"column:gender" example:"F"`
	Diagnosis         string  `json:"diagnosis" gorm:"column:diagnosis" example:"sepsis"`
	ApacheScore       float64 `json:"apache_score" gorm:"column:apache_score" example:"20"`
	AdmissionDate     string  `json:"admission_date" gorm:"column:admission_date" example:"2024-01-01"`
	DischargeDate     string  `json:"discharge_date" gorm:"column:discharge_date" example:"2024-01-10"`
	AttendingDoctorID string  `json:"attending_doctor_id" gorm:"column:attending_doctor_id;index" example:"D001"`
	BedID             int     `json:"bed_id" gorm:"column:bed_id" example:"3"`
}
