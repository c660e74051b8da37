package domain

import "time"

// AttendanceStatus is the outcome recorded for one student in one class.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attended reports whether the status counts towards the attendance rate.
func (s AttendanceStatus) Attended() bool {
	return s == AttendancePresent || s == AttendanceLate
}

// AttendanceMethod describes how a mark was captured.
type AttendanceMethod string

const (
	MethodManual AttendanceMethod = "manual"
	MethodQRCode AttendanceMethod = "qr_code"
)

// AttendanceRecord is one entry of the attendance ledger.
type AttendanceRecord struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	StudentID    string           `json:"student_id" bson:"student_id"`
	StudentName  string           `json:"student_name" bson:"student_name"`
	StudentEmail string           `json:"student_email" bson:"student_email"`
	CourseID     string           `json:"course_id" bson:"course_id"`
	CourseName   string           `json:"course_name" bson:"course_name"`
	LecturerID   string           `json:"lecturer_id" bson:"lecturer_id"`
	Lecturer     string           `json:"lecturer" bson:"lecturer"`
	Status       AttendanceStatus `json:"status" bson:"status"`
	Method       AttendanceMethod `json:"method" bson:"method"`
	RecordedAt   time.Time        `json:"recorded_at" bson:"recorded_at"`
}
