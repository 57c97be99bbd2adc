package domain

// CourseMode is how a course is delivered.
type CourseMode string

const (
	ModeOnline   CourseMode = "Online Live"
	ModeOffline  CourseMode = "Classroom"
	ModeRecorded CourseMode = "Recorded"
)

// Course is one catalog entry. The catalog ships with the client and is
// read-only; there is no persistence behind it.
type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	InstructorName   string     `json:"instructorName"`
	Price            int        `json:"price"`
	Duration         string     `json:"duration"`
	Category         string     `json:"category"`
	Rating           float64    `json:"rating"`
	StudentsEnrolled int        `json:"studentsEnrolled"`
	Image            string     `json:"image"`
	Mode             CourseMode `json:"mode"`
	NextBatchDate    string     `json:"nextBatchDate,omitempty"`
	Progress         int        `json:"progress,omitempty"`
}
