package domain

// ReviewStatus tracks a review through moderation.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// Review is a student's course review. New reviews start PENDING and only
// show publicly once an admin approves them.
type Review struct {
	ID            string       `json:"id"`
	StudentID     string       `json:"studentId"`
	StudentName   string       `json:"studentName"`
	StudentAvatar string       `json:"studentAvatar,omitempty"`
	Rating        int          `json:"rating"`
	Comment       string       `json:"comment"`
	Date          string       `json:"date"` // YYYY-MM-DD
	Status        ReviewStatus `json:"status"`
	CourseName    string       `json:"courseName,omitempty"`
}
