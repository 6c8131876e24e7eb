package models

import (
	"time"
)

// Thesis/Review status values. A closed enumeration: every module treats
// these four values as the whole universe, nothing introduces a fifth.
const (
	StatusPending            = "PENDING"
	StatusApproved           = "APPROVED"
	StatusRejected           = "REJECTED"
	StatusRevisionsRequested = "REVISIONS_REQUESTED"
)

type Thesis struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	Title        string    `gorm:"column:title;size:255" json:"title"`
	Abstract     string    `gorm:"column:abstract;type:text" json:"abstract"`
	Topic        string    `gorm:"column:topic;size:255" json:"topic"`
	Advisor      string    `gorm:"column:advisor;size:255" json:"advisor"`
	FileName     string    `gorm:"column:file_name;size:255" json:"fileName"`
	FilePath     string    `gorm:"column:file_path;size:512" json:"filePath"`
	FileSize     int64     `gorm:"column:file_size" json:"fileSize"`
	FileType     string    `gorm:"column:file_type;size:10" json:"fileType"`
	Status       string    `gorm:"column:status;size:30;default:PENDING" json:"status"`
	StudentID    int       `gorm:"column:student_id" json:"studentId"`
	DepartmentID int       `gorm:"column:department_id" json:"departmentId"`
	SubmittedAt  time.Time `gorm:"column:submitted_at" json:"submittedAt"`

	// Relations
	Student    *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Reviews    []Review    `gorm:"foreignKey:ThesisID" json:"reviews,omitempty"`
	Comments   []Comment   `gorm:"foreignKey:ThesisID" json:"comments,omitempty"`
}

// Review is one reviewer's verdict on one thesis. The composite unique index
// makes the at-most-one-review-per-(thesis, reviewer) rule a storage
// guarantee rather than a read-then-write convention.
type Review struct {
	ID         int       `gorm:"primaryKey;column:id" json:"id"`
	Status     string    `gorm:"column:status;size:30" json:"status"`
	Feedback   string    `gorm:"column:feedback;type:text" json:"feedback"`
	Score      *int      `gorm:"column:score" json:"score"`
	ThesisID   int       `gorm:"column:thesis_id;uniqueIndex:idx_reviews_thesis_reviewer" json:"thesisId"`
	ReviewerID int       `gorm:"column:reviewer_id;uniqueIndex:idx_reviews_thesis_reviewer" json:"reviewerId"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`

	// Relations
	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// Comment is append-only; no exposed operation updates or deletes one
// except the cascade when its thesis is deleted.
type Comment struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	ThesisID  int       `gorm:"column:thesis_id" json:"thesisId"`
	AuthorID  int       `gorm:"column:author_id" json:"authorId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	// Relations
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName overrides
func (Thesis) TableName() string {
	return "theses"
}

func (Review) TableName() string {
	return "reviews"
}

func (Comment) TableName() string {
	return "comments"
}

// ThesisStatuses lists the four legal status values in a fixed order.
func ThesisStatuses() []string {
	return []string{StatusPending, StatusApproved, StatusRejected, StatusRevisionsRequested}
}

// IsValidStatus reports whether status is one of the four legal values.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusRevisionsRequested:
		return true
	}
	return false
}
