package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"thesis-management-api/config"
	"thesis-management-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	reviewRepo reviewRepository = &gormReviewRepository{}

	notifyReviewSubmittedFunc = notifyReviewSubmitted
)

// reviewRepository isolates the review write path so its last-write-wins
// semantics can be exercised without a live database.
type reviewRepository interface {
	FindThesis(thesisID int) (*models.Thesis, error)
	// UpsertReview creates or overwrites the caller's review and, in the
	// same transaction, sets the thesis status to the review's status.
	// Returns true when a new review row was created.
	UpsertReview(review *models.Review) (bool, error)
}

type gormReviewRepository struct{}

func (r *gormReviewRepository) FindThesis(thesisID int) (*models.Thesis, error) {
	var thesis models.Thesis
	if err := config.DB.First(&thesis, thesisID).Error; err != nil {
		return nil, err
	}
	return &thesis, nil
}

func (r *gormReviewRepository) UpsertReview(review *models.Review) (bool, error) {
	created := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Review
		err := tx.Where("thesis_id = ? AND reviewer_id = ?", review.ThesisID, review.ReviewerID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.Status = review.Status
			existing.Feedback = review.Feedback
			existing.Score = review.Score
			existing.UpdatedAt = time.Now()
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*review = existing
		case err == gorm.ErrRecordNotFound:
			created = true
			now := time.Now()
			review.CreatedAt = now
			review.UpdatedAt = now
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		default:
			return err
		}

		// The most recent reviewer to act decides the thesis status.
		// Known-questionable last-writer-wins behavior, kept on purpose:
		// there is no quorum and no conflict detection across reviewers.
		return tx.Model(&models.Thesis{}).
			Where("id = ?", review.ThesisID).
			Update("status", review.Status).Error
	})
	return created, err
}

type SubmitReviewRequest struct {
	ThesisID int    `json:"thesisId" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Feedback string `json:"feedback"`
	Score    *int   `json:"score"`
}

// SubmitReview creates the caller's review for a thesis or overwrites it on
// resubmission. Either way the thesis status follows the review.
func SubmitReview(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if req.Score != nil && (*req.Score < 1 || *req.Score > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 1 and 5"})
		return
	}

	thesis, err := reviewRepo.FindThesis(req.ThesisID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thesis not found"})
		return
	}

	review := models.Review{
		ThesisID:   req.ThesisID,
		ReviewerID: userID.(int),
		Status:     req.Status,
		Feedback:   req.Feedback,
		Score:      req.Score,
	}

	created, err := reviewRepo.UpsertReview(&review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	thesis.Status = req.Status
	notifyReviewSubmittedFunc(*thesis)

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Review submitted successfully",
			"review":  review,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// GetReviewsForThesis returns all reviews for a thesis, each with the
// reviewer's identity.
func GetReviewsForThesis(c *gin.Context) {
	thesisID := c.Param("id")

	var reviews []models.Review
	if err := config.DB.Preload("Reviewer").
		Where("thesis_id = ?", thesisID).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetReviewerQueue is the reviewer's personal worklist: every thesis still
// awaiting a verdict, annotated with only the caller's own review.
func GetReviewerQueue(c *gin.Context) {
	userID, _ := c.Get("userID")

	var theses []models.Thesis
	if err := config.DB.
		Preload("Reviews", "reviewer_id = ?", userID).
		Preload("Student").Preload("Department").
		Where("status IN ?", []string{models.StatusPending, models.StatusRevisionsRequested}).
		Find(&theses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch theses"})
		return
	}

	c.JSON(http.StatusOK, theses)
}

type AddCommentRequest struct {
	ThesisID int    `json:"thesisId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// AddComment appends a free-text comment to a thesis. Comments are never
// edited or deleted through the API.
func AddComment(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var thesis models.Thesis
	if err := config.DB.First(&thesis, req.ThesisID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thesis not found"})
		return
	}

	comment := models.Comment{
		ThesisID:  req.ThesisID,
		AuthorID:  userID.(int),
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	if err := config.DB.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		log.Printf("Warning: failed to reload comment %d: %v", comment.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// notifyReviewSubmitted emails the thesis owner. Best effort only.
func notifyReviewSubmitted(thesis models.Thesis) {
	var student models.User
	if err := config.DB.First(&student, thesis.StudentID).Error; err != nil {
		return
	}

	subject := fmt.Sprintf("New review on your thesis: %s", thesis.Title)
	body := fmt.Sprintf(
		"<p>Dear %s %s,</p><p>Your thesis <strong>%s</strong> has received a review. Its status is now <strong>%s</strong>.</p>",
		student.FirstName, student.LastName, thesis.Title, thesis.Status,
	)

	go func() {
		if err := config.SendMail([]string{student.Email}, subject, body); err != nil {
			log.Printf("Warning: failed to send review notification to %s: %v", student.Email, err)
		}
	}()
}
