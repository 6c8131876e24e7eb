package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"thesis-management-api/config"
	"thesis-management-api/models"
	"thesis-management-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxThesisFileSize caps uploads; theses are documents, not datasets.
const maxThesisFileSize = int64(20 * 1024 * 1024) // 20MB

// SubmitThesis handles a student's multipart thesis upload.
func SubmitThesis(c *gin.Context) {
	userID, _ := c.Get("userID")

	title := utils.SanitizeInput(c.PostForm("title"))
	abstract := utils.SanitizeInput(c.PostForm("abstract"))
	topic := utils.SanitizeInput(c.PostForm("topic"))
	advisor := utils.SanitizeInput(c.PostForm("advisor"))

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	departmentID, err := strconv.Atoi(c.PostForm("departmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department"})
		return
	}

	var department models.Department
	if err := config.DB.First(&department, departmentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department"})
		return
	}

	// Get uploaded file
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if file.Size > maxThesisFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 20MB limit"})
		return
	}

	// Extension gate runs before anything is persisted
	if !utils.IsAllowedThesisFile(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF and DOCX files are allowed"})
		return
	}

	uploadPath, err := utils.UploadPath()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	now := time.Now()
	storedName := utils.StoredFilename(file.Filename, now)
	fullPath := filepath.Join(uploadPath, storedName)

	// Save file
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	thesis := models.Thesis{
		Title:        title,
		Abstract:     abstract,
		Topic:        topic,
		Advisor:      advisor,
		FileName:     storedName,
		FilePath:     fullPath,
		FileSize:     file.Size,
		FileType:     utils.FileExtension(file.Filename),
		Status:       models.StatusPending,
		StudentID:    userID.(int),
		DepartmentID: departmentID,
		SubmittedAt:  now,
	}

	if err := config.DB.Create(&thesis).Error; err != nil {
		// Remove the stored file so the two halves stay consistent
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save thesis"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thesis submitted successfully",
		"thesis":  thesis,
	})
}

// GetMyTheses returns all theses owned by the calling student,
// including nested reviews and comments.
func GetMyTheses(c *gin.Context) {
	userID, _ := c.Get("userID")

	var theses []models.Thesis
	if err := config.DB.Preload("Department").Preload("Reviews").Preload("Comments").
		Where("student_id = ?", userID).
		Find(&theses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch theses"})
		return
	}

	c.JSON(http.StatusOK, theses)
}

// GetThesis returns one thesis with its department, reviews (with reviewer),
// comments (with author) and student.
func GetThesis(c *gin.Context) {
	id := c.Param("id")

	var thesis models.Thesis
	if err := config.DB.Preload("Department").Preload("Student").
		Preload("Reviews.Reviewer").Preload("Comments.Author").
		First(&thesis, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thesis not found"})
		return
	}

	c.JSON(http.StatusOK, thesis)
}

// DownloadThesis streams the stored file. The thesis row and the file on
// disk are two independent failure points; both are checked.
func DownloadThesis(c *gin.Context) {
	id := c.Param("id")

	var thesis models.Thesis
	if err := config.DB.First(&thesis, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thesis not found"})
		return
	}

	if _, err := os.Stat(thesis.FilePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	// Set headers for download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", thesis.FileName))
	c.Header("Content-Type", "application/octet-stream")

	c.File(thesis.FilePath)
}

// UpdateThesisStatus is the admin override: any of the four values may be
// set at any time, there is no transition graph.
func UpdateThesisStatus(c *gin.Context) {
	id := c.Param("id")

	type StatusUpdateRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var thesis models.Thesis
	if err := config.DB.Preload("Department").Preload("Student").
		First(&thesis, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thesis not found"})
		return
	}

	if err := config.DB.Model(&thesis).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	thesis.Status = req.Status

	notifyThesisStatusChanged(thesis)

	c.JSON(http.StatusOK, gin.H{
		"message": thesisStatusMessage(req.Status),
		"thesis":  thesis,
	})
}

// thesisStatusMessage phrases a status change for the response body.
func thesisStatusMessage(status string) string {
	if status == models.StatusRevisionsRequested {
		return "Thesis revisions requested"
	}
	return "Thesis " + strings.ToLower(status)
}

// DeleteThesis removes the stored file (a missing file is tolerated) and
// then cascade-deletes the row with its reviews and comments in one
// transaction, so nothing is left orphaned.
func DeleteThesis(c *gin.Context) {
	id := c.Param("id")

	var thesis models.Thesis
	if err := config.DB.First(&thesis, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thesis not found"})
		return
	}

	if thesis.FilePath != "" {
		if err := os.Remove(thesis.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to remove file %s: %v", thesis.FilePath, err)
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thesis_id = ?", thesis.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thesis_id = ?", thesis.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&thesis).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete thesis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thesis deleted successfully"})
}

// notifyThesisStatusChanged emails the owning student. Best effort: a
// failed notification never fails the request.
func notifyThesisStatusChanged(thesis models.Thesis) {
	var student models.User
	if thesis.Student != nil {
		student = *thesis.Student
	} else if err := config.DB.First(&student, thesis.StudentID).Error; err != nil {
		return
	}

	subject := fmt.Sprintf("Thesis status update: %s", thesis.Title)
	body := fmt.Sprintf(
		"<p>Dear %s %s,</p><p>The status of your thesis <strong>%s</strong> is now <strong>%s</strong>.</p>",
		student.FirstName, student.LastName, thesis.Title, thesis.Status,
	)

	go func() {
		if err := config.SendMail([]string{student.Email}, subject, body); err != nil {
			log.Printf("Warning: failed to send status notification to %s: %v", student.Email, err)
		}
	}()
}
