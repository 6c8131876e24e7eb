package controllers

import (
	"math"
	"net/http"
	"sort"

	"thesis-management-api/config"
	"thesis-management-api/models"

	"github.com/gin-gonic/gin"
)

// TopicCount is one entry of the admin dashboard's topic ranking.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// computeRejectionRate derives the share of theses that are neither
// approved nor pending, as a percentage rounded to two decimals. A zero
// total yields 0, never a division error.
func computeRejectionRate(total, approved, pending int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(total-approved-pending) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// rankTopics counts topic occurrences and returns the top limit entries,
// ordered by count descending with ties broken by topic name ascending so
// the ranking is deterministic. Blank topics are skipped.
func rankTopics(topics []string, limit int) []TopicCount {
	counts := make(map[string]int)
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		counts[topic]++
	}

	ranked := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		ranked = append(ranked, TopicCount{Topic: topic, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Topic < ranked[j].Topic
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// GetAdminDashboard returns system-wide aggregates, computed fresh on
// every call. A failed aggregate query fails the whole request; no stat
// is ever fabricated as zero.
func GetAdminDashboard(c *gin.Context) {
	var totalUsers, totalTheses, approvedTheses, pendingTheses int64

	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}
	if err := config.DB.Model(&models.Thesis{}).Count(&totalTheses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}
	if err := config.DB.Model(&models.Thesis{}).
		Where("status = ?", models.StatusApproved).Count(&approvedTheses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}
	if err := config.DB.Model(&models.Thesis{}).
		Where("status = ?", models.StatusPending).Count(&pendingTheses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	// Per-department submission counts, zero-count departments included
	var departments []models.Department
	if err := config.DB.Order("name ASC").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	var deptCounts []struct {
		DepartmentID int
		Count        int
	}
	if err := config.DB.Model(&models.Thesis{}).
		Select("department_id, COUNT(*) as count").
		Group("department_id").
		Scan(&deptCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	countsByDept := make(map[int]int, len(deptCounts))
	for _, dc := range deptCounts {
		countsByDept[dc.DepartmentID] = dc.Count
	}

	departmentStats := make([]gin.H, 0, len(departments))
	for _, dept := range departments {
		departmentStats = append(departmentStats, gin.H{
			"name":        dept.Name,
			"thesesCount": countsByDept[dept.ID],
		})
	}

	var topics []string
	if err := config.DB.Model(&models.Thesis{}).Pluck("topic", &topics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalUsers":     totalUsers,
			"totalTheses":    totalTheses,
			"approvedTheses": approvedTheses,
			"pendingTheses":  pendingTheses,
			"rejectionRate":  computeRejectionRate(totalTheses, approvedTheses, pendingTheses),
		},
		"departmentStats": departmentStats,
		"topTopics":       rankTopics(topics, 10),
	})
}

// GetStudentDashboard returns the caller's submission counts by status and
// the full thesis list with nested reviews and comments.
func GetStudentDashboard(c *gin.Context) {
	userID, _ := c.Get("userID")

	var submissions []models.Thesis
	if err := config.DB.Preload("Reviews").Preload("Comments").
		Where("student_id = ?", userID).
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	countByStatus := func(status string) (int64, error) {
		var count int64
		err := config.DB.Model(&models.Thesis{}).
			Where("student_id = ? AND status = ?", userID, status).
			Count(&count).Error
		return count, err
	}

	stats := gin.H{"totalSubmissions": len(submissions)}
	for status, key := range map[string]string{
		models.StatusApproved:           "approvedCount",
		models.StatusPending:            "pendingCount",
		models.StatusRejected:           "rejectedCount",
		models.StatusRevisionsRequested: "revisionsRequestedCount",
	} {
		count, err := countByStatus(status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
			return
		}
		stats[key] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       stats,
		"submissions": submissions,
	})
}

// GetReviewerDashboard returns the caller's review counts by status and
// the queue of theses still awaiting a verdict, each annotated with the
// caller's own review if one exists.
func GetReviewerDashboard(c *gin.Context) {
	userID, _ := c.Get("userID")

	countReviews := func(status string) (int64, error) {
		var count int64
		q := config.DB.Model(&models.Review{}).Where("reviewer_id = ?", userID)
		if status != "" {
			q = q.Where("status = ?", status)
		}
		err := q.Count(&count).Error
		return count, err
	}

	stats := gin.H{}
	for status, key := range map[string]string{
		"":                    "totalReviews",
		models.StatusApproved: "approvedCount",
		models.StatusRejected: "rejectedCount",
		models.StatusPending:  "pendingCount",
	} {
		count, err := countReviews(status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
			return
		}
		stats[key] = count
	}

	var thesesForReview []models.Thesis
	if err := config.DB.
		Preload("Reviews", "reviewer_id = ?", userID).
		Preload("Student").Preload("Department").
		Where("status IN ?", []string{models.StatusPending, models.StatusRevisionsRequested}).
		Find(&thesesForReview).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           stats,
		"thesesForReview": thesesForReview,
	})
}
