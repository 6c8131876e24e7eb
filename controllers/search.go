package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"thesis-management-api/config"
	"thesis-management-api/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePagination clamps page/pageSize to sane values.
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// totalPageCount is ceil(total / pageSize) in integer arithmetic.
func totalPageCount(total int64, pageSize int) int64 {
	return (total + int64(pageSize) - 1) / int64(pageSize)
}

// SearchTheses is the public browse endpoint. All provided filters are
// AND-combined; the keyword alone fans out over title, abstract and topic.
func SearchTheses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	page, pageSize = normalizePagination(page, pageSize)

	keyword := c.Query("keyword")
	department := c.Query("department")
	topic := c.Query("topic")
	advisor := c.Query("advisor")
	status := c.Query("status")
	year := c.Query("year")

	query := config.DB.Preload("Department").Preload("Student").Preload("Reviews").
		Model(&models.Thesis{})

	if keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		query = query.Where(
			"(LOWER(title) LIKE ? OR LOWER(abstract) LIKE ? OR LOWER(topic) LIKE ?)",
			like, like, like,
		)
	}
	if department != "" {
		query = query.Where("department_id = ?", department)
	}
	if topic != "" {
		query = query.Where("LOWER(topic) LIKE ?", "%"+strings.ToLower(topic)+"%")
	}
	if advisor != "" {
		query = query.Where("LOWER(advisor) LIKE ?", "%"+strings.ToLower(advisor)+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.Local)
			end := time.Date(y, time.December, 31, 23, 59, 59, 999999999, time.Local)
			query = query.Where("submitted_at BETWEEN ? AND ?", start, end)
		}
	}

	// Get total count for pagination
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search theses"})
		return
	}

	var theses []models.Thesis
	offset := (page - 1) * pageSize
	if err := query.Order("submitted_at DESC").Offset(offset).Limit(pageSize).
		Find(&theses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search theses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"theses": theses,
		"pagination": gin.H{
			"total":      total,
			"page":       page,
			"pageSize":   pageSize,
			"totalPages": totalPageCount(total, pageSize),
		},
	})
}

// distinctNonEmpty drops blank values and duplicates, preserving order.
func distinctNonEmpty(values []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		result = append(result, trimmed)
	}
	return result
}

// GetSearchFilters returns the filter vocabulary for the client dropdowns:
// all departments plus the topic and advisor strings actually in use.
func GetSearchFilters(c *gin.Context) {
	var departments []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := config.DB.Model(&models.Department{}).
		Select("id", "name").Order("name ASC").
		Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filters"})
		return
	}

	var topics []string
	if err := config.DB.Model(&models.Thesis{}).
		Distinct().Order("topic ASC").
		Pluck("topic", &topics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filters"})
		return
	}

	var advisors []string
	if err := config.DB.Model(&models.Thesis{}).
		Distinct().Order("advisor ASC").
		Pluck("advisor", &advisors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"departments": departments,
		"topics":      distinctNonEmpty(topics),
		"advisors":    distinctNonEmpty(advisors),
	})
}
