package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recisbogor/recup-backend/config"
	"github.com/recisbogor/recup-backend/models"
	"github.com/recisbogor/recup-backend/utils/logger"
)

const (
	competitionsCacheKey = "competitions"
	competitionsCacheTTL = 5 * time.Minute
)

type CreateCompetitionInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Img         string `json:"img"`
	RecentQuota int    `json:"recent_quota"`
	Fee         int64  `json:"fee"`
}

type UpdateCompetitionInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
	RecentQuota *int    `json:"recent_quota"`
	Fee         *int64  `json:"fee"`
}

// CreateCompetition persists a new competition
func CreateCompetition(c *gin.Context) {
	var in CreateCompetitionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	competition := models.Competition{
		Title:       in.Title,
		Description: in.Description,
		Img:         in.Img,
		RecentQuota: in.RecentQuota,
		Fee:         in.Fee,
	}
	if err := config.DB.Create(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateCompetitionCache()
	c.JSON(http.StatusCreated, competition)
}

// ListCompetitions returns all competitions ordered by ascending id
func ListCompetitions(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=300")

	if raw, ok := cachedCompetitions(); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
		return
	}

	var competitions []models.Competition
	if err := config.DB.Order("id asc").Find(&competitions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{"competitions": competitions}
	cacheCompetitions(body)
	c.JSON(http.StatusOK, body)
}

// UpdateCompetition applies a partial update; omitted fields keep their values
func UpdateCompetition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competition id"})
		return
	}

	var competition models.Competition
	if err := config.DB.First(&competition, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var in UpdateCompetitionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if in.Title != nil {
		competition.Title = *in.Title
	}
	if in.Description != nil {
		competition.Description = *in.Description
	}
	if in.Img != nil {
		competition.Img = *in.Img
	}
	if in.RecentQuota != nil {
		competition.RecentQuota = *in.RecentQuota
	}
	if in.Fee != nil {
		competition.Fee = *in.Fee
	}

	if err := config.DB.Save(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateCompetitionCache()
	c.JSON(http.StatusOK, competition)
}

// DeleteCompetition removes a competition by id
func DeleteCompetition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competition id"})
		return
	}

	var competition models.Competition
	if err := config.DB.First(&competition, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Delete(&competition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateCompetitionCache()
	c.JSON(http.StatusOK, gin.H{"message": "Competition with id: " + strconv.Itoa(id) + " has been deleted."})
}

func cachedCompetitions() ([]byte, bool) {
	if config.Redis == nil {
		return nil, false
	}
	raw, err := config.Redis.Get(context.Background(), competitionsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func cacheCompetitions(body gin.H) {
	if config.Redis == nil {
		return
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := config.Redis.Set(context.Background(), competitionsCacheKey, raw, competitionsCacheTTL).Err(); err != nil {
		logger.Errorf("failed to cache competitions: %v", err)
	}
}

func invalidateCompetitionCache() {
	if config.Redis == nil {
		return
	}
	if err := config.Redis.Del(context.Background(), competitionsCacheKey).Err(); err != nil {
		logger.Errorf("failed to invalidate competition cache: %v", err)
	}
}
