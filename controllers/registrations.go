package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/recisbogor/recup-backend/config"
	"github.com/recisbogor/recup-backend/models"
	"github.com/recisbogor/recup-backend/services"
	"github.com/recisbogor/recup-backend/utils/logger"
)

type teamMemberInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IsLeader bool   `json:"is_leader"`
}

type officialInput struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ListRegistrations returns all registrations with their members and officials
func ListRegistrations(c *gin.Context) {
	var registrations []models.Registration
	if err := config.DB.Preload("TeamMembers").Preload("Officials").Order("id asc").Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"registration_data": registrations})
}

// SubmitRegistration handles the multipart team-registration form: validates
// total_fee, stores the registration with its members and officials, uploads
// any attachments to the media host, and opens a payment session.
func SubmitRegistration(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalFeeStr := c.PostForm("total_fee")
	if totalFeeStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_fee is required"})
		return
	}
	totalFee, err := strconv.ParseInt(totalFeeStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_fee must be an integer"})
		return
	}

	competitionID, _ := strconv.Atoi(c.PostForm("competition_id"))

	var members []teamMemberInput
	if raw := c.PostForm("team_members"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &members); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "team_members must be a JSON array"})
			return
		}
	}

	var officials []officialInput
	if raw := c.PostForm("officials"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &officials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "officials must be a JSON array"})
			return
		}
	}

	totalMembers, err := strconv.Atoi(c.PostForm("total_members"))
	if err != nil {
		totalMembers = len(members)
	}

	var competition models.Competition
	if err := config.DB.First(&competition, competitionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	registration := models.Registration{
		CompetitionID: competition.ID,
		TeamName:      c.PostForm("team_name"),
		LeaderName:    c.PostForm("leader_name"),
		School:        c.PostForm("school"),
		Email:         c.PostForm("email"),
		Whatsapp:      c.PostForm("whatsapp"),
		OrderID:       services.NewOrderID(),
		PaymentStatus: models.PaymentPending,
		TotalFee:      totalFee,
		TotalMembers:  totalMembers,
	}

	// Flush the parent first; children need its id as a foreign key.
	if err := tx.Create(&registration).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	memberURLs := make([][3]*string, len(members)) // photo, surat, pakta
	officialURLs := make([]*string, len(officials))

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(uploadWorkers)

	nonLeaderIdx := 0
	for i := range members {
		var keys [3]string
		if members[i].IsLeader {
			keys = [3]string{"leader_photo", "leader_surat", "leader_pakta"}
		} else {
			idx := nonLeaderIdx
			nonLeaderIdx++
			keys = [3]string{
				fmt.Sprintf("member_%d_photo", idx),
				fmt.Sprintf("member_%d_surat", idx),
				fmt.Sprintf("member_%d_pakta", idx),
			}
		}
		for slot, key := range keys {
			headers := form.File[key]
			if len(headers) == 0 {
				continue
			}
			i, slot, key, header := i, slot, key, headers[0]
			g.Go(func() error {
				url, err := uploadHeader(ctx, header, services.FolderFor(key))
				if err != nil {
					return err
				}
				memberURLs[i][slot] = &url
				return nil
			})
		}
	}

	for j := range officials {
		key := fmt.Sprintf("official_%d_photo", j)
		headers := form.File[key]
		if len(headers) == 0 {
			continue
		}
		j, key, header := j, key, headers[0]
		g.Go(func() error {
			url, err := uploadHeader(ctx, header, services.FolderFor(key))
			if err != nil {
				return err
			}
			officialURLs[j] = &url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		tx.Rollback()
		logger.Errorf("registration %s: upload failed: %v", registration.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i, m := range members {
		member := models.TeamMember{
			RegistrationID: registration.ID,
			Name:           m.Name,
			Phone:          m.Phone,
			PhotoURL:       memberURLs[i][0],
			SuratURL:       memberURLs[i][1],
			PaktaURL:       memberURLs[i][2],
		}
		if err := tx.Create(&member).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	for j, o := range officials {
		official := models.Official{
			RegistrationID: registration.ID,
			Role:           models.OfficialRole(o.Role),
			Name:           o.Name,
			Phone:          o.Phone,
			PhotoURL:       officialURLs[j],
		}
		if err := tx.Create(&official).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Gross amount is the frontend-computed total_fee, not the stored
	// competition fee; the total may include per-member pricing.
	snapToken, err := Payments.CreateSession(services.SnapSession{
		OrderID:      registration.OrderID,
		GrossAmount:  totalFee,
		CustomerName: registration.LeaderName,
		Email:        registration.Email,
		Phone:        registration.Whatsapp,
		ItemName:     fmt.Sprintf("%s (%d peserta)", competition.Title, totalMembers),
		Quantity:     1,
	})
	if err != nil {
		logger.Errorf("registration %s: snap session failed: %v", registration.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&registration).Update("snap_token", snapToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Infof("registration %s created for competition %d (%d members)", registration.OrderID, competition.ID, totalMembers)
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Registration successful",
		"id":            registration.ID,
		"snap_token":    snapToken,
		"order_id":      registration.OrderID,
		"total_fee":     totalFee,
		"total_members": totalMembers,
	})
}

func uploadHeader(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return Media.Upload(ctx, file, folder)
}
