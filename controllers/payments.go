package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recisbogor/recup-backend/config"
	"github.com/recisbogor/recup-backend/models"
	"github.com/recisbogor/recup-backend/services"
	"github.com/recisbogor/recup-backend/utils/logger"
)

// PaymentNotification is the Midtrans status webhook. The signature_key must
// match sha512(order_id + status_code + gross_amount + server_key) before
// anything is looked up or changed.
func PaymentNotification(c *gin.Context) {
	var n services.PaymentNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !services.VerifyNotification(MidtransServerKey, n) {
		logger.Errorf("payment notification for %s: signature mismatch", n.OrderID)
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid signature"})
		return
	}

	var registration models.Registration
	if err := config.DB.Where("order_id = ?", n.OrderID).First(&registration).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status, ok := services.MapTransactionStatus(n.TransactionStatus, n.FraudStatus)
	if ok && status != registration.PaymentStatus {
		if err := config.DB.Model(&registration).Update("payment_status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logger.Infof("registration %s payment status -> %s", n.OrderID, status)
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
