package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	baseURL string
}

func NewQRCodeController(baseURL string) *QRCodeController {
	return &QRCodeController{
		baseURL: baseURL,
	}
}

// GenerateQRCode handles GET /qrcode/:code - renders the short URL for a code
// as a PNG QR image
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Code is required",
		})
		return
	}

	shortURL := qc.baseURL + "/s/" + code

	qrCode, err := qrcode.New(shortURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
