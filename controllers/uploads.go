package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/recisbogor/recup-backend/services"
	"github.com/recisbogor/recup-backend/utils/logger"
)

// UploadFiles pushes every file field in the multipart form to the media host
// and returns field name -> URL. Photo-ish fields land in team_photos,
// everything else in documents. Any failed upload fails the whole request.
func UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	urls := make(map[string]string, len(form.File))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(uploadWorkers)

	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		field, header := field, headers[0]
		g.Go(func() error {
			url, err := uploadHeader(ctx, header, services.FolderFor(field))
			if err != nil {
				return err
			}
			mu.Lock()
			urls[field] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Errorf("batch upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
