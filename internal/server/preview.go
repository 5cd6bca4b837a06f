package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smallbiznis/billcanvas/internal/observability/metrics"
	"github.com/smallbiznis/billcanvas/internal/preview"
)

type previewRequest struct {
	SampleName string `json:"sample_name"`
}

// PreviewTemplate renders the stored design against a named sample
// payload and returns the standalone HTML document.
func (s *Server) PreviewTemplate(c *gin.Context) {
	start := time.Now()

	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.SampleName == "" {
		AbortWithError(c, newValidationError("sample_name", "required", "sample_name is required"))
		return
	}

	resp, err := s.designSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		metrics.Designer().ObservePreview("error", time.Since(start))
		AbortWithError(c, err)
		return
	}

	payload, err := s.sampleSvc.Get(c.Request.Context(), req.SampleName)
	if err != nil {
		metrics.Designer().ObservePreview("error", time.Since(start))
		AbortWithError(c, err)
		return
	}

	input := preview.BuildInput(resp.Document, payload, s.clk)
	input.Title = resp.Name

	html, err := s.renderer.RenderHTML(input)
	if err != nil {
		metrics.Designer().ObservePreview("error", time.Since(start))
		AbortWithError(c, err)
		return
	}

	metrics.Designer().ObservePreview("ok", time.Since(start))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
