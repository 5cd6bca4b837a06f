package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smallbiznis/billcanvas/internal/observability/metrics"
	"github.com/smallbiznis/billcanvas/internal/template/binding"
	"github.com/smallbiznis/billcanvas/internal/template/calc"
)

type validateBindingsRequest struct {
	SampleName string   `json:"sample_name"`
	Paths      []string `json:"paths"`
}

type bindingResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateBindings checks bind paths against a named sample payload and
// reports per-path diagnostics. Invalid paths are warnings for the
// designer UI, never a failed request.
func (s *Server) ValidateBindings(c *gin.Context) {
	var req validateBindingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.SampleName == "" {
		AbortWithError(c, newValidationError("sample_name", "required", "sample_name is required"))
		return
	}

	payload, err := s.sampleSvc.Get(c.Request.Context(), req.SampleName)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	results := make([]bindingResult, 0, len(req.Paths))
	for _, path := range req.Paths {
		result := bindingResult{Path: path, Valid: true}
		if err := binding.Validate(path, payload); err != nil {
			result.Valid = false
			result.Error = err.Error()
			metrics.Designer().ObserveBindWarning()
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"sources": calc.Sources(payload),
	})
}
