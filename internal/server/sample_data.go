package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sampledomain "github.com/smallbiznis/billcanvas/internal/sampledata/domain"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

func (s *Server) ListSampleData(c *gin.Context) {
	names, err := s.sampleSvc.Names(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": names})
}

func (s *Server) GetSampleData(c *gin.Context) {
	payload, err := s.sampleSvc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) UpsertSampleData(c *gin.Context) {
	var raw sample.RawPayload
	if err := c.ShouldBindJSON(&raw); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	payload, err := s.sampleSvc.Upsert(c.Request.Context(), sampledomain.UpsertRequest{
		Name:    c.Param("name"),
		Payload: raw,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
