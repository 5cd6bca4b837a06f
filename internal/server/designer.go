package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/geometry"
)

type dropRequest struct {
	Page           domain.Page           `json:"page"`
	SectionHeights domain.SectionHeights `json:"sectionHeights"`
	X              float64               `json:"x"`
	Y              float64               `json:"y"`
	Hint           domain.Zone           `json:"hint,omitempty"`
}

type dropResponse struct {
	Zone domain.Zone `json:"zone"`
	RelX float64     `json:"relX"`
	RelY float64     `json:"relY"`
}

// ResolveDrop maps an absolute canvas pointer position to the zone it
// lands in plus zone-relative coordinates. Every pointer position
// resolves to some zone.
func (s *Server) ResolveDrop(c *gin.Context) {
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	zone := geometry.ResolveZone(req.Y, req.SectionHeights, req.Page, req.Hint)
	relX, relY := geometry.ToRelative(req.X, req.Y, zone, req.SectionHeights, req.Page)

	c.JSON(http.StatusOK, dropResponse{Zone: zone, RelX: relX, RelY: relY})
}
