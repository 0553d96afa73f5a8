package handler

import (
	"net/http"

	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/gin-gonic/gin"
)

type TeamHandler struct{ roster *service.RosterService }

func NewTeamHandler(roster *service.RosterService) *TeamHandler { return &TeamHandler{roster: roster} }

func (h *TeamHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/team", h.List)
	rg.POST("/team", h.Add)
	rg.DELETE("/team/:name", h.Remove)
}

func (h *TeamHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.roster.Members())
}

func (h *TeamHandler) Add(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	members, err := h.roster.Add(c.Request.Context(), req.Name)
	reply(c, http.StatusOK, members, err)
}

func (h *TeamHandler) Remove(c *gin.Context) {
	members, err := h.roster.Remove(c.Request.Context(), c.Param("name"))
	reply(c, http.StatusOK, members, err)
}
