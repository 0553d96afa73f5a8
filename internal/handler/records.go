package handler

import (
	"net/http"

	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/gin-gonic/gin"
)

// RecordHandler serves the list/create/update routes of the six record
// kinds plus training approval.
type RecordHandler struct{ svc *service.Services }

func NewRecordHandler(svc *service.Services) *RecordHandler { return &RecordHandler{svc: svc} }

func (h *RecordHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/checkins", h.ListCheckins)
	rg.POST("/checkins", h.CreateCheckin)
	rg.PATCH("/checkins/:id", h.UpdateCheckin)

	rg.GET("/actions", h.ListActions)
	rg.POST("/actions", h.CreateAction)
	rg.PATCH("/actions/:id", h.UpdateAction)

	rg.GET("/training", h.ListTraining)
	rg.POST("/training", h.CreateTraining)
	rg.PATCH("/training/:id", h.UpdateTraining)
	rg.POST("/training/:id/approve", h.ApproveTraining)
	rg.POST("/training/:id/reject", h.RejectTraining)

	rg.GET("/matrix", h.ListMatrix)
	rg.POST("/matrix", h.CreateMatrix)
	rg.PATCH("/matrix/:id", h.UpdateMatrix)

	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings", h.CreateBooking)
	rg.PATCH("/bookings/:id", h.UpdateBooking)

	rg.GET("/resources", h.ListResources)
	rg.POST("/resources", h.CreateResource)
	rg.PATCH("/resources/:id", h.UpdateResource)
}

func (h *RecordHandler) ListCheckins(c *gin.Context)  { list(c, h.svc.Checkins.List) }
func (h *RecordHandler) CreateCheckin(c *gin.Context) { create(c, h.svc.Checkins.Create) }
func (h *RecordHandler) UpdateCheckin(c *gin.Context) { update(c, h.svc.Checkins.Update) }

func (h *RecordHandler) ListActions(c *gin.Context)  { list(c, h.svc.Actions.List) }
func (h *RecordHandler) CreateAction(c *gin.Context) { create(c, h.svc.Actions.Create) }
func (h *RecordHandler) UpdateAction(c *gin.Context) { update(c, h.svc.Actions.Update) }

func (h *RecordHandler) ListTraining(c *gin.Context)   { list(c, h.svc.Training.List) }
func (h *RecordHandler) CreateTraining(c *gin.Context) { create(c, h.svc.Training.Create) }
func (h *RecordHandler) UpdateTraining(c *gin.Context) { update(c, h.svc.Training.Update) }

func (h *RecordHandler) ApproveTraining(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.svc.Training.Approve(c.Request.Context(), id)
	reply(c, http.StatusOK, t, err)
}

func (h *RecordHandler) RejectTraining(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.svc.Training.Reject(c.Request.Context(), id)
	reply(c, http.StatusOK, t, err)
}

func (h *RecordHandler) ListMatrix(c *gin.Context)   { list(c, h.svc.Matrix.List) }
func (h *RecordHandler) CreateMatrix(c *gin.Context) { create(c, h.svc.Matrix.Create) }
func (h *RecordHandler) UpdateMatrix(c *gin.Context) { update(c, h.svc.Matrix.Update) }

func (h *RecordHandler) ListBookings(c *gin.Context)  { list(c, h.svc.Bookings.List) }
func (h *RecordHandler) CreateBooking(c *gin.Context) { create(c, h.svc.Bookings.Create) }
func (h *RecordHandler) UpdateBooking(c *gin.Context) { update(c, h.svc.Bookings.Update) }

func (h *RecordHandler) ListResources(c *gin.Context)  { list(c, h.svc.Resources.List) }
func (h *RecordHandler) CreateResource(c *gin.Context) { create(c, h.svc.Resources.Create) }
func (h *RecordHandler) UpdateResource(c *gin.Context) { update(c, h.svc.Resources.Update) }
