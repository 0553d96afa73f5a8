package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlitchedDuck/Manager-hub/internal/export"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/report"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct{ svc *service.Services }

func NewReportHandler(svc *service.Services) *ReportHandler { return &ReportHandler{svc: svc} }

func (h *ReportHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/reports", h.Report)
	rg.GET("/attention", h.Attention)
	rg.GET("/export/:kind", h.Export)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Reports.Dashboard())
}

// Report takes ?window=<days>; 0 or absent means all time.
func (h *ReportHandler) Report(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("window", "0"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be a non-negative number of days"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Reports.Report(model.Window(days)))
}

func (h *ReportHandler) Attention(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(report.AttentionShown)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Reports.RequiresAttention(limit))
}

// Export streams one collection as CSV (default) or XLSX, honoring the
// same query filters as the list routes.
func (h *ReportHandler) Export(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", export.FormatCSV)
	if format != export.FormatCSV && format != export.FormatXLSX {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}
	table, err := h.svc.Export(c.Param("kind"), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Type", export.ContentType(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_export.%s", table.Name, format))
	if err := export.Write(c.Writer, table, format); err != nil {
		fail(c, err)
	}
}
