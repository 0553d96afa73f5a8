package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/gin-gonic/gin"
)

// HeaderPersistenceWarning carries a save failure back with a mutation that
// was applied in memory but not written.
const HeaderPersistenceWarning = "X-Persistence-Warning"

// reply writes body with status. A persistence error still returns the
// record, flagged through a header; any other error goes to fail.
func reply(c *gin.Context, status int, body any, err error) {
	if err != nil && !apperr.IsPersistence(err) {
		fail(c, err)
		return
	}
	if err != nil {
		c.Header(HeaderPersistenceWarning, err.Error())
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.Message(err), "fields": apperr.Fields(err)})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("http.failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func bindFilter(c *gin.Context) (model.Filter, bool) {
	var f model.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return f, false
	}
	return f, true
}

func create[In, Out any](c *gin.Context, fn func(context.Context, In) (Out, error)) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := fn(c.Request.Context(), in)
	reply(c, http.StatusCreated, out, err)
}

func update[P, Out any](c *gin.Context, fn func(context.Context, int, P) (Out, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	out, err := fn(c.Request.Context(), id, patch)
	reply(c, http.StatusOK, out, err)
}

func list[Out any](c *gin.Context, fn func(model.Filter) []Out) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, fn(f))
}
