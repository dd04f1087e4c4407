// Package handler adapts HTTP requests to domain service calls: decode,
// validate, invoke, envelope.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/service"
	"go-user-post-api/internal/transport/http/dto"
	"go-user-post-api/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Mount(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.POST("", h.create)
	users.GET("", h.list)
	users.GET("/count", h.count)
	users.GET("/:id", h.getByID)
	users.DELETE("/:id", h.delete)
}

func (h *UserHandler) create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	in, verrs := dto.BindCreateUser(body)
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	user, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, "User created successfully", gin.H{"user": user})
}

func (h *UserHandler) list(c *gin.Context) {
	pageNumber := atoiDefault(c.Query("pageNumber"), 0)
	pageSize := atoiDefault(c.Query("pageSize"), service.DefaultPageSize)

	users, page, err := h.svc.List(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	// The list envelope is the one response that is not {message, data}.
	c.JSON(http.StatusOK, gin.H{
		"message":    "All users fetched successfully",
		"users":      users,
		"pagination": page,
	})
}

func (h *UserHandler) count(c *gin.Context) {
	total, err := h.svc.Count(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, "Total number of user fetched successfully", gin.H{"total": total})
}

func (h *UserHandler) getByID(c *gin.Context) {
	id, verrs := dto.BindIDParam("id", c.Param("id"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, "User detailed fetched successfully", gin.H{"user": user})
}

func (h *UserHandler) delete(c *gin.Context) {
	id, verrs := dto.BindIDParam("id", c.Param("id"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Message(c, "User deleted successfully")
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
