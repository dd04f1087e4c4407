package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/service"
	"go-user-post-api/internal/transport/http/dto"
	"go-user-post-api/internal/transport/http/response"
)

type PostHandler struct {
	svc *service.PostService
	log *zap.Logger
}

func NewPostHandler(svc *service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: log}
}

func (h *PostHandler) Mount(api *gin.RouterGroup) {
	posts := api.Group("/posts")
	posts.GET("", h.list)
	posts.POST("", h.create)
	posts.DELETE("/:id", h.delete)
}

func (h *PostHandler) list(c *gin.Context) {
	// An unparsable userId filter is ignored rather than rejected; the
	// listing has no failure mode.
	var userID *uint
	if raw := c.Query("userId"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil && n > 0 {
			id := uint(n)
			userID = &id
		}
	}
	posts, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	response.OK(c, "Posts fetched successfully", gin.H{"posts": posts})
}

func (h *PostHandler) create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	in, verrs := dto.BindCreatePost(body)
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	post, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, "Post created successfully", gin.H{"post": post})
}

func (h *PostHandler) delete(c *gin.Context) {
	id, verrs := dto.BindIDParam("id", c.Param("id"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Message(c, "Post deleted successfully")
}
