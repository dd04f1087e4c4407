package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-post-api/internal/service"
	"go-user-post-api/internal/transport/http/dto"
	"go-user-post-api/internal/transport/http/response"
)

type AddressHandler struct {
	svc *service.AddressService
	log *zap.Logger
}

func NewAddressHandler(svc *service.AddressService, log *zap.Logger) *AddressHandler {
	return &AddressHandler{svc: svc, log: log}
}

func (h *AddressHandler) Mount(api *gin.RouterGroup) {
	addresses := api.Group("/addresses")
	addresses.POST("", h.create)
	addresses.GET("/:userId", h.getByUserID)
	addresses.PATCH("/:userId", h.update)
}

func (h *AddressHandler) create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	in, verrs := dto.BindCreateAddress(body)
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	address, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, "Address created successfully", gin.H{"address": address})
}

func (h *AddressHandler) getByUserID(c *gin.Context) {
	userID, verrs := dto.BindIDParam("userId", c.Param("userId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	address, err := h.svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, "Address fetched successfully", gin.H{"address": address})
}

func (h *AddressHandler) update(c *gin.Context) {
	userID, verrs := dto.BindIDParam("userId", c.Param("userId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	in, verrs := dto.BindUpdateAddress(body)
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	address, err := h.svc.Update(c.Request.Context(), userID, in)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.OK(c, "Address updated successfully", gin.H{"address": address})
}
