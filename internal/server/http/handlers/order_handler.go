package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
	"github.com/projectkrs/krs/internal/domain/model"
	"github.com/projectkrs/krs/internal/server/http/dto"
	"github.com/projectkrs/krs/internal/server/http/middleware"
)

const defaultItems = "[]"

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Save handles POST /save_order.
func (h *OrderHandler) Save(c *gin.Context) {
	if err := parseForm(c); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{OK: false, Message: "invalid form"})
		return
	}

	var req dto.SaveOrderRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{OK: false, Message: "invalid form"})
		return
	}
	if _, ok := c.GetPostForm("items"); !ok {
		req.Items = defaultItems
	}

	draft := model.OrderDraft{
		Customer: model.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
			City:    req.City,
			Pincode: req.Pincode,
		},
		Items: req.Items,
		Total: parseTotal(req.Total),
	}

	var selfie *model.Upload
	header, err := c.FormFile("selfie")
	switch {
	case err == nil:
		file, err := header.Open()
		if err != nil {
			internalError(c, fmt.Errorf("open selfie: %w", err))
			return
		}
		defer file.Close()
		selfie = &model.Upload{Filename: header.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		internalError(c, fmt.Errorf("read selfie: %w", err))
		return
	}

	receipt, err := h.facade.SubmitOrder(c.Request.Context(), draft, selfie, c.ClientIP())
	if err != nil {
		internalError(c, err)
		return
	}
	c.Set(middleware.OrderIDKey, receipt.ID)

	c.JSON(http.StatusOK, dto.SaveOrderResponse{OK: true, OrderCode: receipt.Code, Timestamp: receipt.Timestamp})
}

// SaveSelfie handles POST /save_selfie.
func (h *OrderHandler) SaveSelfie(c *gin.Context) {
	if err := parseForm(c); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{OK: false, Message: "invalid form"})
		return
	}

	var req dto.SaveSelfieRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{OK: false, Message: "invalid form"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{OK: false, Message: "file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		internalError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	name, err := h.facade.AttachSelfie(c.Request.Context(), req.OrderID, model.Upload{Filename: header.Filename, Content: file})
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SaveSelfieResponse{OK: true, Filename: name})
}

// List handles GET /get_orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.NewOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /get_order?order_id=. A missing order is a normal {ok:false} result.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Query("order_id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.GetOrderResponse{OK: false, Message: messageNotFound})
			return
		}
		internalError(c, err)
		return
	}

	resp := dto.NewOrderResponse(*order)
	c.JSON(http.StatusOK, dto.GetOrderResponse{OK: true, Order: &resp})
}
