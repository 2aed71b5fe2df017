package dto

import "github.com/projectkrs/krs/internal/domain/model"

// OrderResponse is the wire form of a stored order. Unknown values are encoded as null.
type OrderResponse struct {
	ID             int64    `json:"id"`
	OrderCode      string   `json:"order_code"`
	Items          string   `json:"items"`
	Total          float64  `json:"total"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Pincode        string   `json:"pincode"`
	Timestamp      string   `json:"timestamp"`
	SelfieFilename *string  `json:"selfie_filename"`
	IPAddress      *string  `json:"ip_address"`
	CityAuto       *string  `json:"city_auto"`
	RegionAuto     *string  `json:"region_auto"`
	CountryAuto    *string  `json:"country_auto"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
}

// NewOrderResponse maps a domain order to its wire form.
func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		OrderCode:      o.Code,
		Items:          o.Items,
		Total:          o.Total,
		Name:           o.Customer.Name,
		Email:          o.Customer.Email,
		Phone:          o.Customer.Phone,
		Address:        o.Customer.Address,
		City:           o.Customer.City,
		Pincode:        o.Customer.Pincode,
		Timestamp:      o.Timestamp,
		SelfieFilename: o.SelfieFilename,
		IPAddress:      o.IPAddress,
		CityAuto:       o.Location.City,
		RegionAuto:     o.Location.Region,
		CountryAuto:    o.Location.Country,
		Lat:            o.Location.Lat,
		Lng:            o.Location.Lng,
	}
}

// SaveOrderRequest lists the form fields accepted by POST /save_order.
// Every field is optional; Total stays raw so that bad numbers coerce to zero instead of failing the bind.
type SaveOrderRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
	City    string `form:"city"`
	Pincode string `form:"pincode"`
	Items   string `form:"items"`
	Total   string `form:"total"`
}

// SaveOrderResponse acknowledges a stored order.
type SaveOrderResponse struct {
	OK        bool   `json:"ok"`
	OrderCode string `json:"order_code"`
	Timestamp string `json:"timestamp"`
}

// SaveSelfieRequest lists the text fields accepted by POST /save_selfie.
type SaveSelfieRequest struct {
	OrderID string `form:"order_id"`
}

// SaveSelfieResponse acknowledges a stored upload.
type SaveSelfieResponse struct {
	OK       bool   `json:"ok"`
	Filename string `json:"filename"`
}

// GetOrderResponse is either {ok:true, order} or {ok:false, message}.
type GetOrderResponse struct {
	OK      bool           `json:"ok"`
	Order   *OrderResponse `json:"order,omitempty"`
	Message string         `json:"message,omitempty"`
}

// StatusResponse is the body of failures and of the health probe.
type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is returned for missing files.
type ErrorResponse struct {
	Error string `json:"error"`
}
