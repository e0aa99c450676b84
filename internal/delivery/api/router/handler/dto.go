package handler

import (
	"time"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response bodies. Entities are mapped explicitly so secrets such as the
// pending OTP never leave the server.

type UserResponse struct {
	ID             uuid.UUID                   `json:"id"`
	Code           string                      `json:"code"`
	Username       string                      `json:"username"`
	Email          string                      `json:"email"`
	Phone          string                      `json:"phone,omitempty"`
	Role           entity.Role                 `json:"role"`
	IsActive       bool                        `json:"is_active"`
	FullName       string                      `json:"full_name,omitempty"`
	FirstName      string                      `json:"first_name,omitempty"`
	LastName       string                      `json:"last_name,omitempty"`
	Country        string                      `json:"country,omitempty"`
	ProfilePicture string                      `json:"profile_picture,omitempty"`
	Notifications  entity.NotificationSettings `json:"notifications"`
	CreatedAt      time.Time                   `json:"created_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:             u.ID,
		Code:           u.Code,
		Username:       u.Username,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		IsActive:       u.IsActive,
		FullName:       u.FullName,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Country:        u.Country,
		ProfilePicture: u.ProfilePicture,
		Notifications:  u.Notifications,
		CreatedAt:      u.CreatedAt,
	}
}

type PricingRuleResponse struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	BasePrice        string    `json:"base_price"`
	PrintCost        string    `json:"print_cost"`
	AIDesignCost     string    `json:"ai_design_cost"`
	CustomUploadCost string    `json:"custom_upload_cost"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newPricingRuleResponse(r *entity.PricingRule) *PricingRuleResponse {
	if r == nil {
		return nil
	}

	return &PricingRuleResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		BasePrice:        money(r.BasePrice),
		PrintCost:        money(r.PrintCost),
		AIDesignCost:     money(r.AIDesignCost),
		CustomUploadCost: money(r.CustomUploadCost),
		UpdatedAt:        r.UpdatedAt,
	}
}

type ProductResponse struct {
	ID           uuid.UUID            `json:"id"`
	Code         string               `json:"code"`
	Name         string               `json:"name"`
	ApparelType  entity.ApparelType   `json:"apparel_type"`
	Sizes        []entity.Size        `json:"sizes"`
	ColorOptions []string             `json:"color_options"`
	PrintMethods []entity.PrintMethod `json:"print_methods"`
	Description  string               `json:"description,omitempty"`
	Image        string               `json:"image,omitempty"`
	IsActive     bool                 `json:"is_active"`
	PricingRule  *PricingRuleResponse `json:"pricing_rule,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func newProductResponse(p *entity.ApparelProduct) *ProductResponse {
	if p == nil {
		return nil
	}

	return &ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		ApparelType:  p.ApparelType,
		Sizes:        p.Sizes,
		ColorOptions: p.ColorOptions,
		PrintMethods: p.PrintMethods,
		Description:  p.Description,
		Image:        p.Image,
		IsActive:     p.IsActive,
		PricingRule:  newPricingRuleResponse(p.PricingRule),
		CreatedAt:    p.CreatedAt,
	}
}

type DesignResponse struct {
	ID         uuid.UUID         `json:"id"`
	Code       string            `json:"code"`
	ProductID  uuid.UUID         `json:"product_id"`
	DesignType entity.DesignType `json:"design_type"`
	Prompt     string            `json:"prompt,omitempty"`
	Artwork    string            `json:"artwork,omitempty"`
	Font       string            `json:"font,omitempty"`
	Style      string            `json:"style,omitempty"`
	Size       entity.Size       `json:"size"`
	Color      string            `json:"color"`
	Quantity   int               `json:"quantity"`
	IsDraft    bool              `json:"is_draft"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func newDesignResponse(d *entity.UserDesign) *DesignResponse {
	if d == nil {
		return nil
	}

	return &DesignResponse{
		ID:         d.ID,
		Code:       d.Code,
		ProductID:  d.ProductID,
		DesignType: d.DesignType,
		Prompt:     d.Prompt,
		Artwork:    d.Artwork,
		Font:       d.Font,
		Style:      d.Style,
		Size:       d.Size,
		Color:      d.Color,
		Quantity:   d.Quantity,
		IsDraft:    d.IsDraft,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type OrderResponse struct {
	ID                    uuid.UUID              `json:"id"`
	Code                  string                 `json:"code"`
	UserID                uuid.UUID              `json:"user_id"`
	DesignID              uuid.UUID              `json:"design_id"`
	ProductID             uuid.UUID              `json:"product_id"`
	ShippingAddress       entity.AddressSnapshot `json:"shipping_address"`
	Quantity              int                    `json:"quantity"`
	PaymentStatus         entity.PaymentStatus   `json:"payment_status"`
	Status                entity.OrderStatus     `json:"status"`
	Tracking              entity.TrackingStatus  `json:"tracking"`
	Subtotal              string                 `json:"subtotal"`
	Discount              string                 `json:"discount"`
	ShippingFee           string                 `json:"shipping_fee"`
	Total                 string                 `json:"total"`
	EstimatedDeliveryDate string                 `json:"estimated_delivery_date"`
	IsActive              bool                   `json:"is_active"`
	CancelledAt           *time.Time             `json:"cancelled_at,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
}

func newOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	return &OrderResponse{
		ID:                    o.ID,
		Code:                  o.Code,
		UserID:                o.UserID,
		DesignID:              o.DesignID,
		ProductID:             o.ProductID,
		ShippingAddress:       o.ShippingAddress,
		Quantity:              o.Quantity,
		PaymentStatus:         o.PaymentStatus,
		Status:                o.Status,
		Tracking:              o.Tracking,
		Subtotal:              money(o.Subtotal),
		Discount:              money(o.Discount),
		ShippingFee:           money(o.ShippingFee),
		Total:                 money(o.Total),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate.Format(time.DateOnly),
		IsActive:              o.IsActive,
		CancelledAt:           o.CancelledAt,
		CreatedAt:             o.CreatedAt,
	}
}

type AddressResponse struct {
	ID            uuid.UUID          `json:"id"`
	Code          string             `json:"code"`
	Kind          entity.AddressKind `json:"kind"`
	FullName      string             `json:"full_name"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email,omitempty"`
	Street        string             `json:"street"`
	City          string             `json:"city"`
	PostalCode    string             `json:"postal_code"`
	ProvinceState string             `json:"province_state,omitempty"`
	Country       string             `json:"country"`
	IsDefault     bool               `json:"is_default"`
	CreatedAt     time.Time          `json:"created_at"`
}

func newAddressResponse(a *entity.Address) *AddressResponse {
	if a == nil {
		return nil
	}

	return &AddressResponse{
		ID:            a.ID,
		Code:          a.Code,
		Kind:          a.Kind,
		FullName:      a.FullName,
		Phone:         a.Phone,
		Email:         a.Email,
		Street:        a.Street,
		City:          a.City,
		PostalCode:    a.PostalCode,
		ProvinceState: a.ProvinceState,
		Country:       a.Country,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
	}
}

// DeviceResponse leaves out the FCM token; clients already hold it.
type DeviceResponse struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDeviceResponse(d *entity.UserDevice) *DeviceResponse {
	if d == nil {
		return nil
	}

	return &DeviceResponse{
		ID:        d.ID,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		UpdatedAt: d.UpdatedAt,
	}
}

// mapAll converts a slice of entities with fn.
func mapAll[E any, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
