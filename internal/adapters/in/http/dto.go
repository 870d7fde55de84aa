package http

import (
	"encoding/json"
	"time"

	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/model/user"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Request bodies. Field presence and basic types are already checked by the
// OpenAPI validator; domain rules are checked by the command constructors.

type RegisterRequest struct {
	BusinessName string `json:"businessName"`
	AdminName    string `json:"adminName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
}

type WorkerCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OrderCreateRequest struct {
	CustomerName  string             `json:"customerName"`
	OrderName     string             `json:"orderName"`
	Date          openapi_types.Date `json:"date"`
	Location      string             `json:"location"`
	CeremonyDates []string           `json:"ceremonyDates"`
	Amount        decimal.Decimal    `json:"amount"`
	WorkerAmount  decimal.Decimal    `json:"workerAmount"`
	WorkerID      *string            `json:"workerId"`
}

type OrderUpdateRequest struct {
	CustomerName  *string             `json:"customerName"`
	OrderName     *string             `json:"orderName"`
	Date          *openapi_types.Date `json:"date"`
	Location      *string             `json:"location"`
	CeremonyDates []string            `json:"ceremonyDates"`
	Amount        *decimal.Decimal    `json:"amount"`
	WorkerAmount  *decimal.Decimal    `json:"workerAmount"`
	WorkerID      *string             `json:"workerId"`
	Unassign      bool                `json:"unassign"`
	Status        *string             `json:"status"`
}

type ProductCreateRequest struct {
	CustomerName  string             `json:"customerName"`
	ProductName   string             `json:"productName"`
	Date          openapi_types.Date `json:"date"`
	Amount        decimal.Decimal    `json:"amount"`
	PaymentMethod string             `json:"paymentMethod"`
}

type ProductUpdateRequest struct {
	CustomerName  *string             `json:"customerName"`
	ProductName   *string             `json:"productName"`
	Date          *openapi_types.Date `json:"date"`
	Amount        *decimal.Decimal    `json:"amount"`
	PaymentMethod *string             `json:"paymentMethod"`
}

// Responses.

type RegisterResponse struct {
	Success    bool        `json:"success"`
	BusinessID kernel.UUID `json:"businessId"`
}

type SessionUser struct {
	ID         kernel.UUID   `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Role       identity.Role `json:"role"`
	BusinessID kernel.UUID   `json:"businessId"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      SessionUser `json:"user"`
}

type LoginSurface struct {
	Role   identity.Role `json:"role"`
	Action string        `json:"action"`
}

type Order struct {
	ID            kernel.UUID        `json:"id"`
	CustomerName  string             `json:"customerName"`
	OrderName     string             `json:"orderName"`
	Date          openapi_types.Date `json:"date"`
	Location      string             `json:"location"`
	CeremonyDates []string           `json:"ceremonyDates"`
	Amount        json.Number        `json:"amount"`
	WorkerAmount  json.Number        `json:"workerAmount"`
	WorkerID      *kernel.UUID       `json:"workerId"`
	WorkerName    *string            `json:"workerName"`
	Status        order.Status       `json:"status"`
}

type Product struct {
	ID            kernel.UUID           `json:"id"`
	CustomerName  string                `json:"customerName"`
	ProductName   string                `json:"productName"`
	Date          openapi_types.Date    `json:"date"`
	Amount        json.Number           `json:"amount"`
	PaymentMethod product.PaymentMethod `json:"paymentMethod"`
	CreatedByID   kernel.UUID           `json:"createdById"`
	CreatedByName string                `json:"createdByName,omitempty"`
}

type Worker struct {
	ID             kernel.UUID `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	CreatedAt      time.Time   `json:"createdAt"`
	AssignedOrders int64       `json:"assignedOrders"`
	Sales          int64       `json:"sales"`
}

type SalesTrendPoint struct {
	Date   string      `json:"date"`
	Amount json.Number `json:"amount"`
	Count  int64       `json:"count"`
}

type WorkerPerformance struct {
	WorkerID         kernel.UUID `json:"workerId"`
	Name             string      `json:"name"`
	TotalSales       json.Number `json:"totalSales"`
	CompletedOrders  int64       `json:"completedOrders"`
	PendingOrders    int64       `json:"pendingOrders"`
	InProgressOrders int64       `json:"inProgressOrders"`
}

type OrderStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

type Dashboard struct {
	TotalRevenue      json.Number         `json:"totalRevenue"`
	OnlineRevenue     json.Number         `json:"onlineRevenue"`
	OfflineRevenue    json.Number         `json:"offlineRevenue"`
	SalesTrends       []SalesTrendPoint   `json:"salesTrends"`
	WorkerPerformance []WorkerPerformance `json:"workerPerformance"`
	OrderStats        OrderStats          `json:"orderStats"`
}

// money renders a decimal as a JSON number without going through float64.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func calendarDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: order.TruncateToDay(t)}
}

func ceremonyDates(dates []string) []string {
	if dates == nil {
		return make([]string, 0)
	}
	return dates
}

func sessionUserFromPrincipal(p identity.Principal) SessionUser {
	return SessionUser{
		ID:         p.UserID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       p.Role,
		BusinessID: p.BusinessID,
	}
}

// orderFromDomain renders a freshly written order. workerName is resolved by
// the caller because the aggregate only references the worker.
func orderFromDomain(o *order.Order, workerName string) Order {
	d := o.Details()
	resp := Order{
		ID:            o.ID(),
		CustomerName:  d.CustomerName,
		OrderName:     d.OrderName,
		Date:          calendarDate(d.Date),
		Location:      d.Location,
		CeremonyDates: ceremonyDates(d.CeremonyDates),
		Amount:        money(d.Amount),
		WorkerAmount:  money(d.WorkerAmount),
		WorkerID:      o.Worker(),
		Status:        o.Status(),
	}
	if resp.WorkerID != nil && workerName != "" {
		resp.WorkerName = &workerName
	}
	return resp
}

func orderFromQuery(o queries.ListOrdersQueryResponse) Order {
	resp := Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		OrderName:     o.OrderName,
		Date:          calendarDate(o.Date),
		Location:      o.Location,
		CeremonyDates: ceremonyDates(o.CeremonyDates),
		Amount:        money(o.Amount),
		WorkerAmount:  money(o.WorkerAmount),
		WorkerID:      o.WorkerID,
		Status:        o.Status,
	}
	if o.WorkerID != nil {
		name := o.WorkerName
		resp.WorkerName = &name
	}
	return resp
}

func productFromDomain(p *product.Product, createdByName string) Product {
	d := p.Details()
	return Product{
		ID:            p.ID(),
		CustomerName:  d.CustomerName,
		ProductName:   d.ProductName,
		Date:          calendarDate(d.Date),
		Amount:        money(d.Amount),
		PaymentMethod: d.PaymentMethod,
		CreatedByID:   p.CreatedByID(),
		CreatedByName: createdByName,
	}
}

func productFromQuery(p queries.ListProductsQueryResponse) Product {
	return Product{
		ID:            p.ID,
		CustomerName:  p.CustomerName,
		ProductName:   p.ProductName,
		Date:          calendarDate(p.Date),
		Amount:        money(p.Amount),
		PaymentMethod: p.PaymentMethod,
		CreatedByID:   p.CreatedByID,
		CreatedByName: p.CreatedByName,
	}
}

func workerFromDomain(u *user.User) Worker {
	return Worker{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}

func workerFromQuery(w queries.ListWorkersQueryResponse) Worker {
	return Worker{
		ID:             w.ID,
		Name:           w.Name,
		Email:          w.Email,
		CreatedAt:      w.CreatedAt,
		AssignedOrders: w.AssignedOrders,
		Sales:          w.Sales,
	}
}

func dashboardFromQuery(d queries.GetDashboardQueryResponse) Dashboard {
	resp := Dashboard{
		TotalRevenue:      money(d.TotalRevenue),
		OnlineRevenue:     money(d.OnlineRevenue),
		OfflineRevenue:    money(d.OfflineRevenue),
		SalesTrends:       make([]SalesTrendPoint, len(d.SalesTrends)),
		WorkerPerformance: make([]WorkerPerformance, len(d.WorkerPerformance)),
		OrderStats: OrderStats{
			Total:      d.OrderStats.Total,
			Pending:    d.OrderStats.Pending,
			InProgress: d.OrderStats.InProgress,
			Completed:  d.OrderStats.Completed,
		},
	}
	for i, p := range d.SalesTrends {
		resp.SalesTrends[i] = SalesTrendPoint{Date: p.Date, Amount: money(p.Amount), Count: p.Count}
	}
	for i, w := range d.WorkerPerformance {
		resp.WorkerPerformance[i] = WorkerPerformance{
			WorkerID:         w.WorkerID,
			Name:             w.Name,
			TotalSales:       money(w.TotalSales),
			CompletedOrders:  w.CompletedOrders,
			PendingOrders:    w.PendingOrders,
			InProgressOrders: w.InProgressOrders,
		}
	}
	return resp
}
