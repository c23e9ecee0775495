// Package http provides the inbound HTTP adapter. Handlers stay thin:
// bind the request, build a command or query, hand it to the application
// layer and render the result as JSON.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	checkoutHandler       commands.CheckoutCommandHandler
	registerDriverHandler commands.RegisterDriverCommandHandler

	getMenuHandler          queries.GetMenuQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getDeliveryBoardHandler queries.GetDeliveryBoardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getDeliveryBoardHandler queries.GetDeliveryBoardQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:         checkoutHandler,
		registerDriverHandler:   registerDriverHandler,
		getMenuHandler:          getMenuHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getDeliveryBoardHandler: getDeliveryBoardHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/checkout", s.Checkout)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers/board", s.GetDeliveryBoard)
	api.GET("/menu", s.GetMenu)
}

// ErrorResponse is the JSON body returned on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckoutItemRequest is one cart line in a checkout request. Kind is one
// of "Pizza", "Drink", "Dessert".
type CheckoutItemRequest struct {
	Kind      string `json:"kind"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the body of POST /api/v1/orders/checkout.
type CheckoutRequest struct {
	CustomerID   string                `json:"customer_id"`
	Items        []CheckoutItemRequest `json:"items"`
	DiscountCode string                `json:"discount_code"`
}

// CheckoutResponse reports the committed order.
type CheckoutResponse struct {
	OrderID    string   `json:"order_id"`
	Status     string   `json:"status"`
	Subtotal   int64    `json:"subtotal_cents"`
	Discount   int64    `json:"discount_cents"`
	FinalTotal int64    `json:"final_total_cents"`
	Messages   []string `json:"messages"`
}

// Checkout handles POST /api/v1/orders/checkout.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer ID",
		})
	}

	lines := make([]commands.CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		kind, kindErr := order.ItemKindFromString(item.Kind)
		if kindErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid item kind: " + item.Kind,
			})
		}

		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid product ID",
			})
		}

		lines = append(lines, commands.CheckoutLine{
			Kind:      kind,
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID, lines, req.DiscountCode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart: " + err.Error(),
		})
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process checkout",
		})
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:    result.OrderID.String(),
		Status:     result.Status.String(),
		Subtotal:   result.Subtotal.Cents(),
		Discount:   result.Discount.Cents(),
		FinalTotal: result.FinalTotal.Cents(),
		Messages:   result.Messages,
	})
}

// ActiveOrderResponse is one row of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	DriverName   string    `json:"driver_name,omitempty"`
	Status       string    `json:"status"`
	ItemCount    int       `json:"item_count"`
	Discount     int64     `json:"discount_cents"`
	FinalTotal   int64     `json:"final_total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			OrderID:      o.ID.String(),
			CustomerName: o.CustomerName,
			DriverName:   o.DriverName,
			Status:       o.Status,
			ItemCount:    o.ItemCount,
			Discount:     o.Discount.Cents(),
			FinalTotal:   o.FinalTotal.Cents(),
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriverRequest is the body of POST /api/v1/drivers. BirthDate
// uses the format 2006-01-02.
type RegisterDriverRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	BirthDate  string `json:"birth_date"`
	PostalCode string `json:"postal_code"`
}

// RegisterDriverResponse reports the new driver's identifier.
type RegisterDriverResponse struct {
	DriverID string `json:"driver_id"`
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid birth date, expected YYYY-MM-DD",
		})
	}

	cmd, err := commands.NewRegisterDriverCommand(req.FirstName, req.LastName, req.Email, birthDate, req.PostalCode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver data: " + err.Error(),
		})
	}

	driverID, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to register driver",
		})
	}

	return ctx.JSON(http.StatusCreated, RegisterDriverResponse{DriverID: driverID.String()})
}

// DeliveryBoardEntryResponse is one row of GET /api/v1/drivers/board.
type DeliveryBoardEntryResponse struct {
	DriverID     string `json:"driver_id"`
	Name         string `json:"name"`
	PostalCode   string `json:"postal_code"`
	Availability string `json:"availability"`
}

// GetDeliveryBoard handles GET /api/v1/drivers/board.
func (s *Server) GetDeliveryBoard(ctx echo.Context) error {
	drivers, err := s.getDeliveryBoardHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryBoardQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery board",
		})
	}

	response := make([]DeliveryBoardEntryResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DeliveryBoardEntryResponse{
			DriverID:     d.ID.String(),
			Name:         d.Name,
			PostalCode:   d.PostalCode,
			Availability: d.Availability,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MenuPizzaResponse is one pizza of GET /api/v1/menu.
type MenuPizzaResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        int64    `json:"price_cents"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	Ingredients  []string `json:"ingredients"`
}

// MenuProductResponse is one drink or dessert of GET /api/v1/menu.
type MenuProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price_cents"`
}

// MenuResponse is the body of GET /api/v1/menu.
type MenuResponse struct {
	Pizzas   []MenuPizzaResponse   `json:"pizzas"`
	Drinks   []MenuProductResponse `json:"drinks"`
	Desserts []MenuProductResponse `json:"desserts"`
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := MenuResponse{
		Pizzas:   make([]MenuPizzaResponse, len(menu.Pizzas)),
		Drinks:   make([]MenuProductResponse, len(menu.Drinks)),
		Desserts: make([]MenuProductResponse, len(menu.Desserts)),
	}

	for i, p := range menu.Pizzas {
		response.Pizzas[i] = MenuPizzaResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price.Cents(),
			IsVegetarian: p.IsVegetarian,
			IsVegan:      p.IsVegan,
			Ingredients:  p.Ingredients,
		}
	}
	for i, d := range menu.Drinks {
		response.Drinks[i] = MenuProductResponse{ID: d.ID.String(), Name: d.Name, Price: d.Price.Cents()}
	}
	for i, d := range menu.Desserts {
		response.Desserts[i] = MenuProductResponse{ID: d.ID.String(), Name: d.Name, Price: d.Price.Cents()}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
