package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"superstar/internal/domain"
	"superstar/internal/repository"
	"superstar/internal/service"
)

// orderView заказ вместе с полями для отображения
type orderView struct {
	domain.Order
	DeliveryName string `json:"deliveryName"`
	StatusBadge  string `json:"statusBadge"`
}

func newOrderView(o domain.Order) orderView {
	return orderView{
		Order:        o,
		DeliveryName: domain.DeliveryName(o.DeliveryCompany),
		StatusBadge:  o.Status.BadgeClass(),
	}
}

// @Summary List orders
// @Description Newest first. Optional exact status filter.
// @Tags orders
// @Produce json
// @Param status query string false "Status literal"
// @Success 200 {array} orderView
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	var filter *domain.OrderStatus
	if raw, ok := c.GetQuery("status"); ok {
		st, valid := domain.ParseStatus(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		filter = &st
	}
	list := s.orders.ListOrders(c)
	out := make([]orderView, 0, len(list))
	for _, o := range list {
		if filter != nil && o.Status != *filter {
			continue
		}
		out = append(out, newOrderView(o))
	}
	c.JSON(http.StatusOK, out)
}

type createOrderReq struct {
	CustomerName    string                    `json:"customerName" binding:"required"`
	Phone           string                    `json:"phone" binding:"required"`
	Address         string                    `json:"address" binding:"required"`
	Items           string                    `json:"items" binding:"required"`
	TotalAmount     float64                   `json:"totalAmount" binding:"required,gt=0"`
	Notes           string                    `json:"notes"`
	DeliveryCompany *domain.DeliveryCompanyID `json:"deliveryCompany"`
}

// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} orderView
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.CreateOrder(c, domain.NewOrder{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Address:         req.Address,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Notes:           req.Notes,
		DeliveryCompany: req.DeliveryCompany,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderView(*o))
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID" example(ORD-1001)
// @Success 200 {object} orderView
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(*o))
}

type updateStatusReq struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// @Summary Set order status
// @Description Any status may follow any other.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateStatusReq true "Status"
// @Success 200 {object} orderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (s *Server) updateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.UpdateStatus(c, c.Param("id"), req.Status)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(*o))
}

type assignDeliveryReq struct {
	Company domain.DeliveryCompanyID `json:"company" binding:"required"`
}

// @Summary Hand order to a delivery company
// @Description Also moves the order to "مع شركة التوصيل".
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body assignDeliveryReq true "Company"
// @Success 200 {object} orderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/delivery [patch]
func (s *Server) assignDelivery(c *gin.Context) {
	var req assignDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.AssignDelivery(c, c.Param("id"), req.Company)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(*o))
}

type statusOption struct {
	Value domain.OrderStatus `json:"value"`
	Badge string             `json:"badge"`
}

// @Summary Order statuses in workflow order
// @Tags reference
// @Produce json
// @Success 200 {array} statusOption
// @Router /statuses [get]
func (s *Server) listStatuses(c *gin.Context) {
	all := domain.AllStatuses()
	out := make([]statusOption, 0, len(all))
	for _, st := range all {
		out = append(out, statusOption{Value: st, Badge: st.BadgeClass()})
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Delivery companies
// @Tags reference
// @Produce json
// @Success 200 {array} domain.DeliveryCompany
// @Router /delivery-companies [get]
func (s *Server) listDeliveryCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, s.delivery.List(c))
}

// @Summary Per-company statistics
// @Tags reference
// @Produce json
// @Success 200 {array} domain.CompanyStat
// @Router /delivery-companies/stats [get]
func (s *Server) deliveryStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.delivery.Statistics(c))
}

// @Summary Seller dashboard cards
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.SellerSummary
// @Router /dashboard/seller [get]
func (s *Server) sellerDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.orders.SellerSummary(c, time.Now()))
}

// @Summary Admin dashboard cards
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.AdminSummary
// @Router /dashboard/admin [get]
func (s *Server) adminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.orders.AdminSummary(c))
}

func (s *Server) fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
