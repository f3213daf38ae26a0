package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/internal/service"
)

type identifier struct {
	ID int64 `param:"id" json:"-"`
}

type updateCustomer struct {
	ID int64 `param:"id" json:"-"`
	model.CustomerFields
}

// CustomerHTTPHandler is http handler for clientes endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Post creates new customer
// @Summary     New customer
// @Description Creates new customer, absent fields are stored as null
// @Tags        clientes
// @Accept      json
// @Produce     json
// @Param       customer body     model.CustomerFields true "Customer data"
// @Success     200      {object} model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     415      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /clientes [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var f model.CustomerFields
	if err := c.Bind(&f); err != nil {
		return err
	}

	if err := c.Validate(&f); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), &f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns every customer ordered by id
// @Tags        clientes
// @Produce     json
// @Success     200 {array}  model.Customer
// @Failure     500 {object} echo.HTTPError
// @Router      /clientes [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Put replaces customer fields
// @Summary     Update customer
// @Description Overwrites every field of customer, absent fields are cleared. Returns number of updated rows
// @Tags        clientes
// @Accept      json
// @Produce     json
// @Param       id       path     int                  true "Customer id"
// @Param       customer body     model.CustomerFields true "Customer data"
// @Success     200      {integer} integer
// @Failure     400      {object} echo.HTTPError
// @Failure     415      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /clientes/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	var uc updateCustomer
	if err := c.Bind(&uc); err != nil {
		return err
	}

	if err := c.Validate(&uc); err != nil {
		return err
	}

	affected, err := h.customerSvc.UpdateByID(c.Request().Context(), uc.ID, &uc.CustomerFields)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, affected)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id. Returns number of deleted rows
// @Tags        clientes
// @Produce     json
// @Param       id  path     int true "Customer id"
// @Success     200 {integer} integer
// @Failure     400 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /clientes/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	var id identifier
	if err := c.Bind(&id); err != nil {
		return err
	}

	affected, err := h.customerSvc.DeleteByID(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, affected)
}
