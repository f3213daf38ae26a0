package infra

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/clientes/docs" // swagger spec
	"github.com/umalmyha/clientes/internal/handlers"
	"github.com/umalmyha/clientes/internal/middleware"
	"github.com/umalmyha/clientes/internal/service"
	"github.com/umalmyha/clientes/internal/validation"
)

// Router builds echo instance serving clientes API
func Router(customerSvc service.CustomerService, logger logrus.FieldLogger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	v, err := validation.Echo()
	if err != nil {
		return nil, err
	}
	e.Validator = v
	e.Binder = validation.NewStrictBinder()
	e.HTTPErrorHandler = httpErrorHandler(e, logger)

	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	clientes := e.Group("/clientes")
	clientes.POST("", customerHandler.Post)
	clientes.GET("", customerHandler.GetAll)
	clientes.PUT("/:id", customerHandler.Put)
	clientes.DELETE("/:id", customerHandler.DeleteByID)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func httpErrorHandler(e *echo.Echo, logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)

		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			logger.WithField("request_id", reqID).Debugf("invalid payload - %v", err)
			if !c.Response().Committed {
				if err := c.JSON(http.StatusBadRequest, pldErr); err != nil {
					logger.WithField("request_id", reqID).Errorf("failed to send error response - %v", err)
				}
			}
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
			logger.WithField("request_id", reqID).Debugf("request rejected - %v", err)
		} else {
			logger.WithField("request_id", reqID).Errorf("error occurred on request processing - %v", err)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
