package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/internal/repository"
)

// CustomerService represents customer use cases
type CustomerService interface {
	Create(context.Context, *model.CustomerFields) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	UpdateByID(context.Context, int64, *model.CustomerFields) (int64, error)
	DeleteByID(context.Context, int64) (int64, error)
}

type customerService struct {
	customerRps repository.CustomerRepository
	logger      logrus.FieldLogger
}

// NewCustomerService builds customer service
func NewCustomerService(customerRps repository.CustomerRepository, logger logrus.FieldLogger) CustomerService {
	return &customerService{customerRps: customerRps, logger: logger}
}

func (s *customerService) Create(ctx context.Context, f *model.CustomerFields) (*model.Customer, error) {
	c, err := s.customerRps.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("id", c.ID).Debug("customer created")
	return c, nil
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

// UpdateByID overwrites every field of customer, zero affected rows means customer doesn't exist
func (s *customerService) UpdateByID(ctx context.Context, id int64, f *model.CustomerFields) (int64, error) {
	affected, err := s.customerRps.UpdateByID(ctx, id, f)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{"id": id, "affected": affected}).Debug("customer updated")
	return affected, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id int64) (int64, error) {
	affected, err := s.customerRps.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{"id": id, "affected": affected}).Debug("customer deleted")
	return affected, nil
}
