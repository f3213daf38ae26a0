package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/clientes/internal/model"
	rpsMocks "github.com/umalmyha/clientes/internal/repository/mocks"
)

func strPtr(s string) *string {
	return &s
}

type customerTestData struct {
	ctx      context.Context
	fields   *model.CustomerFields
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc     CustomerService
	customerRpsMock *rpsMocks.CustomerRepository
	logHook         *test.Hook
	testData        *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	phone := int32(5551234)
	fields := model.CustomerFields{
		Nombre:    strPtr("Ana"),
		Correo:    strPtr("a@x.com"),
		Telefono:  &phone,
		Direccion: strPtr("Main St"),
	}

	s.testData = &customerTestData{
		ctx:      context.Background(),
		fields:   &fields,
		customer: &model.Customer{ID: 1, CustomerFields: fields},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s.logHook = hook
	s.customerRpsMock = rpsMocks.NewCustomerRepository(s.T())
	s.customerSvc = NewCustomerService(s.customerRpsMock, logger)
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Create", ctx, s.testData.fields).Return(s.testData.customer, nil).Once()

	s.T().Log("customer must be created and returned with id")
	{
		c, err := s.customerSvc.Create(ctx, s.testData.fields)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(s.testData.customer, c, "created customer must be returned as is")
		s.Assert().Equal(int64(1), s.logHook.LastEntry().Data["id"], "creation must be logged")
	}
}

func (s *customerServiceTestSuite) TestCreateFailed() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Create", ctx, s.testData.fields).Return(nil, errors.New("connection lost")).Once()

	s.T().Log("repository error must be raised up")
	{
		c, err := s.customerSvc.Create(ctx, s.testData.fields)
		s.Assert().Error(err, "repository failed but no error raised")
		s.Assert().Nil(c, "no customer must be returned")
	}
}

func (s *customerServiceTestSuite) TestFindAllSuccessfully() {
	ctx := s.testData.ctx
	customers := []*model.Customer{s.testData.customer}

	s.customerRpsMock.On("FindAll", ctx).Return(customers, nil).Once()

	s.T().Log("customers must be found in data source")
	{
		found, err := s.customerSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customers, found, "customers must be returned untransformed")
	}
}

func (s *customerServiceTestSuite) TestUpdateByIDReturnsAffected() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("UpdateByID", ctx, int64(1), s.testData.fields).Return(int64(1), nil).Once()
	s.customerRpsMock.On("UpdateByID", ctx, int64(42), s.testData.fields).Return(int64(0), nil).Once()

	s.T().Log("existing customer is updated")
	{
		affected, err := s.customerSvc.UpdateByID(ctx, 1, s.testData.fields)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(int64(1), affected, "one row must be affected")
	}

	s.T().Log("missing customer is not an error")
	{
		affected, err := s.customerSvc.UpdateByID(ctx, 42, s.testData.fields)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(int64(0), affected, "no rows must be affected")
	}
}

func (s *customerServiceTestSuite) TestUpdateByIDFailed() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("UpdateByID", ctx, int64(1), s.testData.fields).Return(int64(0), errors.New("db err")).Once()

	s.T().Log("repository error must be raised up")
	{
		_, err := s.customerSvc.UpdateByID(ctx, 1, s.testData.fields)
		s.Assert().Error(err, "repository failed but no error raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDReturnsAffected() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("DeleteByID", ctx, int64(1)).Return(int64(1), nil).Once()

	s.T().Log("deleted successfully")
	{
		affected, err := s.customerSvc.DeleteByID(ctx, 1)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(int64(1), affected, "one row must be affected")
		s.customerRpsMock.AssertCalled(s.T(), "DeleteByID", ctx, int64(1))
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDFailed() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("DeleteByID", ctx, int64(1)).Return(int64(0), errors.New("db err")).Once()

	s.T().Log("repository error must be raised up")
	{
		_, err := s.customerSvc.DeleteByID(ctx, 1)
		s.Assert().Error(err, "repository failed but no error raised")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
