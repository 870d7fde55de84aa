package queries_test

import (
	"context"
	"testing"
	"time"

	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetOverdueOrdersQueryHandlerTestSuite struct {
	tenantFixture
	handler queries.GetOverdueOrdersQueryHandler
}

func TestGetOverdueOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOverdueOrdersQueryHandlerTestSuite))
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.tenantFixture.SetupSuite()
	suite.handler = queries.NewGetOverdueOrdersQueryHandler(suite.db)
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TestHandle_CountsPastUncompletedOrdersPerBusiness() {
	suite.addOrder(suite.acme, "late pending", day("2024-06-01"), nil, order.Pending)
	suite.addOrder(suite.acme, "late in progress", day("2024-06-06"), suite.bob, order.InProgress)
	suite.addOrder(suite.acme, "late done", day("2024-06-01"), suite.bob, order.Completed)
	suite.addOrder(suite.acme, "today", day("2024-06-07"), nil, order.Pending)
	suite.addOrder(suite.globex, "future", day("2024-06-10"), nil, order.Pending)

	asOf := time.Date(2024, 6, 7, 23, 0, 0, 0, time.UTC)
	result, err := suite.handler.Handle(context.Background(), queries.NewGetOverdueOrdersQuery(asOf))
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal("Acme", result[0].BusinessName)
	suite.True(result[0].BusinessID.IsEqual(suite.acme.ID()))
	suite.Equal(int64(2), result[0].Overdue)
	suite.Equal("Globex", result[1].BusinessName)
	suite.Equal(int64(0), result[1].Overdue)
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetOverdueOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOverdueOrdersQueryIsNotConstructed)
	suite.Nil(result)
}
