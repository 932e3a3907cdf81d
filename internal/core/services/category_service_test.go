package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/core/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("FindCategoryByCode", ctx, "UND").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(cat domain.Category) bool {
		return cat.Name == "Undangan" && cat.Code == "UND" && cat.CategoryID != ""
	})).Return(nil).Once()

	cat, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Undangan",
		Code: "UND",
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("UND", cat.Code)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateCode() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("FindCategoryByCode", ctx, "UND").
		Return(&domain.Category{CategoryID: "existing", Code: "UND"}, nil).Once()

	cat, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Undangan",
		Code: "UND",
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(cat)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Referenced() {
	ctx := context.Background()
	categoryID := "cat-1"

	suite.mockCategoryRepo.On("CountCategoryReferences", ctx, categoryID).Return(int64(3), nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	categoryID := "cat-2"

	suite.mockCategoryRepo.On("CountCategoryReferences", ctx, categoryID).Return(int64(0), nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
