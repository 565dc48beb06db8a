package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/adapter/http/mapper"
	"github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/adapter/http/validation"
	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
	"github.com/zulian026/TaskNest/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
	clock           ports.Clock
}

func NewCategoryHandler(categoryService ports.CategoryService, clock ports.Clock) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, clock: clock}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	categories, err := h.categoryService.List(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToCategoryItems(categories)))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	categoryID, ok := parseID(c, lang, apierrors.MsgInvalidCategoryID)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), userID, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFetchCategory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToCategoryDetail(category, h.clock.Now())))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	if fields := validation.CreateCategoryFields(req); len(fields) > 0 {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), domain.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		zap.L().Error("failed to create category", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCategory, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.WithMessage("Category created successfully", mapper.ToCategoryItem(category)))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	categoryID, ok := parseID(c, lang, apierrors.MsgInvalidCategoryID)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	if fields := validation.UpdateCategoryFields(req); len(fields) > 0 {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), userID, categoryID, validation.BuildUpdateCategoryInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateCategory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.WithMessage("Category updated successfully", mapper.ToCategoryItem(category)))
}

// DeleteCategory removes the category; tasks that referenced it keep existing
// without a category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	categoryID, ok := parseID(c, lang, apierrors.MsgInvalidCategoryID)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), userID, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteCategory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Message("Category deleted successfully"))
}

func (h *CategoryHandler) respondInvalidPayload(c *gin.Context, lang string, err error) {
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
	)
}
