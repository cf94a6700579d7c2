package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/account"
)

// AccountHandler handles HTTP requests for user and currency management.
type AccountHandler struct {
	accountUC account.AccountUseCase
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountUC account.AccountUseCase) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// RegisterRoutes registers the account routes.
func (h *AccountHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.PATCH("/users/:id", h.RenameUser)
	e.DELETE("/users/:id", h.DeleteUser)

	e.GET("/currencies", h.ListCurrencies)
	e.POST("/currencies", h.CreateCurrency)
	e.PATCH("/currencies/:code", h.RenameCurrency)
	e.DELETE("/currencies/:code", h.DeleteCurrency)
}

type renameRequest struct {
	Name string `json:"name"`
}

// ListUsers returns all users that have not been deleted.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser creates a new user.
func (h *AccountHandler) CreateUser(c echo.Context) error {
	var user models.User
	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if err := h.accountUC.CreateUser(c.Request().Context(), &user); err != nil {
		if errors.Is(err, account.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, user)
}

// RenameUser updates a user's name.
func (h *AccountHandler) RenameUser(c echo.Context) error {
	var req renameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	id := c.Param("id")
	if err := h.accountUC.RenameUser(c.Request().Context(), id, req.Name); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found or deleted"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id, "name": req.Name})
}

// DeleteUser soft-deletes a user.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	if err := h.accountUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found or already deleted"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCurrencies returns all currencies that have not been deleted.
func (h *AccountHandler) ListCurrencies(c echo.Context) error {
	currencies, err := h.accountUC.ListCurrencies(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, currencies)
}

// CreateCurrency creates a new currency.
func (h *AccountHandler) CreateCurrency(c echo.Context) error {
	var currency models.Currency
	if err := c.Bind(&currency); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if err := h.accountUC.CreateCurrency(c.Request().Context(), &currency); err != nil {
		if errors.Is(err, account.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Currency already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, currency)
}

// RenameCurrency updates a currency's name.
func (h *AccountHandler) RenameCurrency(c echo.Context) error {
	var req renameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	code := c.Param("code")
	if err := h.accountUC.RenameCurrency(c.Request().Context(), code, req.Name); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Currency not found or deleted"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"code": code, "name": req.Name})
}

// DeleteCurrency soft-deletes a currency.
func (h *AccountHandler) DeleteCurrency(c echo.Context) error {
	if err := h.accountUC.DeleteCurrency(c.Request().Context(), c.Param("code")); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Currency not found or already deleted"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
