package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/application/service"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	"github.com/nyamari/meatpos-api/internal/presentation/http/dto/request"
	"github.com/nyamari/meatpos-api/internal/presentation/http/dto/response"
)

// AdminHandler handles staff management and maintenance HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles listing staff accounts
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", users)
}

// CreateUser handles creating a staff account
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid user data: "+err.Error())
		return
	}

	user, err := h.adminService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     enum.Role(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", user)
}

// DeleteUser handles deleting a staff account
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	callerID := GetUserID(c)
	if callerID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), id, *callerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}

// ResetData wipes all sales and catalog data. Accounts and settings remain.
func (h *AdminHandler) ResetData(c *gin.Context) {
	if err := h.adminService.ResetData(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "All sales and product data deleted", nil)
}
