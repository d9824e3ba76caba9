package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/api/dto"
	"github.com/spec-kit/laundry-service/internal/service"
	"github.com/spec-kit/laundry-service/pkg/util"
)

// UsersHandler exposes registration, login and lookup endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("invalid payload")
	}
	if errs := req.Validate(); errs.Has() {
		return util.NewValidationError("Validation failed", errs)
	}

	user, err := h.users.Register(c.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  user.ID.Hex(),
	})
}

// Login handles POST /users/login. No token or session is issued; the
// response is only an acknowledgment.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("invalid payload")
	}

	if err := h.users.Login(c.Context(), req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Login successful"})
}

// GetByID handles GET /users/:id. Returns the stored document as-is,
// password hash included.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
