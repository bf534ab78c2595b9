package api

import (
	"net/http"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required"`
	StartDate *string `json:"startDate"` // YYYY-MM-DD, defaults to today
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name             *string  `json:"name"`
	LeetCodeHandle   *string  `json:"leetcodeHandle"`
	CodeChefHandle   *string  `json:"codechefHandle"`
	CodeforcesHandle *string  `json:"codeforcesHandle"`
	TargetWeight     *float64 `json:"targetWeight"`
	StartDate        *string  `json:"startDate"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Role             domain.Role `json:"role"`
	StartDate        string      `json:"startDate"`
	TargetWeight     *float64    `json:"targetWeight,omitempty"`
	LeetCodeHandle   string      `json:"leetcodeHandle,omitempty"`
	CodeChefHandle   string      `json:"codechefHandle,omitempty"`
	CodeforcesHandle string      `json:"codeforcesHandle,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} gin.H "Invalid input or user already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	startDate, ok := parseOptionalDay(c, req.StartDate)
	if !ok {
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		StartDate: startDate,
	})
	if err != nil {
		respondWithServiceError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: MapUserToResponse(user)})
}

// Login godoc
// @Summary Log in a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} gin.H "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(c, err, "log in")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: MapUserToResponse(user)})
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "load profile")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	startDate, ok := parseOptionalDay(c, req.StartDate)
	if !ok {
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		Name:             req.Name,
		LeetCodeHandle:   req.LeetCodeHandle,
		CodeChefHandle:   req.CodeChefHandle,
		CodeforcesHandle: req.CodeforcesHandle,
		TargetWeight:     req.TargetWeight,
		StartDate:        startDate,
	})
	if err != nil {
		respondWithServiceError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:               user.ID.Hex(),
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		StartDate:        domain.FormatDay(user.StartDate),
		TargetWeight:     user.TargetWeight,
		LeetCodeHandle:   user.LeetCodeHandle,
		CodeChefHandle:   user.CodeChefHandle,
		CodeforcesHandle: user.CodeforcesHandle,
		CreatedAt:        user.CreatedAt,
	}
}
