package user

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vidtube/internal/pkg/response"
)

// Handler manages all HTTP interactions for accounts. It stages multipart
// files into tempDir before the service runs, and is the only place that
// writes to the response.
type Handler struct {
	service *Service
	cookies *CookieManager
	tempDir string
}

func NewHandler(service *Service, cookies *CookieManager, tempDir string) *Handler {
	return &Handler{service: service, cookies: cookies, tempDir: tempDir}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	users := v1.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/refresh-token", h.RefreshToken)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	users := protected.Group("/users")
	{
		users.POST("/logout", h.Logout)
		users.GET("/me", h.Me)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "All fields are required")
		return
	}

	avatarPath, err := h.stageFile(c, "avatar")
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}
	coverPath, err := h.stageFile(c, "coverImage")
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}
	req.AvatarPath = avatarPath
	req.CoverImagePath = coverPath

	// Staged files must never outlive the request. The pipeline deletes
	// whatever it consumes; this catches files abandoned by an early abort.
	defer removeStaged(avatarPath, coverPath)

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": created}, "User registered successfully")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "Identifier and password are required")
		return
	}

	u, pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Err(c, err)
		return
	}

	h.cookies.Attach(c, pair)
	response.Success(c, http.StatusOK, LoginResponse{
		User:         *u,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "User logged in successfully")
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Failure(c, http.StatusUnauthorized, "Unauthorized request")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.Err(c, err)
		return
	}

	h.cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

func (h *Handler) RefreshToken(c *gin.Context) {
	presented, err := c.Cookie(RefreshCookieName)
	if err != nil || presented == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.service.Refresh(c.Request.Context(), presented)
	if err != nil {
		response.Err(c, err)
		return
	}

	h.cookies.Attach(c, pair)
	response.Success(c, http.StatusOK, pair, "Access token refreshed")
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Failure(c, http.StatusUnauthorized, "Unauthorized request")
		return
	}

	u, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u}, "Current user fetched successfully")
}

// stageFile writes the named multipart file into tempDir under a unique
// name and returns its path. A missing file field yields ("", nil).
func (h *Handler) stageFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// absent field: optional assets simply stay unstaged
		return "", nil
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(h.tempDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

func removeStaged(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("user: failed to remove staged file %s: %v", p, err)
		}
	}
}
