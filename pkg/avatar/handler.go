package avatar

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin"
)

// URLPath is the path avatars are served under, relative to the base path.
const URLPath = "/uploads/avatars/"

func NewHandler(logger *slog.Logger, publicURL string, store Store, userService userService) Handler {
	return Handler{
		logger:      logger,
		publicURL:   strings.TrimSuffix(publicURL, "/"),
		store:       store,
		userService: userService,
	}
}

type Handler struct {
	logger      *slog.Logger
	publicURL   string
	store       Store
	userService userService
}

type userService interface {
	FindById(ctx context.Context, id uint) (*model.User, error)
	SetProfilePicture(ctx context.Context, id uint, url string) (*model.User, error)
}

type uploadResponse struct {
	ProfilePicture string `json:"profilePicture"`
}

// Upload avatar
func (h Handler) Upload(c *gin.Context) {
	// swagger:route POST /upload_avatar/{id} uploadAvatar
	//
	// Upload avatar
	//
	// Upload a profile picture for a user. Accepted extensions are png, jpg, jpeg and gif.
	//
	// Consumes:
	//   - multipart/form-data
	//
	// responses:
	//   200: UploadResponse
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.userService.FindById(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("No file part"))
		return
	}
	if fileHeader.Filename == "" {
		_ = c.Error(errdef.NewBadRequest("No selected file"))
		return
	}

	filename, err := storedName(id, fileHeader.Filename)
	if err != nil {
		_ = c.Error(err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer file.Close()

	// The part's own Content-Type is client supplied and served back verbatim by S3.
	err = h.store.Save(ctx, filename, file, mime.TypeByExtension(path.Ext(filename)))
	if err != nil {
		_ = c.Error(err)
		return
	}

	url := h.publicURL + URLPath + filename
	if _, err := h.userService.SetProfilePicture(ctx, id, url); err != nil {
		_ = c.Error(err)
		return
	}

	h.deletePrevious(ctx, user.ProfilePicture)

	c.JSON(http.StatusOK, uploadResponse{ProfilePicture: url})
}

// deletePrevious removes a replaced avatar if it was stored by us. Failing to do so only leaves an
// unreferenced file behind.
func (h Handler) deletePrevious(ctx context.Context, previous *string) {
	if previous == nil {
		return
	}

	filename, found := strings.CutPrefix(*previous, h.publicURL+URLPath)
	if !found || !validName(filename) {
		return
	}

	if err := h.store.Delete(ctx, filename); err != nil {
		h.logger.WarnContext(ctx, "Failed to delete replaced avatar", "file", filename, "error", err)
	}
}

// Get avatar
func (h Handler) Get(c *gin.Context) {
	// swagger:route GET /uploads/avatars/{filename} getAvatar
	//
	// Get avatar
	//
	// Download an uploaded profile picture.
	//
	// responses:
	//   200: Avatar
	//   404: Error
	filename := c.Param("filename")
	if !validName(filename) {
		_ = c.Error(errdef.NewNotFound("avatar %q not found", filename))
		return
	}

	err := h.store.Open(c.Request.Context(), filename, c.Writer, func(contentLength int64, contentType string) {
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Header("Content-Length", strconv.FormatInt(contentLength, 10))
		c.Status(http.StatusOK)
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
}
