package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/mi-raf/memo-blog/internal/i18n"
	"github.com/mi-raf/memo-blog/internal/models"
	"github.com/mi-raf/memo-blog/internal/service"
)

const title = "useMemo Blog"

type (
	Handler struct {
		ps *service.PostService
		v  *validator.Validate
	}

	addPostRequest struct {
		Header string `json:"header"`
		Text   string `json:"text"`
	}

	// postForm carries the trimmed input. Blank input never reaches the
	// length check; it is ignored without an error.
	postForm struct {
		Header string `json:"header" validate:"min=3,max=25"`
		Text   string `json:"text" validate:"min=3,max=50"`
	}

	addPostResponse struct {
		Added  bool            `json:"added"`
		Post   *models.PostDTO `json:"post,omitempty"`
		Fields addPostRequest  `json:"fields"`
	}

	languageRequest struct {
		Code string `json:"code" binding:"required"`
	}
)

func NewHandler(ps *service.PostService) *Handler {
	return &Handler{ps: ps, v: validator.New(validator.WithRequiredStructEnabled())}
}

func (h *Handler) AddPost(c *gin.Context) {
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	form := postForm{Header: strings.TrimSpace(req.Header), Text: strings.TrimSpace(req.Text)}
	if form.Header != "" && form.Text != "" {
		if err := h.v.Struct(form); err != nil {
			badRequest(c, err)
			return
		}
	}

	p, err := h.ps.AddPost(c.Request.Context(), form.Header, form.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, addPostResponse{Added: false, Fields: req})
		return
	}
	c.JSON(http.StatusCreated, addPostResponse{Added: true, Post: p})
}

func (h *Handler) ListPosts(c *gin.Context) {
	offset, limit, ok := paging(c)
	if !ok {
		return
	}
	posts, total, err := h.ps.Posts(c.Request.Context(), int64(offset), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "offset": offset, "posts": posts})
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.ps.Post(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Clear(c *gin.Context) {
	n, err := h.ps.Clear(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": n})
}

func (h *Handler) Archive(c *gin.Context) {
	offset, limit, ok := paging(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":    h.ps.ArchiveLen(),
		"offset":   offset,
		"articles": h.ps.Archive(offset, limit),
	})
}

func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":  title,
		"codes":  i18n.Codes(),
		"active": h.ps.Language(),
	})
}

func (h *Handler) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.ps.SetLanguage(req.Code); err != nil {
		writeError(c, err)
		return
	}
	code, labels, err := h.ps.Labels("")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": code, "labels": labels})
}

func (h *Handler) Labels(c *gin.Context) {
	code, labels, err := h.ps.Labels(c.Query("lang"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lang": code, "labels": labels})
}

func (h *Handler) Label(c *gin.Context) {
	key := c.Param("key")
	c.JSON(http.StatusOK, gin.H{"key": key, "lang": h.ps.Language(), "label": h.ps.Label(key)})
}

func paging(c *gin.Context) (int, int, bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, errors.New("offset must be a non-negative integer"))
		return 0, 0, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		badRequest(c, errors.New("limit must be a non-negative integer"))
		return 0, 0, false
	}
	return offset, limit, true
}

func badRequest(c *gin.Context, err error) {
	log.Debug().Err(err).Str("path", c.FullPath()).Msg("bad request")
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnsupportedLanguage):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("error in response")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
