package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"praxis/internal/domain"
	"praxis/internal/i18n"
	"praxis/pkg/validator"
)

// 5 MB is plenty for a news photo.
const maxImageSize = 5 << 20

// @Summary Published news
// @Tags News
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.NewsPost}
// @Router /news [get]
func (h *Handler) getPublishedNews(c *gin.Context) {
	posts, err := h.services.News.List(c.Request.Context(), true)
	if err != nil {
		h.logger.Error("failed to list news", zap.Error(err))
		serviceErrorResponse(c, requestLanguage(c), err)
		return
	}

	successResponse(c, http.StatusOK, posts)
}

// @Summary Single news post
// @Tags News
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} successResponseBody{data=domain.NewsPost}
// @Failure 404 {object} errorResponseBody
// @Router /news/{slug} [get]
func (h *Handler) getNewsBySlug(c *gin.Context) {
	lang := requestLanguage(c)

	post, err := h.services.News.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		serviceErrorResponse(c, lang, err)
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary List all news posts
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.NewsPost}
// @Router /admin/news [get]
func (h *Handler) adminListNews(c *gin.Context) {
	posts, err := h.services.News.List(c.Request.Context(), false)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, posts)
}

// @Summary Create a news post
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateNewsPostDTO true "Post"
// @Success 201 {object} successResponseBody{data=domain.NewsPost}
// @Failure 409 {object} errorResponseBody "Slug already in use"
// @Router /admin/news [post]
func (h *Handler) adminCreateNews(c *gin.Context) {
	var input domain.CreateNewsPostDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}
	if !validator.ValidateSlug(input.Slug) {
		badRequestResponse(c, "invalid slug")
		return
	}

	post, err := h.services.News.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	createdResponse(c, post)
}

// @Summary Get a news post
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} successResponseBody{data=domain.NewsPost}
// @Failure 404 {object} errorResponseBody
// @Router /admin/news/{id} [get]
func (h *Handler) adminGetNews(c *gin.Context) {
	post, err := h.services.News.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Update a news post
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param input body domain.UpdateNewsPostDTO true "Fields to change"
// @Success 200 {object} successResponseBody{data=domain.NewsPost}
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody "Slug already in use"
// @Router /admin/news/{id} [patch]
func (h *Handler) adminUpdateNews(c *gin.Context) {
	var input domain.UpdateNewsPostDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}
	if input.Slug != nil && !validator.ValidateSlug(*input.Slug) {
		badRequestResponse(c, "invalid slug")
		return
	}

	post, err := h.services.News.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Delete a news post
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Router /admin/news/{id} [delete]
func (h *Handler) adminDeleteNews(c *gin.Context) {
	if err := h.services.News.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	noContentResponse(c)
}

// @Summary Upload a post image
// @Tags Admin
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post id"
// @Param image formData file true "Image file"
// @Success 200 {object} successResponseBody
// @Failure 404 {object} errorResponseBody
// @Router /admin/news/{id}/image [post]
func (h *Handler) adminUploadNewsImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequestResponse(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		badRequestResponse(c, "image exceeds the size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, i18n.Msg(domain.LanguageGerman, i18n.KeyInternal))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, i18n.Msg(domain.LanguageGerman, i18n.KeyInternal))
		return
	}

	url, err := h.services.News.UploadImage(c.Request.Context(), c.Param("id"), data, fileHeader.Filename)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"image_url": url,
	})
}
