package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-platform/internal/core/domain"
	"github.com/inkpress/blog-platform/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type commentEnvelope struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment"`
}

// Create handles POST /api/posts/:postId/comments. The target post must
// exist; any authenticated user may comment, not only the post's author.
//
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string          true  "Post id"
// @Param        body    body      commentRequest  true  "Comment text"
// @Success      201     {object}  commentEnvelope
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/posts/{postId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), c.Param("postId"), userID, req.Comment)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, commentEnvelope{
		Message: "comment added successfully",
		Comment: comment,
	})
}

// ListByPost handles GET /api/posts/:postId/comments — public, no auth.
//
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {array}   domain.Comment
// @Failure      500     {object}  map[string]string
// @Router       /api/posts/{postId}/comments [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.service.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// Update handles PUT /api/comments/:id. Ownership-scoped like posts: a
// non-owner sees the same 404 as a missing comment.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Comment id"
// @Param        body  body      commentRequest  true  "Updated comment text"
// @Success      200   {object}  commentEnvelope
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, req.Comment)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentEnvelope{
		Message: "comment updated successfully",
		Comment: comment,
	})
}

// Delete handles DELETE /api/comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment deleted successfully"})
}
