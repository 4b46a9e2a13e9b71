package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-platform/internal/core/ports"
)

// PostHandler handles HTTP requests for blog post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts. The author is always the authenticated
// identity; the request body cannot override it.
//
// @Summary      Create a blog post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post details"
// @Success      201   {object}  postEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), req.Title, req.Content, authorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, postEnvelope{
		Message: "blog post created successfully",
		Post:    toPostResponse(*view),
	})
}

// List handles GET /api/posts — public, no auth.
//
// @Summary      List all blog posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   postResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	posts := make([]postResponse, 0, len(views))
	for _, v := range views {
		posts = append(posts, toPostResponse(v))
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id — public, no auth.
//
// @Summary      Get a blog post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(*view))
}

// Update handles PUT /api/posts/:id. The combined id+owner filter means a
// non-owner receives the same 404 as a missing post.
//
// @Summary      Update a blog post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      postRequest  true  "Updated post details"
// @Success      200   {object}  postEnvelope
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), authorID, req.Title, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postEnvelope{
		Message: "blog post updated successfully",
		Post:    toPostResponse(*view),
	})
}

// Delete handles DELETE /api/posts/:id.
//
// @Summary      Delete a blog post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	authorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), authorID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "blog post deleted successfully"})
}
