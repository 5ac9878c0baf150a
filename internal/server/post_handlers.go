package server

import (
	"ecoconnect/internal/models"
	"ecoconnect/internal/service"
	"ecoconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts. The category query parameter carries a
// category id; featured is applied only when the parameter is present, so
// the default listing mixes featured and regular posts.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c, 20)

	in := service.ListPostsInput{
		Search: c.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if category := c.QueryInt("category"); category > 0 {
		id := uint(category)
		in.CategoryID = &id
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		in.Featured = &featured
	}

	posts, err := s.postService.ListPosts(ctx, in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to fetch posts", err))
	}
	return c.JSON(posts)
}

// SearchPosts handles GET /api/search?q=...&category=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	q := c.Query("q")
	if q == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Search query is required"))
	}

	page := parsePagination(c, 20)
	in := service.ListPostsInput{
		Search: q,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if category := c.QueryInt("category"); category > 0 {
		id := uint(category)
		in.CategoryID = &id
	}

	posts, err := s.postService.ListPosts(ctx, in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to search posts", err))
	}
	return c.JSON(posts)
}

// GetPostBySlug handles GET /api/posts/:slug. Each successful fetch counts
// as a view.
func (s *Server) GetPostBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	post, err := s.postService.GetPostBySlug(ctx, slug)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.postService.RecordView(ctx, post.ID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to fetch post", err))
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req validation.InsertPost
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post data"))
	}

	post, err := s.postService.CreatePost(ctx, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req validation.UpdatePost
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post data"))
	}

	post, err := s.postService.UpdatePost(ctx, id, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// RecordPostLike handles POST /api/posts/:id/like. A like on an id that no
// longer exists still answers success; the increment is a no-op.
func (s *Server) RecordPostLike(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.RecordLike(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to like post", err))
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddTagToPost handles POST /api/posts/:id/tags/:tagId
func (s *Server) AddTagToPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	tagID, err := s.parseID(c, "tagId")
	if err != nil {
		return nil
	}

	post, err := s.postService.AddTag(ctx, postID, tagID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}
