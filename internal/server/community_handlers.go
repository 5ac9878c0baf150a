package server

import (
	"ecoconnect/internal/models"
	"ecoconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCommunityStats handles GET /api/community/stats
func (s *Server) GetCommunityStats(c *fiber.Ctx) error {
	stats, err := s.communityService.CommunityStats(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to fetch community stats", err))
	}
	return c.JSON(stats)
}

// GetTopContributors handles GET /api/users/top-contributors?limit=...
func (s *Server) GetTopContributors(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultContributorLimit)
	if limit <= 0 {
		limit = service.DefaultContributorLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	contributors, err := s.communityService.TopContributors(c.UserContext(), limit)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to fetch top contributors", err))
	}
	return c.JSON(contributors)
}

// GetRecentActivity handles GET /api/community/recent-activity?limit=...
func (s *Server) GetRecentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	activities, err := s.communityService.RecentActivity(c.UserContext(), limit)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError("Failed to fetch recent activity", err))
	}
	return c.JSON(activities)
}
