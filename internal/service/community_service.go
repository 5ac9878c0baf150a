package service

import (
	"context"
	"sort"

	"ecoconnect/internal/cache"
	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"
)

type CommunityService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewCommunityService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *CommunityService {
	return &CommunityService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// TopContributors ranks users by their posts counter and decorates each with
// summed likes and views over their posts. Rank is the 1-based position in
// the sorted list. Only the default board size goes through the cache;
// custom limits always hit the store.
func (s *CommunityService) TopContributors(ctx context.Context, limit int) ([]*models.Contributor, error) {
	if limit == DefaultContributorLimit {
		var contributors []*models.Contributor
		err := cache.Aside(ctx, cache.TopContributorsKey, &contributors, cache.CommunityTTL, func() error {
			var fetchErr error
			contributors, fetchErr = s.rankContributors(ctx, limit)
			return fetchErr
		})
		return contributors, err
	}
	return s.rankContributors(ctx, limit)
}

// DefaultContributorLimit is the board size used when the client does not
// ask for a specific limit.
const DefaultContributorLimit = 10

func (s *CommunityService) rankContributors(ctx context.Context, limit int) ([]*models.Contributor, error) {
	users, err := s.userRepo.TopByPostsCount(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	stats, err := s.postRepo.StatsByAuthor(ctx, ids)
	if err != nil {
		return nil, err
	}

	contributors := make([]*models.Contributor, 0, len(users))
	for i, u := range users {
		st := stats[u.ID]
		contributors = append(contributors, &models.Contributor{
			User:       *u,
			TotalPosts: u.PostsCount,
			TotalLikes: st.TotalLikes,
			TotalViews: st.TotalViews,
			Rank:       i + 1,
		})
	}
	return contributors, nil
}

// CommunityStats reports headline numbers for the landing page. Active
// members and monthly posts are modelled as fixed ratios of the totals; the
// CO2 figure is a static campaign number.
func (s *CommunityService) CommunityStats(ctx context.Context) (*models.CommunityStats, error) {
	var stats models.CommunityStats
	err := cache.Aside(ctx, cache.CommunityStatsKey, &stats, cache.CommunityTTL, func() error {
		totalMembers, err := s.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		totalPosts, err := s.postRepo.Count(ctx)
		if err != nil {
			return err
		}

		stats = models.CommunityStats{
			ActiveMembers: int(float64(totalMembers) * 0.7),
			MonthlyPosts:  int(float64(totalPosts) * 0.3),
			CO2Saved:      "1.2k tons",
			TotalPosts:    int(totalPosts),
			TotalMembers:  int(totalMembers),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentActivity merges the three newest posts and three newest comments into
// one feed, newest first, capped at limit. Entries whose author (or, for
// comments, post) no longer resolves are dropped rather than rendered with
// placeholders. The cache holds the full merge; the limit is applied per
// request after the cache read, so all limits share one cached feed.
func (s *CommunityService) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := cache.Aside(ctx, cache.RecentActivityKey, &activities, cache.CommunityTTL, func() error {
		posts, err := s.postRepo.Recent(ctx, 3)
		if err != nil {
			return err
		}
		comments, err := s.commentRepo.Recent(ctx, 3)
		if err != nil {
			return err
		}

		postIDs := make([]uint, 0, len(comments))
		for _, c := range comments {
			postIDs = append(postIDs, c.PostID)
		}
		commentedPosts, err := s.postRepo.GetByIDs(ctx, postIDs)
		if err != nil {
			return err
		}
		titles := make(map[uint]string, len(commentedPosts))
		for _, p := range commentedPosts {
			titles[p.ID] = p.Title
		}

		activities = make([]models.Activity, 0, len(posts)+len(comments))
		for _, p := range posts {
			if p.Author == nil {
				continue
			}
			activities = append(activities, models.Activity{
				Type:      "post",
				User:      p.Author.Username,
				Action:    "published a new post",
				Target:    p.Title,
				Timestamp: p.CreatedAt,
			})
		}
		for _, c := range comments {
			title, ok := titles[c.PostID]
			if c.Author == nil || !ok {
				continue
			}
			activities = append(activities, models.Activity{
				Type:      "comment",
				User:      c.Author.Username,
				Action:    "commented on",
				Target:    title,
				Timestamp: c.CreatedAt,
			})
		}

		sort.SliceStable(activities, func(i, j int) bool {
			return activities[i].Timestamp.After(activities[j].Timestamp)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}
