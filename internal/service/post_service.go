package service

import (
	"context"
	"strings"
	"time"

	"moodmovies/internal/models"
	"moodmovies/internal/repository"
)

// CreatePostInput carries the fields for sharing movie thoughts.
type CreatePostInput struct {
	MovieID       int    `json:"movie_id"`
	MovieThoughts string `json:"movie_thoughts"`
}

// PostService implements the social feed operations.
type PostService struct {
	posts repository.PostRepository
}

// NewPostService wires a PostService from its dependencies.
func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// ListFeed returns posts newest first, optionally narrowed to one author or a
// free-text search over the thoughts.
func (s *PostService) ListFeed(ctx context.Context, search string, authorID uint) ([]models.Post, error) {
	return s.posts.List(ctx, search, authorID)
}

// Get returns a single post with its author preloaded.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Create shares the author's thoughts about a movie. Reaction counters always
// start at zero regardless of what the client sent.
func (s *PostService) Create(ctx context.Context, authorID uint, input CreatePostInput) (*models.Post, error) {
	if input.MovieID <= 0 {
		return nil, models.NewValidationError("movie_id is required")
	}
	input.MovieThoughts = strings.TrimSpace(input.MovieThoughts)
	if input.MovieThoughts == "" {
		return nil, models.NewValidationError("movie_thoughts is required")
	}

	post := &models.Post{
		UserID:        authorID,
		MovieID:       input.MovieID,
		MovieThoughts: input.MovieThoughts,
		Likes:         0,
		Dislikes:      0,
		PostedAt:      time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateThoughts rewrites the text of a post the user authored. Reaction
// counters and the original timestamp are preserved.
func (s *PostService) UpdateThoughts(ctx context.Context, userID, postID uint, thoughts string) (*models.Post, error) {
	thoughts = strings.TrimSpace(thoughts)
	if thoughts == "" {
		return nil, models.NewValidationError("movie_thoughts is required")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	post.MovieThoughts = thoughts
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Like records one more like on the post.
func (s *PostService) Like(ctx context.Context, postID uint) (*models.Post, error) {
	return s.react(ctx, postID, func(p *models.Post) { p.Likes++ })
}

// Dislike records one more dislike on the post.
func (s *PostService) Dislike(ctx context.Context, postID uint) (*models.Post, error) {
	return s.react(ctx, postID, func(p *models.Post) { p.Dislikes++ })
}

func (s *PostService) react(ctx context.Context, postID uint, apply func(*models.Post)) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	apply(post)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post the user authored.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.posts.Delete(ctx, postID)
}
