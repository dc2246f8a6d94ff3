package storage

import (
	"context"

	"travel-booking/mapping"
	blogModel "travel-booking/models/blog"
	blogTypes "travel-booking/types/blog"
)

var blogPosts = collection[blogModel.Post, blogTypes.Post, blogTypes.Patch]{
	table:     blogModel.Post{}.TableName(),
	fromStore: mapping.BlogPostFromStore,
	toStore:   mapping.BlogPostToStore,
	patch:     mapping.BlogPostPatchToStore,
}

var adminBlogPosts = blogPosts.admin()

func (s *Storage) ListBlogPosts(ctx context.Context) ([]blogTypes.Post, error) {
	return blogPosts.list(ctx, s.backend)
}

func (s *Storage) GetBlogPost(ctx context.Context, id string) (blogTypes.Post, bool, error) {
	return blogPosts.get(ctx, s.backend, id)
}

func (s *Storage) CreateBlogPost(ctx context.Context, rec blogTypes.Post) (blogTypes.Post, error) {
	return blogPosts.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateBlogPost(ctx context.Context, id string, p blogTypes.Patch) (blogTypes.Post, bool, error) {
	return blogPosts.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	return blogPosts.remove(ctx, s.backend, id)
}

func (s *Storage) ListAdminBlogPosts(ctx context.Context) ([]blogTypes.Post, error) {
	return adminBlogPosts.list(ctx, s.backend)
}

func (s *Storage) GetAdminBlogPost(ctx context.Context, id string) (blogTypes.Post, bool, error) {
	return adminBlogPosts.get(ctx, s.backend, id)
}

func (s *Storage) CreateAdminBlogPost(ctx context.Context, rec blogTypes.Post) (blogTypes.Post, error) {
	return adminBlogPosts.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateAdminBlogPost(ctx context.Context, id string, p blogTypes.Patch) (blogTypes.Post, bool, error) {
	return adminBlogPosts.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteAdminBlogPost(ctx context.Context, id string) (bool, error) {
	return adminBlogPosts.remove(ctx, s.backend, id)
}
