package mapping

import (
	blogModel "travel-booking/models/blog"
	blogTypes "travel-booking/types/blog"
)

func BlogPostFromStore(row blogModel.Post) blogTypes.Post {
	return blogTypes.Post{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		Author:      row.Author,
		Category:    row.Category,
		ImageURL:    row.ImageURL,
		PublishedAt: row.PublishedAt,
		CreatedAt:   timePtr(row.CreatedAt),
	}
}

func BlogPostToStore(p blogTypes.Post) blogModel.Post {
	return blogModel.Post{
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Author:      p.Author,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		PublishedAt: p.PublishedAt,
	}
}

func BlogPostPatchToStore(p blogTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("title", deref(p.Title), p.Title != nil)
	c.set("slug", deref(p.Slug), p.Slug != nil)
	c.set("excerpt", deref(p.Excerpt), p.Excerpt != nil)
	c.set("content", deref(p.Content), p.Content != nil)
	c.set("author", deref(p.Author), p.Author != nil)
	c.set("category", deref(p.Category), p.Category != nil)
	c.set("image_url", deref(p.ImageURL), p.ImageURL != nil)
	c.set("published_at", deref(p.PublishedAt), p.PublishedAt != nil)
	return c
}
