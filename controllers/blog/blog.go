package blog

import (
	"travel-booking/controllers/resource"
	"travel-booking/services/markdown"
	"travel-booking/storage"
	blogTypes "travel-booking/types/blog"
)

type Controller = resource.Controller[blogTypes.Post, blogTypes.Patch]

// present adds the rendered body to a single post
func present(p blogTypes.Post) (interface{}, error) {
	html, err := markdown.ToHTML(p.Content)
	if err != nil {
		return nil, err
	}
	return blogTypes.View{Post: p, ContentHTML: html}, nil
}

func NewBlogController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Blog post",
		Store: resource.Store[blogTypes.Post, blogTypes.Patch]{
			List:   s.ListBlogPosts,
			Get:    s.GetBlogPost,
			Create: s.CreateBlogPost,
			Update: s.UpdateBlogPost,
			Delete: s.DeleteBlogPost,
		},
		Present: present,
	}
}

func NewAdminBlogController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Blog post",
		Store: resource.Store[blogTypes.Post, blogTypes.Patch]{
			List:   s.ListAdminBlogPosts,
			Get:    s.GetAdminBlogPost,
			Create: s.CreateAdminBlogPost,
			Update: s.UpdateAdminBlogPost,
			Delete: s.DeleteAdminBlogPost,
		},
		Present: present,
	}
}
