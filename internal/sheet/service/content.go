package service

import (
	"context"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

func (s *Service) getBlogPosts(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.BlogPost{}
	if err := repo.List(ctx, &out, "post_date DESC, created_at DESC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("blogs", out), nil
}

func applyBlogPost(b *sheetModel.BlogPost, p sheetModel.Params) {
	b.Title = p.Str("title")
	b.Content = p.Str("content")
	b.Date = p.Str("date")
	b.Author = p.Str("author")
}

func (s *Service) createBlogPost(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	b := sheetModel.BlogPost{ID: s.newID(sheetModel.PrefixBlogPost)}
	applyBlogPost(&b, p)
	if b.Title == "" {
		return nil, sheetModel.ErrTitleRequired
	}
	if p.Has("imageBase64") {
		url, err := s.storePhoto(ctx, repo, p.Str("imageBase64"))
		if err != nil {
			return nil, err
		}
		b.ImageURL = url
	}
	if err := repo.Create(ctx, &b); err != nil {
		return nil, err
	}
	return sheetModel.OK("blogId", b.ID, "imageUrl", b.ImageURL, "message", "Blog post created"), nil
}

func (s *Service) updateBlogPost(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("blogId")
	var b sheetModel.BlogPost
	if err := repo.Find(ctx, &b, id); err != nil {
		return nil, wrapNotFound(err, "blog post", id)
	}
	applyBlogPost(&b, p)
	if b.Title == "" {
		return nil, sheetModel.ErrTitleRequired
	}
	if p.Has("imageBase64") {
		url, err := s.storePhoto(ctx, repo, p.Str("imageBase64"))
		if err != nil {
			return nil, err
		}
		b.ImageURL = url
	}
	if err := repo.Save(ctx, &b); err != nil {
		return nil, err
	}
	return sheetModel.OK("imageUrl", b.ImageURL, "message", "Blog post updated"), nil
}

// deleteBlogPost removes a post together with its comments.
func (s *Service) deleteBlogPost(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("blogId")
	if err := repo.DeleteCommentsByBlog(ctx, id); err != nil {
		return nil, err
	}
	if err := repo.Delete(ctx, &sheetModel.BlogPost{}, id); err != nil {
		return nil, wrapNotFound(err, "blog post", id)
	}
	return sheetModel.OK("message", "Blog post deleted"), nil
}

func (s *Service) getComments(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	comments, err := repo.CommentsByBlog(ctx, p.Str("blogId"))
	if err != nil {
		return nil, err
	}
	return sheetModel.OK("comments", comments), nil
}

func (s *Service) addComment(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	c := sheetModel.Comment{
		ID:         s.newID(sheetModel.PrefixComment),
		BlogID:     p.Str("blogId"),
		AuthorName: p.Str("authorName"),
		Text:       p.Str("text"),
		CreatedAt:  s.clock.Now(),
	}
	if c.AuthorName == "" || c.Text == "" {
		return nil, sheetModel.ErrCommentIncomplete
	}
	if err := repo.Find(ctx, &sheetModel.BlogPost{}, c.BlogID); err != nil {
		return nil, wrapNotFound(err, "blog post", c.BlogID)
	}
	if err := repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return sheetModel.OK("commentId", c.ID, "message", "Comment added"), nil
}

func (s *Service) deleteComment(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("commentId")
	if err := repo.Delete(ctx, &sheetModel.Comment{}, id); err != nil {
		return nil, wrapNotFound(err, "comment", id)
	}
	return sheetModel.OK("message", "Comment deleted"), nil
}

var ruleSports = []string{"football", "volleyball"}

// getRules returns only the sports that have been saved; callers fall back
// to their built-in lists for the rest.
func (s *Service) getRules(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	var sets []sheetModel.RuleSet
	if err := repo.List(ctx, &sets, "sport ASC"); err != nil {
		return nil, err
	}
	resp := sheetModel.OK()
	for _, set := range sets {
		items := []string{}
		if err := json.Unmarshal([]byte(set.Items), &items); err != nil {
			s.logger.Warnw("Skipping unreadable rule set", "sport", set.Sport, "error", err)
			continue
		}
		resp[set.Sport] = items
	}
	return resp, nil
}

// saveRules replaces the lists of the sports present in the request.
func (s *Service) saveRules(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	now := s.clock.Now()
	for _, sport := range ruleSports {
		if !p.Has(sport) {
			continue
		}
		items := p.Strings(sport)
		if items == nil {
			items = []string{}
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		set := sheetModel.RuleSet{Sport: sport, Items: string(encoded), UpdatedAt: now}
		if err := repo.Save(ctx, &set); err != nil {
			return nil, err
		}
	}
	return sheetModel.OK("message", "Rules updated"), nil
}
