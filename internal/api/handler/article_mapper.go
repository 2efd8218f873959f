package handler

import "github.com/newsroom/news-api/internal/core/ports"

const dateLayout = "2006-01-02"

// toArticleResponse maps a service view to the transport shape. The publish
// date is serialized as YYYY-MM-DD and omitted when unset.
func toArticleResponse(v *ports.ArticleView) articleResponse {
	authors := make([]authorResponse, 0, len(v.Authors))
	for _, a := range v.Authors {
		authors = append(authors, authorResponse{ID: a.ID, Username: a.Username, Email: a.Email})
	}

	keywords := v.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	resp := articleResponse{
		ID:        v.ID,
		Header:    v.Header,
		ShortDesc: v.ShortDesc,
		Text:      v.Text,
		Authors:   authors,
		Keywords:  keywords,
	}
	if !v.PublishDate.IsZero() {
		resp.PublishDate = v.PublishDate.Format(dateLayout)
	}
	return resp
}

func toArticleResponses(views []*ports.ArticleView) []articleResponse {
	out := make([]articleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toArticleResponse(v))
	}
	return out
}
