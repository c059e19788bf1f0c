package espn

import (
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	"github.com/riskibarqy/scoreboard/internal/platform/dateutil"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

func parseNews(root payload.Map, leagueID string) []news.Article {
	items := root.Maps("articles")
	out := make([]news.Article, 0, len(items))
	for _, item := range items {
		article := news.Article{
			Headline:    item.FirstString("headline", "title"),
			Description: item.String("description"),
			Published:   dateutil.ParseUpstreamTime(item.FirstString("published", "lastModified")),
			Link:        item.String("links", "web", "href"),
			LeagueID:    leagueID,
		}
		for _, image := range item.Maps("images") {
			if href := image.String("url"); href != "" {
				article.Images = append(article.Images, href)
			}
		}
		out = append(out, article)
	}
	return out
}
