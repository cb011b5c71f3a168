package constants

type NewsSource struct {
	Name string
	URL  string
}

func GetNewsSources() []NewsSource {
	var sources []NewsSource
	sources = append(sources, NewsSource{Name: "OpenAI", URL: "https://openai.com/news/rss.xml"})
	sources = append(sources, NewsSource{Name: "Google AI", URL: "https://blog.google/technology/ai/rss/"})
	sources = append(sources, NewsSource{Name: "The Verge", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml"})
	sources = append(sources, NewsSource{Name: "MIT Tech Review", URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed"})
	sources = append(sources, NewsSource{Name: "VentureBeat", URL: "https://venturebeat.com/category/ai/feed/"})
	sources = append(sources, NewsSource{Name: "TechCrunch", URL: "https://techcrunch.com/category/artificial-intelligence/feed/"})
	sources = append(sources, NewsSource{Name: "Хабр", URL: "https://habr.com/ru/rss/hubs/artificial_intelligence/articles/"})

	return sources
}
