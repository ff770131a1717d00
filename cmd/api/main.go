package main

import (
	"log"
	"log/slog"
	"os"

	"newsdigest/db"
	"newsdigest/internal/config"
	"newsdigest/internal/handler"
	"newsdigest/internal/repository"
	"newsdigest/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	newsRepo := repository.NewNewsRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)

	clients := []news.NewsClient{
		news.NewNCCClient(),
		news.NewBBCClient(),
		news.NewReutersClient(),
		news.NewCnyesClient(),
	}
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}

	crawlHandler := handler.NewCrawlHandler(clients, newsRepo, cfg.CrawlLimit)
	newsHandler := handler.NewNewsHandler(newsRepo)
	summaryHandler := handler.NewSummaryHandler(summaryRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/v1/news/crawl", crawlHandler.Crawl)
	r.GET("/news", newsHandler.GetFeed)
	r.GET("/summaries", summaryHandler.GetSummaries)
	r.GET("/summaries/latest", summaryHandler.GetLatestSummary)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
