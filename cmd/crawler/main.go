package main

import (
	"log"
	"log/slog"
	"os"

	"newsdigest/db"
	"newsdigest/internal/config"
	"newsdigest/internal/model"
	"newsdigest/internal/repository"
	"newsdigest/pkg/news"

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

	useRedis := cfg.RedisURL != ""
	if useRedis {
		err = db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
	}

	clients := []news.NewsClient{
		news.NewNCCClient(),
		news.NewBBCClient(),
		news.NewReutersClient(),
		news.NewCnyesClient(),
	}
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}

	repo := repository.NewNewsRepository(db.DB)

	for _, client := range clients {
		source := client.Name()

		fetchedArticles, err := client.Fetch(cfg.CrawlLimit)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var saved, duplicated, errors int

		for _, a := range fetchedArticles {
			if useRedis {
				seen, err := db.WasLinkSeen(a.Link)
				if err != nil {
					slog.Error("error checking seen-link cache", "source", source, "error", err)
				} else if seen {
					duplicated++
					continue
				}
			}

			article := model.News{
				Title:    a.Title,
				Summary:  a.Summary,
				Content:  a.Content,
				ImageURL: a.ImageURL,
				Link:     a.Link,
				Category: a.Category,
				Source:   a.Source,
				Date:     a.Date,
			}

			success, err := repo.SaveNews(&article)
			if err != nil {
				slog.Error("error saving article", "source", source, "error", err)
				errors++
				continue
			}

			if useRedis {
				if _, err := db.MarkLinkSeen(a.Link); err != nil {
					slog.Error("error updating seen-link cache", "source", source, "error", err)
				}
			}

			if !success {
				slog.Info("duplicate article skipped", "source", source, "link", a.Link)
				duplicated++
				continue
			}

			saved++
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "errors", errors)
	}
}
