package catalog

import (
	"casino_demo/internal/model"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Games - список игр от агрегатора.
// Без API ключа или при любой ошибке запроса отдаётся
// встроенный список: лобби должно работать и без внешнего API
func (s *serv) Games(ctx context.Context) ([]model.Game, error) {
	if len(s.cfg.APIKey()) == 0 {
		return mockGames(), nil
	}

	res, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey()).
		SetHeader("Accept", "application/json").
		Get("/games")
	if err != nil {
		logrus.WithError(err).Warn("catalog fetch failed, using mock games")
		return mockGames(), nil
	}
	if res.StatusCode() != 200 {
		logrus.WithField("status", res.StatusCode()).Warn("catalog fetch failed, using mock games")
		return mockGames(), nil
	}

	var parsed struct {
		Games []struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Provider  string `json:"provider"`
			Thumbnail string `json:"thumbnail"`
		} `json:"games"`
	}
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		logrus.WithError(err).Warn("catalog response malformed, using mock games")
		return mockGames(), nil
	}

	games := make([]model.Game, 0, len(parsed.Games))
	for _, g := range parsed.Games {
		games = append(games, model.Game{
			ID:        g.ID,
			Title:     g.Title,
			Provider:  g.Provider,
			Thumbnail: g.Thumbnail,
		})
	}

	return games, nil
}

func mockGames() []model.Game {
	titles := []struct {
		title    string
		provider string
	}{
		{"Golden Pharaoh", "Pragmatic Play"},
		{"Lucky Sevens", "NetEnt"},
		{"Book of Sands", "Play'n GO"},
		{"Fruit Blast", "Push Gaming"},
		{"Dragon Fortune", "Red Tiger"},
		{"Wild West Gold", "Pragmatic Play"},
	}

	games := make([]model.Game, 0, len(titles))
	for i, t := range titles {
		id := fmt.Sprintf("mock_%d", i+1)
		games = append(games, model.Game{
			ID:        id,
			Title:     t.title,
			Provider:  t.provider,
			Thumbnail: "/thumbs/" + id + ".png",
		})
	}
	return games
}
