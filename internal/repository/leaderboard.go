package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// winsKey is the sorted set of all-time win counts per display name.
// Aggregate stats are the only thing the server persists; live rooms
// stay in process memory and die with it.
const winsKey = "leaderboard:wins"

type LeaderboardEntry struct {
	PlayerName string `json:"playerName"`
	Wins       int64  `json:"wins"`
}

type LeaderboardRepository interface {
	RecordWin(ctx context.Context, playerName string) error
	Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error)
}

type dbLeaderboard struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
	}
}

func (that *dbLeaderboard) RecordWin(ctx context.Context, playerName string) error {
	err := that.client.ZIncrBy(ctx, winsKey, 1, playerName).Err()
	if err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *dbLeaderboard) Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return []LeaderboardEntry{}, nil
	}

	results, err := that.client.ZRevRangeWithScores(ctx, winsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			PlayerName: name,
			Wins:       int64(result.Score),
		})
	}

	return entries, nil
}
