package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Preferences are per-user UI settings, stored server-side so they follow the
// account across devices.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"autoSave"`
	Language      string `json:"language"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Notifications: true,
		AutoSave:      true,
		Language:      "en",
	}
}

type PreferenceService struct {
	Redis *redis.Client
}

func NewPreferenceService(rdb *redis.Client) *PreferenceService {
	return &PreferenceService{Redis: rdb}
}

func preferenceKey(userID uint) string {
	return fmt.Sprintf("preferences:user:%d", userID)
}

// Get returns the user's stored preferences, falling back to defaults when
// nothing was saved yet or the stored blob is unreadable.
func (s *PreferenceService) Get(ctx context.Context, userID uint) (Preferences, error) {
	raw, err := s.Redis.Get(ctx, preferenceKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return DefaultPreferences(), err
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return DefaultPreferences(), nil
	}
	return prefs, nil
}

func (s *PreferenceService) Save(ctx context.Context, userID uint, prefs Preferences) error {
	if prefs.Theme != "dark" {
		prefs.Theme = "light"
	}
	if prefs.Language == "" {
		prefs.Language = "en"
	}
	payload, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, preferenceKey(userID), payload, 0).Err()
}
