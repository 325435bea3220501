package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a Bucketly profile. Identity and credentials live in the hosted
// auth platform; this row mirrors the public profile and the points counter.
type User struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   *string
	TotalPoints int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	Rank        int
	UserID      uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   *string
	TotalPoints int64
	BadgeCount  int
}
