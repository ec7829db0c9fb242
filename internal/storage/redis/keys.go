package redis

import (
	"fmt"

	"github.com/mcoot/mysquad-go/internal/model"
)

// Key prefix for all roster data
const keyPrefix = "mysquad"

// Key generation functions for each entity type

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// playerKey returns the Redis key for a Player document
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// ownerIndexKey returns the Redis key for the SET of player keys owned
// by a user
func ownerIndexKey(owner model.UserID) string {
	return fmt.Sprintf("%s:idx:players_by_owner:%s", keyPrefix, owner)
}
