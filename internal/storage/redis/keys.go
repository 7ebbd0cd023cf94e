package redis

import (
	"fmt"

	"github.com/mcoot/czwordle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "czwordle"

// gameKey returns the Redis key for a GameRecord
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the ZSET of game IDs scored by update time
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// dictionaryKey returns the Redis key for a dictionary's raw text
func dictionaryKey(name string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, name)
}
