package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Identity is one bot profile from the data file.
type Identity struct {
	DisplayName string `json:"display_name"`
	Level       Level  `json:"level"`
}

var (
	identities []Identity
	loadOnce   sync.Once
	loadErr    error
)

var fallbackIdentities = []Identity{
	{DisplayName: "Ox Bert", Level: LevelLowest},
	{DisplayName: "Ox Hilda", Level: LevelLowest},
	{DisplayName: "Ox Momo", Level: LevelRandom},
}

// LoadIdentities loads the bot profiles from the given path. Without a
// usable file the built-in fallback profiles are kept.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		var loaded []Identity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		if len(loaded) > 0 {
			identities = loaded
		}
	})
	return loadErr
}

// GetIdentity returns the profile for the i-th bot seat, cycling over
// the pool when more bots than profiles exist.
func GetIdentity(i int) Identity {
	pool := identities
	if len(pool) == 0 {
		pool = fallbackIdentities
	}
	return pool[i%len(pool)]
}
