// Package registry is the process-wide table of live rooms. The registry
// is the sole owner of room lifetime: a room is reachable only through it,
// and a deleted code is free for reuse only once its room is gone.
package registry

import (
	"errors"
	"sync"

	"github.com/wordduel/wordduel-backend/internal/entity"
	"github.com/wordduel/wordduel-backend/internal/pkg"
)

var ErrCodeGeneration = errors.New("could not generate a unique room code")

const maxCodeAttempts = 10

type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

func New() *Registry {
	return &Registry{
		rooms: make(map[string]*entity.Room),
	}
}

// Create builds a room with the given player as host at turn index 0 and
// registers it under a fresh code.
func (that *Registry) Create(host *entity.Player, maxRounds int) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := pkg.GenerateRoomCode()
		if code == "" {
			continue
		}

		if _, taken := that.rooms[code]; taken {
			continue
		}

		room := entity.NewRoom(code, host, maxRounds)
		that.rooms[code] = room

		return room, nil
	}

	return nil, ErrCodeGeneration
}

func (that *Registry) GetByCode(code string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[code]

	return room, ok
}

// GetByConnection scans all live rooms for a player with the given
// connection id. Linear scan: rooms are few and short-lived.
func (that *Registry) GetByConnection(connID string) (*entity.Room, int, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, room := range that.rooms {
		if index := room.PlayerIndexByID(connID); index != -1 {
			return room, index, true
		}
	}

	return nil, -1, false
}

func (that *Registry) Delete(code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms, code)
}

// Len reports the number of live rooms.
func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}
