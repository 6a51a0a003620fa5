package devstub

import (
	"fmt"
	"strings"
	"sync"

	"github.com/introapp/freshintro/internal/client/models"
)

// Store keeps profiles in memory, keyed by user ID. Writes replace the whole
// profile, matching the editor's create-or-update semantics.
type Store struct {
	mu       sync.Mutex
	profiles map[int]*models.RemoteProfile
	nextID   int
}

func NewStore() *Store {
	return &Store{profiles: make(map[int]*models.RemoteProfile), nextID: 1}
}

func (s *Store) Get(userID int) (*models.RemoteProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	return p, ok
}

// Put stores the written profile, deriving image URLs from the object keys
// the same way the production backend does.
func (s *Store) Put(userID int, username string, req *models.WriteProfileRequest, imageBase string) *models.RemoteProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	images := make([]models.RemoteImage, 0, len(req.ImageKeys))
	for _, key := range req.ImageKeys {
		s.nextID++
		images = append(images, models.RemoteImage{
			ID:       s.nextID,
			ImageURL: fmt.Sprintf("%s/%s", strings.TrimRight(imageBase, "/"), key),
		})
	}

	p := &models.RemoteProfile{
		Bio:       req.Bio,
		Branch:    req.Branch,
		Batch:     req.Batch,
		Hostel:    req.Hostel,
		Interests: req.Interests,
		Hobbies:   req.Hobbies,
		Socials:   req.Socials,
		User: models.RemoteUser{
			ID:       userID,
			Username: username,
			Images:   images,
		},
	}
	s.profiles[userID] = p
	return p
}
