package actions

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/campuscollab/backend/models"
)

// stubSession resolves every request to a fixed identity.
type stubSession struct {
	email string
	ok    bool
}

func (s stubSession) Resolve(ctx context.Context) (Session, bool) {
	if !s.ok {
		return Session{}, false
	}
	return Session{Email: s.email}, true
}

// memStore implements UserStore, ProfileStore and ProjectStore in memory and
// counts store traffic so tests can assert which calls happened.
type memStore struct {
	users    []*models.User
	profiles []*models.Profile
	projects []*models.Project

	searchCalls  int
	profileSaves int
	failWith     error // when set, every method returns it
}

func (s *memStore) FindByEmail(email string) (*models.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByName(name string) (*models.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, u := range s.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *memStore) SearchByUserName(query string, limit int) ([]*models.Profile, error) {
	s.searchCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []*models.Profile
	for _, p := range s.profiles {
		owner := s.userByID(p.UserID)
		if owner == nil {
			continue
		}
		if strings.Contains(strings.ToLower(owner.Name), strings.ToLower(query)) {
			match := *p
			match.User = *owner
			out = append(out, &match)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *memStore) userByID(id uuid.UUID) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *memStore) FindByID(id uuid.UUID) (*models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByOwnerAndTitle(ownerProfileID uuid.UUID, title string) (*models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.projects {
		if p.OwnerProfileID == ownerProfileID && p.Title == title {
			return p, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByOwner(ownerProfileID uuid.UUID) ([]models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Project
	for _, p := range s.projects {
		if p.OwnerProfileID == ownerProfileID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// profileStore and projectStore wrap memStore so its Add methods satisfy the
// two distinct store interfaces.
type profileStore struct{ *memStore }

func (s profileStore) Add(profile *models.Profile) error {
	if s.failWith != nil {
		return s.failWith
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	s.memStore.profiles = append(s.memStore.profiles, profile)
	return nil
}

func (s profileStore) Update(profile *models.Profile) error {
	s.memStore.profileSaves++
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

type projectStore struct{ *memStore }

func (s projectStore) Add(project *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	s.memStore.projects = append(s.memStore.projects, project)
	return nil
}

func (s projectStore) Update(project *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

func strPtr(s string) *string { return &s }

// seedUser adds a user with a completed profile to the store and returns both.
func seedUser(store *memStore, email, name string) (*models.User, *models.Profile) {
	user := &models.User{ID: uuid.New(), Email: email, Name: name}
	profile := &models.Profile{
		ID:      uuid.New(),
		UserID:  user.ID,
		Name:    name,
		Skills:  []string{"Go"},
		Section: "A",
		Branch:  "CSE",
		Year:    "3",
	}
	user.Profile = profile
	store.users = append(store.users, user)
	store.profiles = append(store.profiles, profile)
	return user, profile
}
