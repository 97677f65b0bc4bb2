package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Snapshot is an immutable view of the store state handed to subscribers
// and read-side callers. CurrentUser is nil for an anonymous session.
type Snapshot struct {
	Users       []User
	CurrentUser *User
}

// Store holds the users collection and the current session, and keeps both
// mirrored in the repo after every successful mutation. All methods are safe
// for concurrent use.
type Store struct {
	mu          sync.RWMutex
	repo        Repo
	users       []User
	currentID   string
	subscribers []func(Snapshot)
	now         func() time.Time
}

func NewStore(repo Repo) *Store {
	return &Store{
		repo: repo,
		now:  time.Now,
	}
}

// Initialize loads the persisted state. A missing or unreadable collection
// falls back to the built-in seed users, which are persisted right away. A
// session pointing at an id no longer in the collection is discarded.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, found, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if !found {
		users = seedUsers()
		if err := s.repo.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("persist seed users: %w", err)
		}
		log.Debugf("users collection seeded with %d users", len(users))
	}
	s.users = users

	userID, found, err := s.repo.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil
	}

	if s.indexOf(userID) < 0 {
		log.Warnf("stored session points to unknown user %q, clearing it", userID)
		if err := s.repo.ClearSession(ctx); err != nil {
			return fmt.Errorf("clear stale session: %w", err)
		}
		return nil
	}

	s.currentID = userID
	return nil
}

// Subscribe registers fn to be called after every successful mutation, with
// a snapshot of the new state. Subscribers run synchronously on the mutating
// goroutine and must not call back into the store.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Login matches email and password verbatim. It returns false for both a
// wrong password and an unknown email, callers cannot tell the two apart.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].Email == email {
			idx = i
			break
		}
	}
	if idx < 0 || s.users[idx].Password != password {
		return false, nil
	}

	if err := s.repo.SaveSession(ctx, s.users[idx].ID); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}

	s.currentID = s.users[idx].ID
	s.notify()
	return true, nil
}

// Signup creates a new user and logs them in. It fails (false, nil) when the
// email is already taken.
func (s *Store) Signup(ctx context.Context, params SignupParams) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == params.Email {
			return false, nil
		}
	}

	newUser := User{
		ID:                  s.nextID(),
		Email:               params.Email,
		Password:            params.Password,
		Name:                params.Name,
		Age:                 params.Age,
		Weight:              params.Weight,
		Height:              params.Height,
		FitnessLevel:        params.FitnessLevel,
		CompletedExercises:  []string{},
		StreakDays:          0,
		TotalCaloriesBurned: 0,
		CreatedAt:           s.now(),
	}

	users := append(s.cloneUsers(), newUser)
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return false, fmt.Errorf("save users: %w", err)
	}
	if err := s.repo.SaveSession(ctx, newUser.ID); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}

	s.users = users
	s.currentID = newUser.ID
	s.notify()
	return true, nil
}

// Logout clears the session. Calling it while anonymous is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return nil
	}

	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.currentID = ""
	s.notify()
	return nil
}

// UpdateProgress records exerciseID as completed for the current user and
// adds calories to their total. Completing an exercise that is already in
// the completed list changes nothing at all, not even the calorie total.
// Streak days go up by one per newly completed distinct exercise.
func (s *Store) UpdateProgress(ctx context.Context, exerciseID string, calories int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(s.currentID)
	if idx < 0 {
		return false, nil
	}
	if s.users[idx].HasCompleted(exerciseID) {
		return false, nil
	}

	users := s.cloneUsers()
	users[idx].CompletedExercises = append(users[idx].CompletedExercises, exerciseID)
	users[idx].TotalCaloriesBurned += calories
	users[idx].StreakDays++

	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return false, fmt.Errorf("save users: %w", err)
	}

	s.users = users
	s.notify()
	return true, nil
}

// CurrentUser returns a copy of the logged-in user, or nil when anonymous.
func (s *Store) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserLocked()
}

// Users returns a copy of the whole collection.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneUsers()
}

func (s *Store) indexOf(userID string) int {
	if userID == "" {
		return -1
	}
	for i := range s.users {
		if s.users[i].ID == userID {
			return i
		}
	}
	return -1
}

func (s *Store) currentUserLocked() *User {
	idx := s.indexOf(s.currentID)
	if idx < 0 {
		return nil
	}
	u := s.users[idx].clone()
	return &u
}

func (s *Store) cloneUsers() []User {
	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.clone())
	}
	return users
}

// nextID allocates a collection-unique id from the current unix millis,
// bumping on collision. Caller must hold the lock.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	for s.indexOf(strconv.FormatInt(id, 10)) >= 0 {
		id++
	}
	return strconv.FormatInt(id, 10)
}

func (s *Store) notify() {
	snapshot := Snapshot{
		Users:       s.cloneUsers(),
		CurrentUser: s.currentUserLocked(),
	}
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}
