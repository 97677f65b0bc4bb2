package session

import (
	"context"
	"slices"
)

type repoMock struct {
	users      []User
	sessionID  string
	hasUsers   bool
	hasSession bool
}

func NewRepoMock() *repoMock {
	return &repoMock{}
}

func (r *repoMock) SaveUsers(_ context.Context, users []User) error {
	r.users = make([]User, 0, len(users))
	for _, u := range users {
		r.users = append(r.users, u.clone())
	}
	r.hasUsers = true
	return nil
}

func (r *repoMock) LoadUsers(context.Context) ([]User, bool, error) {
	if !r.hasUsers {
		return nil, false, nil
	}
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u.clone())
	}
	return users, true, nil
}

func (r *repoMock) SaveSession(_ context.Context, userID string) error {
	r.sessionID = userID
	r.hasSession = true
	return nil
}

func (r *repoMock) LoadSession(context.Context) (string, bool, error) {
	if !r.hasSession {
		return "", false, nil
	}
	return r.sessionID, true, nil
}

func (r *repoMock) ClearSession(context.Context) error {
	r.sessionID = ""
	r.hasSession = false
	return nil
}

func (r *repoMock) storedUser(id string) *User {
	idx := slices.IndexFunc(r.users, func(u User) bool { return u.ID == id })
	if idx < 0 {
		return nil
	}
	u := r.users[idx].clone()
	return &u
}
