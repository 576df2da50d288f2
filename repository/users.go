package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/meseriasii/meseriasii/storage"
)

// bcryptCost matches the cost the existing user documents were hashed with.
const bcryptCost = 10

// Users persists user profiles and credential hashes.
type Users struct {
	store storage.Store
}

// NewUsers creates a user repository over the given store.
func NewUsers(store storage.Store) *Users {
	return &Users{store: store}
}

// normalizePassword applies NFKD so visually identical passwords typed on
// different keyboards hash to the same bytes.
func normalizePassword(password string) []byte {
	return []byte(norm.NFKD.String(password))
}

// findByUsername scans the users collection for a matching username and
// returns the stored document with its ID. Returns storage.ErrNotFound
// when no user matches.
func (u *Users) findByUsername(username string) (userDocument, error) {
	var found userDocument
	var ok bool
	err := u.store.ForEach(usersCollection, func(id string, data []byte) error {
		var doc userDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.Username == username {
			doc.ID = id
			found = doc
			ok = true
		}
		return nil
	})
	if err != nil {
		return userDocument{}, err
	}
	if !ok {
		return userDocument{}, fmt.Errorf("username %s: %w", username, storage.ErrNotFound)
	}
	return found, nil
}

// Login checks the credentials against the stored hash and returns the
// public profile. Unknown usernames and wrong passwords both map to
// ErrInvalidCredentials so callers cannot tell them apart.
func (u *Users) Login(username, password string) (User, error) {
	doc, err := u.findByUsername(username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doc.Password), normalizePassword(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return doc.User, nil
}

// Register stores a new user. The date is set to the current UTC time and
// the version starts at 1. The username must be unused.
func (u *Users) Register(user User, password string) (User, error) {
	if _, err := u.findByUsername(user.Username); err == nil {
		return User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword(normalizePassword(password), bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	user.ID = ""
	user.Date = time.Now().UTC().Format(time.RFC1123)
	user.Version = 1

	id, err := u.store.Add(usersCollection, userDocument{User: user, Password: string(hash)})
	if err != nil {
		return User{}, fmt.Errorf("adding user: %w", err)
	}
	user.ID = id
	return user, nil
}

// GetByID fetches the public profile for a user ID.
func (u *Users) GetByID(id string) (User, error) {
	var doc userDocument
	if err := u.store.Get(usersCollection, id, &doc); err != nil {
		return User{}, err
	}
	user := doc.User
	user.ID = id
	return user, nil
}

// Update replaces the profile fields of an existing user, bumping the
// version and refreshing the date. The stored password hash is preserved.
func (u *Users) Update(user User) (User, error) {
	var stored userDocument
	if err := u.store.Get(usersCollection, user.ID, &stored); err != nil {
		return User{}, err
	}

	user.Date = time.Now().UTC().Format(time.RFC1123)
	user.Version++

	id := user.ID
	user.ID = ""
	if err := u.store.Put(usersCollection, id, userDocument{User: user, Password: stored.Password}); err != nil {
		return User{}, fmt.Errorf("updating user: %w", err)
	}
	user.ID = id
	return user, nil
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (u *Users) ChangePassword(id, oldPassword, newPassword string) error {
	var stored userDocument
	if err := u.store.Get(usersCollection, id, &stored); err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), normalizePassword(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword(normalizePassword(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	stored.Password = string(hash)
	stored.ID = ""
	if err := u.store.Put(usersCollection, id, stored); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}
