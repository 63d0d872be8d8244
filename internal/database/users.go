package database

import (
	"realestate/server/internal/models"
	"strings"
)

// CreateUser registers a user. Username and email are unique ignoring case;
// a clash is reported before any id is assigned.
func (d *Database) CreateUser(in models.UserInput) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	d.users.each(func(u models.User) bool {
		switch {
		case strings.EqualFold(u.Username, in.Username):
			err = ErrUsernameTaken
		case strings.EqualFold(u.Email, in.Email):
			err = ErrEmailTaken
		}
		return err == nil
	})
	if err != nil {
		return models.User{}, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleBuyer
	}
	createdAt := d.now()

	user := d.users.insert(func(id int64) models.User {
		return models.User{
			ID:        id,
			Username:  in.Username,
			Email:     in.Email,
			Password:  in.Password,
			Name:      in.Name,
			Phone:     cloneString(in.Phone),
			Role:      role,
			CreatedAt: createdAt,
		}
	})
	return cloneUser(user), nil
}

func (d *Database) GetUser(id int64) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users.get(id)
	if !ok {
		return models.User{}, false
	}
	return cloneUser(u), true
}

func (d *Database) GetUserByUsername(username string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.findUser(func(u models.User) bool {
		return strings.EqualFold(u.Username, username)
	})
}

func (d *Database) GetUserByEmail(email string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.findUser(func(u models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

// Authenticate returns the user when the username exists and the password
// matches
func (d *Database) Authenticate(username, password string) (models.User, bool) {
	user, ok := d.GetUserByUsername(username)
	if !ok || !user.PasswordMatches(password) {
		return models.User{}, false
	}
	return user, true
}

func (d *Database) UpdateUser(id int64, update models.UserUpdate) (models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users.get(id)
	if !ok {
		return models.User{}, false
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = cloneString(update.Phone)
	}
	d.users.put(id, u)
	return cloneUser(u), true
}

func (d *Database) findUser(match func(models.User) bool) (models.User, bool) {
	var (
		found models.User
		ok    bool
	)
	d.users.each(func(u models.User) bool {
		if match(u) {
			found, ok = u, true
			return false
		}
		return true
	})
	if !ok {
		return models.User{}, false
	}
	return cloneUser(found), true
}

func cloneUser(u models.User) models.User {
	u.Phone = cloneString(u.Phone)
	return u
}
