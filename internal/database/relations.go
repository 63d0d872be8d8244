package database

import "realestate/server/internal/models"

// AgentWithUser joins an agent with its user's contact details. A missing
// user leaves the contact fields nil; a missing agent reports false.
func (d *Database) AgentWithUser(agentID int64) (models.AgentProfile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	agent, ok := d.agents.get(agentID)
	if !ok {
		return models.AgentProfile{}, false
	}
	return d.profileFor(agent), true
}

// AgentsWithUsers is ListAgents with each agent joined to its user
func (d *Database) AgentsWithUsers(limit int) []models.AgentProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()

	agents := d.topAgents(limit)
	profiles := make([]models.AgentProfile, len(agents))
	for i, a := range agents {
		profiles[i] = d.profileFor(a)
	}
	return profiles
}

func (d *Database) profileFor(agent models.Agent) models.AgentProfile {
	profile := models.AgentProfile{Agent: cloneAgent(agent)}
	if user, ok := d.users.get(agent.UserID); ok {
		name, email := user.Name, user.Email
		profile.Name = &name
		profile.Email = &email
		profile.Phone = cloneString(user.Phone)
	}
	return profile
}

// FavoritesWithProperties returns userID's favorites joined with their
// properties. Favorites of deleted properties are left out.
func (d *Database) FavoritesWithProperties(userID int64) []models.FavoriteWithProperty {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.FavoriteWithProperty, 0)
	d.favorites.each(func(f models.Favorite) bool {
		if f.UserID != userID {
			return true
		}
		p, ok := d.properties.get(f.PropertyID)
		if !ok {
			return true
		}
		out = append(out, models.FavoriteWithProperty{Favorite: f, Property: p.Clone()})
		return true
	})
	return out
}

// InquiriesByOwner returns the inquiries made on properties owned by
// ownerID, and nothing else
func (d *Database) InquiriesByOwner(ownerID int64) []models.Inquiry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	owned := make(map[int64]struct{})
	d.properties.each(func(p models.Property) bool {
		if p.OwnerID == ownerID {
			owned[p.ID] = struct{}{}
		}
		return true
	})
	if len(owned) == 0 {
		return []models.Inquiry{}
	}

	return d.filterInquiries(func(i models.Inquiry) bool {
		_, ok := owned[i.PropertyID]
		return ok
	})
}
