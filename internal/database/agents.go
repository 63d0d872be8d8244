package database

import (
	"realestate/server/internal/models"
	"sort"
)

const DefaultAgentsLimit = 4

// CreateAgent stores an agent profile. A user has at most one profile.
func (d *Database) CreateAgent(in models.AgentInput) (models.Agent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.agentByUserID(in.UserID); ok {
		return models.Agent{}, ErrAgentExists
	}

	agent := d.agents.insert(func(id int64) models.Agent {
		return models.Agent{
			ID:              id,
			UserID:          in.UserID,
			Speciality:      cloneString(in.Speciality),
			ExperienceYears: in.ExperienceYears,
			PropertiesCount: in.PropertiesCount,
			Rating:          in.Rating,
			ReviewsCount:    in.ReviewsCount,
			Description:     cloneString(in.Description),
			Photo:           cloneString(in.Photo),
			Verified:        in.Verified,
		}
	})
	return cloneAgent(agent), nil
}

func (d *Database) GetAgent(id int64) (models.Agent, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.agents.get(id)
	if !ok {
		return models.Agent{}, false
	}
	return cloneAgent(a), true
}

func (d *Database) GetAgentByUserID(userID int64) (models.Agent, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.agentByUserID(userID)
	if !ok {
		return models.Agent{}, false
	}
	return cloneAgent(a), true
}

func (d *Database) UpdateAgent(id int64, update models.AgentUpdate) (models.Agent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.agents.get(id)
	if !ok {
		return models.Agent{}, false
	}
	if update.Speciality != nil {
		a.Speciality = cloneString(update.Speciality)
	}
	if update.ExperienceYears != nil {
		a.ExperienceYears = *update.ExperienceYears
	}
	if update.PropertiesCount != nil {
		a.PropertiesCount = *update.PropertiesCount
	}
	if update.Rating != nil {
		a.Rating = *update.Rating
	}
	if update.ReviewsCount != nil {
		a.ReviewsCount = *update.ReviewsCount
	}
	if update.Description != nil {
		a.Description = cloneString(update.Description)
	}
	if update.Photo != nil {
		a.Photo = cloneString(update.Photo)
	}
	if update.Verified != nil {
		a.Verified = *update.Verified
	}
	d.agents.put(id, a)
	return cloneAgent(a), true
}

// ListAgents returns the best rated agents first. A non-positive limit
// falls back to DefaultAgentsLimit.
func (d *Database) ListAgents(limit int) []models.Agent {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.topAgents(limit)
}

func (d *Database) topAgents(limit int) []models.Agent {
	if limit <= 0 {
		limit = DefaultAgentsLimit
	}

	agents := make([]models.Agent, 0, d.agents.len())
	d.agents.each(func(a models.Agent) bool {
		agents = append(agents, cloneAgent(a))
		return true
	})
	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].Rating > agents[j].Rating
	})
	if limit < len(agents) {
		agents = agents[:limit]
	}
	return agents
}

func (d *Database) agentByUserID(userID int64) (models.Agent, bool) {
	var (
		found models.Agent
		ok    bool
	)
	d.agents.each(func(a models.Agent) bool {
		if a.UserID == userID {
			found, ok = a, true
			return false
		}
		return true
	})
	return found, ok
}

func cloneAgent(a models.Agent) models.Agent {
	a.Speciality = cloneString(a.Speciality)
	a.Description = cloneString(a.Description)
	a.Photo = cloneString(a.Photo)
	return a
}
