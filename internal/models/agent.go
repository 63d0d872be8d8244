package models

type Agent struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	Speciality      *string `json:"speciality"`
	ExperienceYears int     `json:"experience_years"`
	PropertiesCount int     `json:"properties_count"`
	Rating          float64 `json:"rating"`
	ReviewsCount    int     `json:"reviews_count"`
	Description     *string `json:"description"`
	Photo           *string `json:"photo"`
	Verified        bool    `json:"verified"`
}

type AgentInput struct {
	UserID          int64   `json:"user_id"`
	Speciality      *string `json:"speciality"`
	ExperienceYears int     `json:"experience_years" binding:"min=0"`
	PropertiesCount int     `json:"properties_count" binding:"min=0"`
	Rating          float64 `json:"rating" binding:"min=0,max=5"`
	ReviewsCount    int     `json:"reviews_count" binding:"min=0"`
	Description     *string `json:"description"`
	Photo           *string `json:"photo"`
	Verified        bool    `json:"verified"`
}

type AgentUpdate struct {
	Speciality      *string  `json:"speciality"`
	ExperienceYears *int     `json:"experience_years" binding:"omitempty,min=0"`
	PropertiesCount *int     `json:"properties_count" binding:"omitempty,min=0"`
	Rating          *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewsCount    *int     `json:"reviews_count" binding:"omitempty,min=0"`
	Description     *string  `json:"description"`
	Photo           *string  `json:"photo"`
	Verified        *bool    `json:"verified"`
}

// AgentProfile is an agent merged with its owning user's contact details.
// The contact fields are nil when the user record no longer exists.
type AgentProfile struct {
	Agent
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}
