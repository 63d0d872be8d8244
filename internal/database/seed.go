package database

import (
	"fmt"
	"realestate/server/internal/models"
)

// Seed loads a catalog through the regular insert paths, so ids follow
// the catalog order and city counts reflect the seeded listings
func (d *Database) Seed(catalog *models.SeedCatalog) error {
	if catalog == nil {
		return nil
	}

	for _, u := range catalog.Users {
		if _, err := d.CreateUser(u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.Username, err)
		}
	}
	for _, c := range catalog.Cities {
		d.CreateCity(c)
	}
	for _, l := range catalog.Localities {
		d.CreateLocality(l)
	}
	for _, a := range catalog.Agents {
		if _, err := d.CreateAgent(a); err != nil {
			return fmt.Errorf("failed to seed agent for user %d: %w", a.UserID, err)
		}
	}
	for _, p := range catalog.Properties {
		in := p.PropertyInput
		in.OwnerID = p.OwnerID
		d.CreateProperty(in)
	}
	return nil
}
