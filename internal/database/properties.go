package database

import "realestate/server/internal/models"

// CreateProperty stores a listing and counts it against its city
func (d *Database) CreateProperty(in models.PropertyInput) models.Property {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := models.PropertyStatusActive
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}
	now := d.now()

	property := d.properties.insert(func(id int64) models.Property {
		p := models.Property{
			ID:           id,
			Title:        in.Title,
			Description:  in.Description,
			PropertyType: in.PropertyType,
			ListingType:  in.ListingType,
			Price:        in.Price,
			Bedrooms:     in.Bedrooms,
			Bathrooms:    in.Bathrooms,
			AreaSqft:     in.AreaSqft,
			Address:      in.Address,
			LocalityID:   in.LocalityID,
			CityID:       in.CityID,
			State:        in.State,
			Pincode:      in.Pincode,
			OwnerID:      in.OwnerID,
			Featured:     in.Featured,
			Premium:      in.Premium,
			Verified:     in.Verified,
			Status:       status,
			Amenities:    in.Amenities,
			Images:       in.Images,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return p.Clone()
	})
	d.adjustCityCount(property.CityID, 1)

	return property.Clone()
}

func (d *Database) GetProperty(id int64) (models.Property, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.properties.get(id)
	if !ok {
		return models.Property{}, false
	}
	return p.Clone(), true
}

// UpdateProperty merges update into the listing and refreshes updated_at.
// The city never changes, so the city counters are untouched.
func (d *Database) UpdateProperty(id int64, update models.PropertyUpdate) (models.Property, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.properties.get(id)
	if !ok {
		return models.Property{}, false
	}
	p = p.Clone()
	update.Apply(&p)
	p.UpdatedAt = d.now()
	d.properties.put(id, p)

	return p.Clone(), true
}

// DeleteProperty removes a listing and releases its city count. Favorites
// and inquiries pointing at it are kept.
func (d *Database) DeleteProperty(id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.properties.get(id)
	if !ok {
		return false
	}
	d.properties.remove(id)
	d.adjustCityCount(p.CityID, -1)
	return true
}
