package database

import "realestate/server/internal/models"

// CreateCity stores a city with an empty property count
func (d *Database) CreateCity(in models.CityInput) models.City {
	d.mu.Lock()
	defer d.mu.Unlock()

	city := d.cities.insert(func(id int64) models.City {
		return models.City{
			ID:       id,
			Name:     in.Name,
			State:    in.State,
			ImageURL: cloneString(in.ImageURL),
		}
	})
	return cloneCity(city)
}

func (d *Database) GetCity(id int64) (models.City, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.cities.get(id)
	if !ok {
		return models.City{}, false
	}
	return cloneCity(c), true
}

func (d *Database) ListCities() []models.City {
	d.mu.RLock()
	defer d.mu.RUnlock()

	cities := make([]models.City, 0, d.cities.len())
	d.cities.each(func(c models.City) bool {
		cities = append(cities, cloneCity(c))
		return true
	})
	return cities
}

// CreateLocality stores a locality. The city reference is not checked here;
// callers that need it to exist look the city up first.
func (d *Database) CreateLocality(in models.LocalityInput) models.Locality {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.localities.insert(func(id int64) models.Locality {
		return models.Locality{ID: id, Name: in.Name, CityID: in.CityID}
	})
}

func (d *Database) GetLocality(id int64) (models.Locality, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.localities.get(id)
}

func (d *Database) LocalitiesByCity(cityID int64) []models.Locality {
	d.mu.RLock()
	defer d.mu.RUnlock()

	localities := make([]models.Locality, 0)
	d.localities.each(func(l models.Locality) bool {
		if l.CityID == cityID {
			localities = append(localities, l)
		}
		return true
	})
	return localities
}

// adjustCityCount shifts a city's property count by delta, never below
// zero. Unknown cities are left alone. Callers hold the write lock.
func (d *Database) adjustCityCount(cityID int64, delta int) {
	city, ok := d.cities.get(cityID)
	if !ok {
		return
	}
	city.PropertyCount += delta
	if city.PropertyCount < 0 {
		city.PropertyCount = 0
	}
	d.cities.put(cityID, city)
}

func cloneCity(c models.City) models.City {
	c.ImageURL = cloneString(c.ImageURL)
	return c
}
