package database

import "realestate/server/internal/models"

// CreateInquiry records a contact request for an existing property
func (d *Database) CreateInquiry(in models.InquiryInput) (models.Inquiry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.properties.get(in.PropertyID); !ok {
		return models.Inquiry{}, ErrNotFound
	}

	createdAt := d.now()
	inquiry := d.inquiries.insert(func(id int64) models.Inquiry {
		return models.Inquiry{
			ID:         id,
			PropertyID: in.PropertyID,
			UserID:     cloneInt64(in.UserID),
			Name:       in.Name,
			Email:      in.Email,
			Phone:      in.Phone,
			Message:    cloneString(in.Message),
			CreatedAt:  createdAt,
			Status:     models.InquiryStatusNew,
		}
	})
	return cloneInquiry(inquiry), nil
}

func (d *Database) GetInquiry(id int64) (models.Inquiry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.inquiries.get(id)
	if !ok {
		return models.Inquiry{}, false
	}
	return cloneInquiry(i), true
}

func (d *Database) InquiriesByProperty(propertyID int64) []models.Inquiry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.filterInquiries(func(i models.Inquiry) bool {
		return i.PropertyID == propertyID
	})
}

func (d *Database) UpdateInquiryStatus(id int64, status string) (models.Inquiry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i, ok := d.inquiries.get(id)
	if !ok {
		return models.Inquiry{}, false
	}
	i.Status = status
	d.inquiries.put(id, i)
	return cloneInquiry(i), true
}

func (d *Database) filterInquiries(match func(models.Inquiry) bool) []models.Inquiry {
	out := make([]models.Inquiry, 0)
	d.inquiries.each(func(i models.Inquiry) bool {
		if match(i) {
			out = append(out, cloneInquiry(i))
		}
		return true
	})
	return out
}

func cloneInquiry(i models.Inquiry) models.Inquiry {
	i.UserID = cloneInt64(i.UserID)
	i.Message = cloneString(i.Message)
	return i
}
