package api

import (
	"fmt"
	"net/http"
	"realestate/server/internal/models"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the named path parameter, answering 400 when it is not a
// positive integer
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return id, true
}

// limitQuery reads an optional limit; bad or non-positive values give def
func limitQuery(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// propertyQuery turns the listing query string into a filter and page.
// Every parameter is optional; a present but malformed one is an error.
func propertyQuery(c *gin.Context) (models.PropertyFilter, models.Page, error) {
	var (
		filter models.PropertyFilter
		page   models.Page
		err    error
	)

	if filter.CityID, err = int64Param(c, "city"); err != nil {
		return filter, page, err
	}
	if filter.LocalityID, err = int64Param(c, "locality"); err != nil {
		return filter, page, err
	}
	if v := c.Query("property_type"); v != "" {
		t := models.PropertyType(v)
		if !t.Valid() {
			return filter, page, fmt.Errorf("invalid property_type %q", v)
		}
		filter.PropertyType = &t
	}
	if v := c.Query("listing_type"); v != "" {
		t := models.ListingType(v)
		if !t.Valid() {
			return filter, page, fmt.Errorf("invalid listing_type %q", v)
		}
		filter.ListingType = &t
	}
	if filter.Bedrooms, err = intParam(c, "bedrooms"); err != nil {
		return filter, page, err
	}
	if filter.MinPrice, err = int64Param(c, "min_price"); err != nil {
		return filter, page, err
	}
	if filter.MaxPrice, err = int64Param(c, "max_price"); err != nil {
		return filter, page, err
	}
	if filter.MinArea, err = intParam(c, "min_area"); err != nil {
		return filter, page, err
	}
	if filter.MaxArea, err = intParam(c, "max_area"); err != nil {
		return filter, page, err
	}

	if page.Limit, err = intParam(c, "limit"); err != nil {
		return filter, page, err
	}
	if page.Limit != nil && *page.Limit < 0 {
		return filter, page, fmt.Errorf("limit must not be negative")
	}
	offset, err := intParam(c, "offset")
	if err != nil {
		return filter, page, err
	}
	if offset != nil {
		if *offset < 0 {
			return filter, page, fmt.Errorf("offset must not be negative")
		}
		page.Offset = *offset
	}

	return filter, page, nil
}

func int64Param(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

func intParam(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}
