package database

import (
	"realestate/server/internal/models"
	"sort"
)

// PropertyStats summarises prices of the listings matching filter
func (d *Database) PropertyStats(filter models.PropertyFilter) models.PropertyStats {
	props := d.QueryProperties(filter, models.Page{})

	stats := models.PropertyStats{
		TotalProperties: len(props),
		ByListingType:   make(map[models.ListingType]int),
	}
	if len(props) == 0 {
		return stats
	}

	prices := make([]int64, len(props))
	var total, perSqft float64
	var withArea int
	for i, p := range props {
		prices[i] = p.Price
		total += float64(p.Price)
		if p.AreaSqft > 0 {
			perSqft += float64(p.Price) / float64(p.AreaSqft)
			withArea++
		}
		stats.ByListingType[p.ListingType]++
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	stats.MinPrice = prices[0]
	stats.MaxPrice = prices[len(prices)-1]
	stats.AveragePrice = total / float64(len(prices))

	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		stats.MedianPrice = float64(prices[mid-1]+prices[mid]) / 2
	} else {
		stats.MedianPrice = float64(prices[mid])
	}
	if withArea > 0 {
		stats.PricePerSqft = perSqft / float64(withArea)
	}
	return stats
}
