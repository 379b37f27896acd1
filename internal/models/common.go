package models

import (
	"time"
)

// SearchVolume is one stitched daily value of a keyword in a region.
type SearchVolume struct {
	Keyword   string    `gorm:"column:keyword;primaryKey" json:"keyword"`
	Geo       string    `gorm:"column:geo;primaryKey" json:"geo"`
	Date      time.Time `gorm:"column:date;primaryKey;type:date" json:"date"`
	Unscaled  float64   `gorm:"column:unscaled" json:"unscaled"`
	Monthly   float64   `gorm:"column:monthly" json:"monthly"`
	Scale     float64   `gorm:"column:scale" json:"scale"`
	Value     float64   `gorm:"column:value" json:"value"`
	IsPartial bool      `gorm:"column:is_partial" json:"is_partial"`
	FetchedAt time.Time `gorm:"column:fetched_at" json:"fetched_at"`
}

func (SearchVolume) TableName() string {
	return "search_volume"
}
