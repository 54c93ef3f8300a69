package repository

import (
	"os"
	"sort"

	"polyforge/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// sortNewestFirst orders by date descending, id as tie-breaker.
func sortNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Date.Equal(orders[j].Date) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].Date.After(orders[j].Date)
	})
}
