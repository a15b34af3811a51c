package pareto

import (
	"math"
	"sort"
)

// Item is a named magnitude. Share is set by Normalize to the running total
// of the values, in descending order, as a fraction of their sum.
type Item struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

func NewItem(name string, value float64) Item {
	return Item{
		Name:  name,
		Value: value,
	}
}

// Normalize returns a copy of items sorted by value in descending order with
// the cumulative share of each item. The share of an item is rounded to the
// hundredth before being added to the running total so the last share can
// drift away from 1. A zero total gives NaN shares.
func Normalize(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	list := make([]Item, len(items))
	copy(list, items)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Value > list[j].Value
	})
	var (
		total = sumValues(list)
		share float64
	)
	for i := range list {
		share += math.Round(list[i].Value/total*100) / 100
		list[i].Share = share
	}
	return list
}

func sumValues(items []Item) float64 {
	var total float64
	for i := range items {
		total += items[i].Value
	}
	return total
}

func maxValue(items []Item) float64 {
	var top float64
	for i := range items {
		if i == 0 || items[i].Value > top {
			top = items[i].Value
		}
	}
	return top
}
