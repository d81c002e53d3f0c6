package pantry

import (
	"strconv"
	"strings"
)

// FormatInventory formats items for an LLM prompt, e.g. "Milk (x2), Eggs (x12)".
func FormatInventory(items []*Item) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Name+" (x"+strconv.Itoa(item.Quantity)+")")
	}

	return strings.Join(parts, ", ")
}
