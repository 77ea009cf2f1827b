package parsing

import (
	"log"
	"strings"
)

// FilterRecords keeps only the elements of raw that are objects carrying every
// required field as a non-empty string. Rejections are logged with their index
// and reason; the survivors are returned in order. This is the generic
// defensive primitive applied before trusting any AI-produced structured data.
func FilterRecords(raw any, requiredFields []string) []map[string]any {
	items := asSlice(raw)
	if items == nil {
		log.Printf("[parsing] record input is not an array (%T), returning empty list", raw)
		return []map[string]any{}
	}

	kept := make([]map[string]any, 0, len(items))
outer:
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Printf("[parsing] dropping record %d: not an object (%T)", i, item)
			continue
		}
		for _, field := range requiredFields {
			s, ok := obj[field].(string)
			if !ok || strings.TrimSpace(s) == "" {
				log.Printf("[parsing] dropping record %d: missing or empty field %q", i, field)
				continue outer
			}
		}
		kept = append(kept, obj)
	}
	return kept
}
