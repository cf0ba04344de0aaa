package engine

import "workspace-finder-backend/internal/dataset"

// ResolveZoneAreas returns the IDs of all areas belonging to the named zone,
// in dataset order. An unknown zone yields an empty slice; callers treat
// that as "proximity unknown" and skip the filter rather than failing. When
// duplicate zone names exist the first match wins.
func ResolveZoneAreas(spaces []dataset.Space, zoneName string) []string {
	var zoneID string
	for _, space := range spaces {
		if space.Type == "zone" && space.Name == zoneName {
			zoneID = space.ID
			break
		}
	}
	if zoneID == "" {
		return nil
	}

	var areaIDs []string
	for _, space := range spaces {
		if space.Type == "area" && space.ParentID == zoneID {
			areaIDs = append(areaIDs, space.ID)
		}
	}
	return areaIDs
}
