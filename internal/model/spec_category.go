package model

// SpecCategoryRow is one actor-specific category as stored: a curated list
// of provider movie ids under a name unique to that actor.
type SpecCategoryRow struct {
	CategoryName string
	MovieTMDBIDs []int
	Description  string
}

// SpecCategoryMap holds one actor's spec categories for the duration of a
// draft-setup session: category name to the set of provider movie ids that
// belong to it.
type SpecCategoryMap map[string]map[int]struct{}

// BuildSpecCategoryMap indexes store rows by category name.
func BuildSpecCategoryMap(rows []SpecCategoryRow) SpecCategoryMap {
	if len(rows) == 0 {
		return nil
	}
	m := make(SpecCategoryMap, len(rows))
	for _, row := range rows {
		ids := make(map[int]struct{}, len(row.MovieTMDBIDs))
		for _, id := range row.MovieTMDBIDs {
			ids[id] = struct{}{}
		}
		m[row.CategoryName] = ids
	}
	return m
}

// Contains reports whether the category's curated list includes the movie id.
func (m SpecCategoryMap) Contains(category string, movieID int) bool {
	ids, ok := m[category]
	if !ok {
		return false
	}
	_, ok = ids[movieID]
	return ok
}
