package bench

import "fmt"

// Store holds the ordered instance sequence for a benchmark and an index
// by instance ID. It is read-only after construction and safe to share
// across concurrent workers.
type Store struct {
	instances []Instance
	byID      map[string]int
}

func NewStore(instances []Instance) (*Store, error) {
	byID := make(map[string]int, len(instances))
	for i, inst := range instances {
		if inst.ID == "" {
			return nil, fmt.Errorf("instance %d: id is required", i)
		}
		if _, ok := byID[inst.ID]; ok {
			return nil, fmt.Errorf("duplicate instance id %q", inst.ID)
		}
		byID[inst.ID] = i
	}
	return &Store{instances: instances, byID: byID}, nil
}

func (s *Store) Len() int {
	return len(s.instances)
}

func (s *Store) Get(i int) Instance {
	return s.instances[i]
}

func (s *Store) ByID(id string) (Instance, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Instance{}, false
	}
	return s.instances[i], true
}

// Select returns the instances to draw for a run: filtered to ids when ids
// is non-empty, then truncated to the first n in definition order when
// n > 0. Truncation is deterministic, so repeated runs over the same store
// draw the same instances.
func (s *Store) Select(ids []string, n int) []Instance {
	selected := s.instances
	if len(ids) > 0 {
		selected = make([]Instance, 0, len(ids))
		for _, inst := range s.instances {
			for _, id := range ids {
				if inst.ID == id {
					selected = append(selected, inst)
					break
				}
			}
		}
	}
	if n > 0 && n < len(selected) {
		selected = selected[:n]
	}
	return selected
}
