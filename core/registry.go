// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: The single owner of both lookup directions (id → planet, name → id).
// Policy:
//   - put and drop update both maps in the same call; there is no other writer.
//   - Lookups return copies so callers cannot desynchronize the two directions.

package core

// registry indexes planets by id and by name.
//
// Invariant: for every (name, id) in byName, byID[id].Name == name, and
// len(byName) == len(byID).
type registry struct {
	byID   map[VertexID]*Planet
	byName map[string]VertexID
}

func newRegistry() *registry {
	return &registry{
		byID:   make(map[VertexID]*Planet),
		byName: make(map[string]VertexID),
	}
}

// put records a new planet under id and name. The caller has already checked
// that neither key is in use.
func (r *registry) put(id VertexID, name string) {
	r.byID[id] = &Planet{ID: id, Name: name}
	r.byName[name] = id
}

// drop removes id and its name. Returns false if id is unknown.
func (r *registry) drop(id VertexID) bool {
	p, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byName, p.Name)
	delete(r.byID, id)

	return true
}

func (r *registry) idOf(name string) (VertexID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

func (r *registry) nameOf(id VertexID) (string, bool) {
	p, ok := r.byID[id]
	if !ok {
		return "", false
	}

	return p.Name, true
}

// planet returns a copy of the metadata stored for id.
func (r *registry) planet(id VertexID) (Planet, bool) {
	p, ok := r.byID[id]
	if !ok {
		return Planet{}, false
	}

	return *p, true
}

// setArtifact flips the gameplay flag for id. Returns false if id is unknown.
func (r *registry) setArtifact(id VertexID, has bool) bool {
	p, ok := r.byID[id]
	if !ok {
		return false
	}
	p.HasArtifact = has

	return true
}

func (r *registry) hasName(name string) bool {
	_, ok := r.byName[name]
	return ok
}

func (r *registry) len() int { return len(r.byID) }

// names returns an id → name snapshot.
func (r *registry) names() map[VertexID]string {
	out := make(map[VertexID]string, len(r.byID))
	for id, p := range r.byID {
		out[id] = p.Name
	}

	return out
}

func (r *registry) reset() {
	r.byID = make(map[VertexID]*Planet)
	r.byName = make(map[string]VertexID)
}
