// Package content maintains the versioned content registry. Each logical key
// groups an append-only sequence of versions created by a single creator.
package content

import (
	"errors"
	"sync"
	"time"

	"github.com/evoforge/ledger/foundation/ledger/account"
)

// Set of errors returned by registry operations. Every failure is detected
// before any version is touched.
var (
	ErrNotOwner    = errors.New("caller is not the registry owner")
	ErrNotCreator  = errors.New("caller is not the creator")
	ErrNotFound    = errors.New("version not found")
	ErrKeyExists   = errors.New("key already registered")
	ErrKeyNotFound = errors.New("key not registered")
)

// Version represents a single version of a registry entry. Version ids are
// a global sequence shared across all keys while version numbers increase
// per key.
type Version struct {
	ID        uint64            `json:"id"`
	Key       string            `json:"key"`
	Version   uint64            `json:"version"`
	Label     string            `json:"label"`
	URI       string            `json:"uri"`
	Tag       string            `json:"tag"`
	Creator   account.AccountID `json:"creator"`
	CreatedAt time.Time         `json:"created_at"`
	Active    bool              `json:"active"`
}

// Registry manages the versions, the latest pointer for each key and the
// per-key and per-creator indices.
type Registry struct {
	mu           sync.RWMutex
	owner        account.AccountID
	versions     map[uint64]Version
	latest       map[string]uint64
	keyIndex     map[string][]uint64
	creatorIndex map[account.AccountID][]uint64
	nextID       uint64
}

// New constructs a content registry administered by the specified owner.
func New(owner account.AccountID) *Registry {
	return &Registry{
		owner:        owner,
		versions:     make(map[uint64]Version),
		latest:       make(map[string]uint64),
		keyIndex:     make(map[string][]uint64),
		creatorIndex: make(map[account.AccountID][]uint64),
	}
}

// Create registers version 1 of a new logical key.
func (r *Registry) Create(creator account.AccountID, key string, label string, uri string, tag string, now time.Time) (Version, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.latest[key]; exists {
		return Version{}, ErrKeyExists
	}

	return r.append(creator, key, 1, label, uri, tag, now), nil
}

// Publish registers the next version of an existing key. Only the creator
// of the latest version may publish.
func (r *Registry) Publish(creator account.AccountID, key string, label string, uri string, tag string, now time.Time) (Version, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	latestID, exists := r.latest[key]
	if !exists {
		return Version{}, ErrKeyNotFound
	}

	latest := r.versions[latestID]
	if latest.Creator != creator {
		return Version{}, ErrNotCreator
	}

	return r.append(creator, key, latest.Version+1, label, uri, tag, now), nil
}

// SetActive flips the liveness flag of the specified version. Only the
// creator of the version may change it.
func (r *Registry) SetActive(caller account.AccountID, id uint64, active bool) (Version, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	version, exists := r.versions[id]
	if !exists {
		return Version{}, ErrNotFound
	}
	if version.Creator != caller {
		return Version{}, ErrNotCreator
	}

	version.Active = active
	r.versions[id] = version

	return version, nil
}

// TransferOwnership reassigns the registry admin. This is distinct from the
// per-version creator and only the current owner may reassign.
func (r *Registry) TransferOwnership(caller account.AccountID, newOwner account.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		return ErrNotOwner
	}
	if newOwner.IsZero() || !newOwner.IsAccountID() {
		return account.ErrZeroAccount
	}

	r.owner = newOwner

	return nil
}

// append records a new version under the key. The caller must hold the lock.
func (r *Registry) append(creator account.AccountID, key string, number uint64, label string, uri string, tag string, now time.Time) Version {
	r.nextID++
	version := Version{
		ID:        r.nextID,
		Key:       key,
		Version:   number,
		Label:     label,
		URI:       uri,
		Tag:       tag,
		Creator:   creator,
		CreatedAt: now,
		Active:    true,
	}

	r.versions[version.ID] = version
	r.latest[key] = version.ID
	r.keyIndex[key] = append(r.keyIndex[key], version.ID)
	r.creatorIndex[creator] = append(r.creatorIndex[creator], version.ID)

	return version
}

// =============================================================================

// Owner returns the current registry admin.
func (r *Registry) Owner() account.AccountID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.owner
}

// Version returns a copy of the specified version.
func (r *Registry) Version(id uint64) (Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	version, exists := r.versions[id]
	if !exists {
		return Version{}, ErrNotFound
	}
	return version, nil
}

// Latest returns a copy of the latest version registered under the key.
func (r *Registry) Latest(key string) (Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.latest[key]
	if !exists {
		return Version{}, ErrKeyNotFound
	}
	return r.versions[id], nil
}

// VersionsOf returns copies of all versions registered under the key in
// creation order.
func (r *Registry) VersionsOf(key string) []Version {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.keyIndex[key]
	versions := make([]Version, 0, len(ids))
	for _, id := range ids {
		versions = append(versions, r.versions[id])
	}
	return versions
}

// VersionsBy returns copies of all versions registered by the creator in
// creation order.
func (r *Registry) VersionsBy(creator account.AccountID) []Version {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.creatorIndex[creator]
	versions := make([]Version, 0, len(ids))
	for _, id := range ids {
		versions = append(versions, r.versions[id])
	}
	return versions
}

// =============================================================================

// Snapshot represents the serializable form of the content registry.
type Snapshot struct {
	Owner        account.AccountID              `json:"owner"`
	Versions     map[uint64]Version             `json:"versions"`
	Latest       map[string]uint64              `json:"latest"`
	KeyIndex     map[string][]uint64            `json:"key_index"`
	CreatorIndex map[account.AccountID][]uint64 `json:"creator_index"`
	NextID       uint64                         `json:"next_id"`
}

// TakeSnapshot captures the current versions and indices.
func (r *Registry) TakeSnapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Owner:        r.owner,
		Versions:     make(map[uint64]Version, len(r.versions)),
		Latest:       make(map[string]uint64, len(r.latest)),
		KeyIndex:     make(map[string][]uint64, len(r.keyIndex)),
		CreatorIndex: make(map[account.AccountID][]uint64, len(r.creatorIndex)),
		NextID:       r.nextID,
	}
	for id, version := range r.versions {
		snap.Versions[id] = version
	}
	for key, id := range r.latest {
		snap.Latest[key] = id
	}
	for key, ids := range r.keyIndex {
		snap.KeyIndex[key] = append([]uint64(nil), ids...)
	}
	for creator, ids := range r.creatorIndex {
		snap.CreatorIndex[creator] = append([]uint64(nil), ids...)
	}

	return snap
}

// Restore replaces the registry contents with the specified snapshot.
func (r *Registry) Restore(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.owner = snap.Owner
	r.versions = make(map[uint64]Version, len(snap.Versions))
	for id, version := range snap.Versions {
		r.versions[id] = version
	}
	r.latest = make(map[string]uint64, len(snap.Latest))
	for key, id := range snap.Latest {
		r.latest[key] = id
	}
	r.keyIndex = make(map[string][]uint64, len(snap.KeyIndex))
	for key, ids := range snap.KeyIndex {
		r.keyIndex[key] = append([]uint64(nil), ids...)
	}
	r.creatorIndex = make(map[account.AccountID][]uint64, len(snap.CreatorIndex))
	for creator, ids := range snap.CreatorIndex {
		r.creatorIndex[creator] = append([]uint64(nil), ids...)
	}
	r.nextID = snap.NextID
}
