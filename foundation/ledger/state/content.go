package state

import (
	"time"

	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/content"
)

// ContentCreate registers version 1 of a new logical key.
func (s *State) ContentCreate(caller account.AccountID, key string, label string, uri string, tag string) (content.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	version, err := s.content.Create(caller, key, label, uri, tag, now)
	if err != nil {
		return content.Version{}, err
	}

	s.evHandler("state: contentcreate: creator[%s] key[%s] id[%d]", caller, key, version.ID)
	s.emit(now, "content.created", map[string]any{"id": version.ID, "key": key, "version": version.Version, "creator": version.Creator})

	return version, nil
}

// ContentPublish registers the next version of an existing key.
func (s *State) ContentPublish(caller account.AccountID, key string, label string, uri string, tag string) (content.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	version, err := s.content.Publish(caller, key, label, uri, tag, now)
	if err != nil {
		return content.Version{}, err
	}

	s.evHandler("state: contentpublish: creator[%s] key[%s] id[%d] version[%d]", caller, key, version.ID, version.Version)
	s.emit(now, "content.published", map[string]any{"id": version.ID, "key": key, "version": version.Version, "creator": version.Creator})

	return version, nil
}

// ContentSetActive flips the liveness flag of the specified version.
func (s *State) ContentSetActive(caller account.AccountID, id uint64, active bool) (content.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	version, err := s.content.SetActive(caller, id, active)
	if err != nil {
		return content.Version{}, err
	}

	s.evHandler("state: contentsetactive: creator[%s] id[%d] active[%v]", caller, id, active)
	s.emit(now, "content.status", map[string]any{"id": id, "key": version.Key, "active": active})

	return version, nil
}

// ContentTransferOwnership reassigns the registry admin.
func (s *State) ContentTransferOwnership(caller account.AccountID, newOwner account.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.content.TransferOwnership(caller, newOwner); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.evHandler("state: contentowner: from[%s] to[%s]", caller, newOwner)
	s.emit(now, "content.owner", map[string]any{"from": caller, "to": newOwner})

	return nil
}
