package contentgrp

import (
	"time"

	"github.com/evoforge/ledger/foundation/ledger/content"
)

type createVersion struct {
	Caller string `json:"caller" validate:"required"`
	Key    string `json:"key" validate:"required"`
	Label  string `json:"label" validate:"required"`
	URI    string `json:"uri" validate:"required,uri"`
	Tag    string `json:"tag"`
}

type setActive struct {
	Caller string `json:"caller" validate:"required"`
	ID     uint64 `json:"id" validate:"required"`
	Active bool   `json:"active"`
}

type appVersion struct {
	ID        uint64    `json:"id"`
	Key       string    `json:"key"`
	Version   uint64    `json:"version"`
	Label     string    `json:"label"`
	URI       string    `json:"uri"`
	Tag       string    `json:"tag"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

func toAppVersion(version content.Version) appVersion {
	return appVersion{
		ID:        version.ID,
		Key:       version.Key,
		Version:   version.Version,
		Label:     version.Label,
		URI:       version.URI,
		Tag:       version.Tag,
		Creator:   string(version.Creator),
		CreatedAt: version.CreatedAt,
		Active:    version.Active,
	}
}
