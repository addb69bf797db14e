package model

import (
	"strconv"
	"strings"
	"time"
)

// Kind names an entity type that has its own id scheme.
type Kind int

const (
	KindTeam Kind = iota
	KindTournament
	KindPlayer
	KindMatch
	KindBlogPost
	KindComment
	KindAdmin
)

type idScheme struct {
	name   string
	temp   byte
	prefix string
}

var idSchemes = map[Kind]idScheme{
	KindTeam:       {name: "team", temp: 'T', prefix: "tm_"},
	KindTournament: {name: "tournament", temp: 'R', prefix: "tr_"},
	KindPlayer:     {name: "player", temp: 'P', prefix: "pl_"},
	KindMatch:      {name: "match", temp: 'M', prefix: "mt_"},
	KindBlogPost:   {name: "blog post", temp: 'B', prefix: "bl_"},
	KindComment:    {name: "comment", temp: 'C', prefix: "cm_"},
	KindAdmin:      {name: "admin", temp: 'A', prefix: "ad_"},
}

func (k Kind) String() string {
	if s, ok := idSchemes[k]; ok {
		return s.name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Prefix returns the prefix the backend puts on permanent ids of this kind.
func (k Kind) Prefix() string {
	return idSchemes[k].prefix
}

// Key records whether an entity has been persisted. The zero Key is a draft.
type Key struct {
	id string
}

// Draft returns the key of an entity the backend has not seen yet.
func Draft() Key {
	return Key{}
}

// Persisted returns the key of an entity stored under id.
// An empty id yields a draft.
func Persisted(id string) Key {
	return Key{id: strings.TrimSpace(id)}
}

// IsDraft reports whether the entity still has to be created.
func (k Key) IsDraft() bool {
	return k.id == ""
}

// ID returns the permanent id and true for persisted keys.
func (k Key) ID() (string, bool) {
	return k.id, k.id != ""
}

func (k Key) String() string {
	if k.IsDraft() {
		return "draft"
	}
	return k.id
}

// ParseKey decides the provenance of an id received from a client form.
// Only ids carrying the backend prefix of kind are persisted; empty ids,
// temporary ids (see NewTempID) and ids of any other shape are drafts, so
// a foreign id is created instead of updated under an id the backend never
// issued.
func ParseKey(kind Kind, raw string) Key {
	raw = strings.TrimSpace(raw)
	prefix := kind.Prefix()
	if prefix == "" || !strings.HasPrefix(raw, prefix) {
		return Draft()
	}
	return Persisted(raw)
}

// IsTempID reports whether raw has the shape NewTempID produces for kind.
func IsTempID(kind Kind, raw string) bool {
	scheme, ok := idSchemes[kind]
	if !ok || len(raw) < 2 || raw[0] != scheme.temp {
		return false
	}
	for i := 1; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// NewTempID mints a client-side placeholder id: the kind's letter followed
// by now in unix milliseconds.
func NewTempID(kind Kind, now time.Time) string {
	return string(idSchemes[kind].temp) + strconv.FormatInt(now.UnixMilli(), 10)
}
