// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"sort"
	"sync"

	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/server"
)

// SessionRegistry keeps track of the open transport sessions by session id.
type SessionRegistry interface {
	Add(ctx context.Context, session server.ClientSession)
	Remove(ctx context.Context, sessionID string)
	IDs() []string
	// RegisterHooks keeps the registry in sync with the sessions of an mcp server.
	RegisterHooks(hooks *server.Hooks)
}

func NewSessionRegistry(metrics Metrics) SessionRegistry {
	return &sessionRegistry{
		metrics:  metrics,
		sessions: make(map[string]server.ClientSession),
	}
}

type sessionRegistry struct {
	metrics Metrics

	mux      sync.RWMutex
	sessions map[string]server.ClientSession
}

func (s *sessionRegistry) Add(ctx context.Context, session server.ClientSession) {
	s.mux.Lock()
	s.sessions[session.SessionID()] = session
	count := len(s.sessions)
	s.mux.Unlock()

	s.metrics.SSESessions(count)
	glog.V(1).Infof("session %s opened (%d open)", session.SessionID(), count)
}

func (s *sessionRegistry) Remove(ctx context.Context, sessionID string) {
	s.mux.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	count := len(s.sessions)
	s.mux.Unlock()

	if !ok {
		return
	}
	s.metrics.SSESessions(count)
	glog.V(1).Infof("session %s closed (%d open)", sessionID, count)
}

func (s *sessionRegistry) IDs() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}

func (s *sessionRegistry) RegisterHooks(hooks *server.Hooks) {
	hooks.AddOnRegisterSession(func(ctx context.Context, session server.ClientSession) {
		s.Add(ctx, session)
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, session server.ClientSession) {
		s.Remove(ctx, session.SessionID())
	})
}
