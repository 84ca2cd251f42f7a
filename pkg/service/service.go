package service

import (
	"context"
	"sync"

	"github.com/panekit/panekit/internal/errors"
)

// ContentTypeJavaScript is the content type of script services.
const ContentTypeJavaScript = "text/javascript; charset=utf-8"

// Service is a named client resource.
type Service interface {
	// ID is the identifier clients use to request the service.
	ID() string

	// Location is where the payload lives within its source.
	Location() string

	// ContentType is sent with the payload.
	ContentType() string

	// Load returns the payload bytes.
	Load(ctx context.Context) ([]byte, error)

	// Source is where Load reads from.
	Source() Source
}

// Source reads payloads by location. Registries compare sources by
// identity, so implementations should be pointer types.
type Source interface {
	Open(ctx context.Context, location string) ([]byte, error)
}

// JavaScriptService is a script library backed by a Source.
// The payload is read on first Load and cached; failed loads are retried.
type JavaScriptService struct {
	id       string
	location string
	source   Source

	mu      sync.Mutex
	content []byte
}

// ForResource creates a JavaScriptService for a resource location.
func ForResource(id, location string, source Source) *JavaScriptService {
	return &JavaScriptService{
		id:       id,
		location: location,
		source:   source,
	}
}

func (s *JavaScriptService) ID() string {
	return s.id
}

func (s *JavaScriptService) Location() string {
	return s.location
}

func (s *JavaScriptService) ContentType() string {
	return ContentTypeJavaScript
}

func (s *JavaScriptService) Source() Source {
	return s.source
}

func (s *JavaScriptService) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.content != nil {
		return s.content, nil
	}
	if s.source == nil {
		return nil, errors.New("E104").WithDetailf("service %q has no source", s.id)
	}

	data, err := s.source.Open(ctx, s.location)
	if err != nil {
		return nil, errors.FromError(err, "E104")
	}
	s.content = data
	return data, nil
}

// sameResource reports whether two services describe the same payload:
// the same location read from the same source.
func sameResource(a, b Service) bool {
	return a.ID() == b.ID() &&
		a.Location() == b.Location() &&
		a.ContentType() == b.ContentType() &&
		a.Source() == b.Source()
}
