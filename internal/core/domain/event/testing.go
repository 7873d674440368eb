package event

import (
	"context"
	"sync"
)

type TestEventRepository struct {
	CreateError error
	GetError    error
	ReadError   error
	Events      []Event
	ReadWith    []ReadOptions
	lock        sync.Mutex
}

func NewTestEventRepository() *TestEventRepository {
	return &TestEventRepository{}
}

func (r *TestEventRepository) Create(ctx context.Context, input CreateInput) (ev Event, err error) {
	if r.CreateError != nil {
		return ev, r.CreateError
	}
	ev = Event{
		ID:        input.ID,
		Title:     input.Title,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Note:      input.Note,
		CreatedAt: input.CreatedAt,
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Events = append(r.Events, ev)
	return ev, nil
}

func (r *TestEventRepository) GetByID(ctx context.Context, id ID) (ev Event, err error) {
	if r.GetError != nil {
		return ev, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, stored := range r.Events {
		if stored.ID == id {
			return stored, nil
		}
	}
	return ev, ErrEventDoesNotExist
}

func (r *TestEventRepository) Read(ctx context.Context, options ReadOptions) ([]Event, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	if !options.DateEquals.IsPresent {
		return append([]Event{}, r.Events...), nil
	}
	events := make([]Event, 0)
	for _, stored := range r.Events {
		if stored.Date == options.DateEquals.Value {
			events = append(events, stored)
		}
	}
	return events, nil
}

type TestEventPublisher struct {
	Error     error
	Published [][]Event
	lock      sync.Mutex
}

func NewTestEventPublisher() *TestEventPublisher {
	return &TestEventPublisher{}
}

func (p *TestEventPublisher) PublishEvents(ctx context.Context, events []Event) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, events)
	return nil
}

type TestIdentityGenerator struct {
	ID ID
}

func NewTestIdentityGenerator(id ID) *TestIdentityGenerator {
	return &TestIdentityGenerator{ID: id}
}

func (g *TestIdentityGenerator) GenerateEventID() ID {
	return g.ID
}
