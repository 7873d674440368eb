package identity

import (
	"eventcal/internal/core/domain/event"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateEventID() event.ID {
	return event.ID(uuid.New().String())
}
