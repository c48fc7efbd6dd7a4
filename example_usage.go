package constval

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Event-type discriminants for a webhook feed. Each marker pins the "type"
// field of its record to one literal.
type createdTag struct{}

func (createdTag) ConstValue() string { return "created" }

type deletedTag struct{}

func (deletedTag) ConstValue() string { return "deleted" }

// schemaV1 pins the envelope schema version to 1.
type schemaV1 struct{}

func (schemaV1) ConstValue() int64 { return 1 }

// CreatedEvent is emitted when a resource is created.
type CreatedEvent struct {
	Type      Const[string, createdTag] `json:"type"`
	Schema    Const[int64, schemaV1]    `json:"schema"`
	ID        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	CreatedAt time.Time                 `json:"created_at"`
}

// DeletedEvent is emitted when a resource is deleted.
type DeletedEvent struct {
	Type   Const[string, deletedTag] `json:"type"`
	Schema Const[int64, schemaV1]    `json:"schema"`
	ID     uuid.UUID                 `json:"id"`
}

func ExampleUsage() {
	// Build a union resolver over the two event shapes. The constant
	// "type" field makes each variant reject payloads meant for the other.
	feed := NewUnion()
	if err := feed.Register("created", func() any { return &CreatedEvent{} }); err != nil {
		log.Fatalf("Failed to register variant: %v", err)
	}
	if err := feed.Register("deleted", func() any { return &DeletedEvent{} }); err != nil {
		log.Fatalf("Failed to register variant: %v", err)
	}

	payload := `{
		"type": "deleted",
		"schema": 1,
		"id": "123e4567-e89b-12d3-a456-426614174000"
	}`

	name, event, err := feed.Resolve([]byte(payload))
	if err != nil {
		log.Fatalf("Failed to resolve event: %v", err)
	}
	fmt.Printf("Resolved %s event: %+v\n", name, event)

	// Encoding writes the pinned constants back out unconditionally.
	out, err := json.Marshal(&DeletedEvent{ID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")})
	if err != nil {
		log.Fatalf("Failed to encode event: %v", err)
	}
	fmt.Printf("Encoded: %s\n", out)
}
