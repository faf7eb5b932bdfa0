package predicate

import (
	"time"

	"github.com/google/uuid"
)

// Shared element types for the handler and compiler tests.

type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusPending:
		return "Pending"
	}
	return "Inactive"
}

type Supplier struct {
	Code string
	Rank int
}

type Entity struct {
	ID       int
	Name     string
	Price    float64
	Count    uint
	Active   bool
	Status   Status
	Tags     []string
	Scores   []int
	Note     *string
	Supplier *Supplier
	Created  time.Time
	Ref      uuid.UUID
}

func strptr(s string) *string { return &s }

var sampleRef = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func sampleEntity() Entity {
	return Entity{
		ID:       15,
		Name:     "JOHN DOE",
		Price:    24.5,
		Count:    3,
		Active:   true,
		Status:   StatusActive,
		Tags:     []string{"important", "new"},
		Scores:   []int{1, 2, 3},
		Note:     strptr("hello"),
		Supplier: &Supplier{Code: "ACME", Rank: 7},
		Created:  time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC),
		Ref:      sampleRef,
	}
}
