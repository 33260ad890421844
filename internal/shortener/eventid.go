package shortener

import "github.com/sqids/sqids-go"

// EventIDs turns sequential click event ids into opaque public identifiers.
type EventIDs struct {
	sqids *sqids.Sqids
}

func NewEventIDs() (*EventIDs, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &EventIDs{sqids: s}, nil
}

func (e *EventIDs) Encode(id int64) (string, error) {
	if id < 0 {
		id = 0
	}
	return e.sqids.Encode([]uint64{uint64(id)})
}
