// Package events описывает события о новых записях каталога и их доставку подписчикам.
package events

import (
	"context"
	"errors"
	"time"
)

const (
	VenueListed  = "venue_listed"
	ArtistListed = "artist_listed"
	ShowListed   = "show_listed"
)

// Event сообщение о созданной площадке, исполнителе или концерте.
type Event struct {
	Type     string    `json:"type"`
	ID       uint      `json:"id"`
	Name     string    `json:"name,omitempty"`
	VenueID  uint      `json:"venue_id,omitempty"`
	ArtistID uint      `json:"artist_id,omitempty"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Multi рассылает событие всем издателям; ошибки объединяются, доставка остальным не прерывается.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop ничего не делает.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
