package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-survive/internal/game"
)

// SubjectPrefix starts every subject the feed publishes on.
const SubjectPrefix = "survive"

// MomentSubject is the subject a session's moments are published on.
func MomentSubject(sessionID string) string {
	return fmt.Sprintf("%s.%s.moments", SubjectPrefix, sessionID)
}

// AllMoments matches the moments of every session.
const AllMoments = SubjectPrefix + ".*.moments"

// Publisher sends messages to a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// MomentFeed publishes each session's moments as JSON, one message per moment.
type MomentFeed struct {
	pub Publisher
}

func NewMomentFeed(pub Publisher) *MomentFeed {
	return &MomentFeed{pub: pub}
}

func (f *MomentFeed) PublishMoments(_ context.Context, sessionID string, moments []game.Moment) error {
	subject := MomentSubject(sessionID)
	for _, m := range moments {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding %s moment: %w", m.Kind, err)
		}
		if err := f.pub.Publish(subject, data); err != nil {
			return fmt.Errorf("publishing to %s: %w", subject, err)
		}
	}
	return nil
}
