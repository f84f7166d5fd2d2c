package game

// MaxActiveEvents is how many world events can be live at once.
const MaxActiveEvents = 2

// Event is a live or finished world event.
type Event struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Reward      []string `json:"reward,omitempty"`
	Hint        string   `json:"hint,omitempty"`
	Effect      string   `json:"effect,omitempty"`
	Benefit     string   `json:"benefit,omitempty"`
	ExpiresIn   int      `json:"expires_in,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Difficulty  string   `json:"difficulty"`
}

// Effects that callers apply while an event is active.
const (
	EffectIncreasedZombies = "increased_zombie_chance"
	EffectTravelPenalty    = "travel_penalty"
	BenefitWater           = "water_bonus"
)

// EventQueue holds active events, completed event ids and the cooldown
// before another event may fire.
type EventQueue struct {
	Active    []Event
	Completed Set
	Cooldown  int
}

// NewEventQueue returns an empty queue.
func NewEventQueue() EventQueue {
	return EventQueue{Completed: Set{}}
}

// Full reports whether no more events may become active.
func (q *EventQueue) Full() bool {
	return len(q.Active) >= MaxActiveEvents
}

// IsActive reports whether an event with id is live.
func (q *EventQueue) IsActive(id string) bool {
	for _, e := range q.Active {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Activate adds an event unless the queue is full or the id is known.
func (q *EventQueue) Activate(e Event) bool {
	if q.Full() || q.IsActive(e.ID) || q.Completed.Has(e.ID) {
		return false
	}
	q.Active = append(q.Active, e)
	return true
}

// Complete moves an active event to the completed set.
func (q *EventQueue) Complete(id string) bool {
	for i, e := range q.Active {
		if e.ID == id {
			q.Active = append(q.Active[:i], q.Active[i+1:]...)
			if q.Completed == nil {
				q.Completed = Set{}
			}
			q.Completed.Add(id)
			return true
		}
	}
	return false
}

// HasEffect reports whether any active event carries effect.
func (q *EventQueue) HasEffect(effect string) bool {
	for _, e := range q.Active {
		if e.Effect == effect {
			return true
		}
	}
	return false
}

// RewardAt returns the first active event with a reward bound to location.
func (q *EventQueue) RewardAt(location string) (Event, bool) {
	for _, e := range q.Active {
		if e.Location == location && len(e.Reward) > 0 {
			return e, true
		}
	}
	return Event{}, false
}

// passDay counts active events down by one day and completes the ones that run out.
func (q *EventQueue) passDay() []Moment {
	var moments []Moment
	var keep []Event
	for _, e := range q.Active {
		left := e.remaining()
		if left <= 0 {
			keep = append(keep, e)
			continue
		}
		left--
		if left == 0 {
			if q.Completed == nil {
				q.Completed = Set{}
			}
			q.Completed.Add(e.ID)
			moments = append(moments, Moment{Kind: MomentEventExpired, Name: e.ID, Text: e.Title + " has passed."})
			continue
		}
		if e.ExpiresIn > 0 {
			e.ExpiresIn = left
		} else {
			e.Duration = left
		}
		keep = append(keep, e)
	}
	q.Active = keep
	return moments
}

// remaining is the days left on an event, 0 when it never runs out.
func (e Event) remaining() int {
	if e.ExpiresIn > 0 {
		return e.ExpiresIn
	}
	return e.Duration
}
