package tasks

// Observer is notified when the task list may have changed and any view of
// it should be refetched.
type Observer interface {
	ReloadData()
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func()

// ReloadData calls f.
func (f ObserverFunc) ReloadData() {
	f()
}

// observers is an ordered set of subscriptions.
type observers struct {
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	o  Observer
}

func (obs *observers) add(o Observer) int {
	obs.nextID++
	obs.subs = append(obs.subs, subscription{id: obs.nextID, o: o})
	return obs.nextID
}

func (obs *observers) remove(id int) {
	for i, s := range obs.subs {
		if s.id == id {
			obs.subs = append(obs.subs[:i], obs.subs[i+1:]...)
			return
		}
	}
}

// notify calls every observer in subscription order. The list is copied
// first so observers may unsubscribe while being notified.
func (obs *observers) notify() {
	subs := make([]subscription, len(obs.subs))
	copy(subs, obs.subs)
	for _, s := range subs {
		s.o.ReloadData()
	}
}
