// internal/event/event.go
package event

import "go-turret-defense/internal/types"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type   EventType
	Source types.EntityID // сущность-источник, если применимо
	Data   interface{}    // данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий. События, опубликованные во время такта,
// накапливаются в очереди и доставляются при Drain, поэтому подписчики
// никогда не исполняются посреди обновления систем.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queue     []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			break
		}
	}
}

// Publish — ставит событие в очередь
func (d *Dispatcher) Publish(event Event) {
	d.queue = append(d.queue, event)
}

// Drain — доставляет все накопленные события. События, опубликованные
// подписчиками в ходе доставки, обрабатываются в том же вызове.
func (d *Dispatcher) Drain() {
	for len(d.queue) > 0 {
		batch := d.queue
		d.queue = nil
		for _, ev := range batch {
			for _, listener := range d.listeners[ev.Type] {
				listener.OnEvent(ev)
			}
		}
	}
}
