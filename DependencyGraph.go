package main

import (
	"dependencySheet/contracts"
	"sort"
)

// DependencyGraph keeps, for every source cell, the observers to re-evaluate on change
type DependencyGraph struct {
	subscribers map[string]map[string]contracts.Observer
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		subscribers: map[string]map[string]contracts.Observer{},
	}
}

func (g *DependencyGraph) Subscribe(source string, observer contracts.Observer) {
	if _, ok := g.subscribers[source]; !ok {
		g.subscribers[source] = map[string]contracts.Observer{}
	}

	g.subscribers[source][observer.ObserverId()] = observer
}

func (g *DependencyGraph) Unsubscribe(source string, observer contracts.Observer) {
	observers, ok := g.subscribers[source]
	if !ok {
		return
	}

	delete(observers, observer.ObserverId())
	if len(observers) == 0 {
		delete(g.subscribers, source)
	}
}

func (g *DependencyGraph) Notify(source string) error {
	observers := g.subscribers[source]
	if len(observers) == 0 {
		return nil
	}

	// observers may (un)subscribe during fan-out
	pending := make([]contracts.Observer, 0, len(observers))
	for _, observer := range observers {
		pending = append(pending, observer)
	}

	for _, observer := range pending {
		if err := observer.Update(); err != nil {
			return err
		}
	}

	return nil
}

func (g *DependencyGraph) Subscribers(source string) []string {
	observerIds := make([]string, 0, len(g.subscribers[source]))
	for observerId := range g.subscribers[source] {
		observerIds = append(observerIds, observerId)
	}
	sort.Strings(observerIds)

	return observerIds
}
