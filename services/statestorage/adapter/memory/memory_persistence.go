// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"encoding/hex"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"sort"
	"strings"
	"sync"
)

type sizeGauges struct {
	keys       *metric.Gauge
	namespaces *metric.Gauge
}

// InMemoryStatePersistence keeps only the latest state, there is no history per height
type InMemoryStatePersistence struct {
	size sizeGauges

	mutex     sync.RWMutex
	state     adapter.ChainState
	keyCount  int
	height    primitives.BlockHeight
	timestamp primitives.TimestampNano
}

// NewStatePersistence starts at the genesis height 0 with an empty state
func NewStatePersistence(metricFactory metric.Factory) *InMemoryStatePersistence {
	return &InMemoryStatePersistence{
		size: sizeGauges{
			keys:       metricFactory.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count"),
			namespaces: metricFactory.NewGauge("StateStoragePersistence.TotalNumberOfNamespaces.Count"),
		},
		state: adapter.ChainState{},
	}
}

// Write applies diff on top of the current state; an empty value removes its key
func (sp *InMemoryStatePersistence) Write(height primitives.BlockHeight, ts primitives.TimestampNano, diff adapter.ChainState) error {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	for namespace, records := range diff {
		for key, value := range records {
			if len(value) == 0 {
				sp.remove(namespace, key)
			} else {
				sp.put(namespace, key, value)
			}
		}
	}
	sp.height, sp.timestamp = height, ts

	sp.size.keys.Update(int64(sp.keyCount))
	sp.size.namespaces.Update(int64(len(sp.state)))
	return nil
}

func (sp *InMemoryStatePersistence) put(namespace primitives.AccountId, key string, value []byte) {
	records, found := sp.state[namespace]
	if !found {
		records = adapter.Records{}
		sp.state[namespace] = records
	}
	if _, exists := records[key]; !exists {
		sp.keyCount++
	}
	records[key] = value
}

func (sp *InMemoryStatePersistence) remove(namespace primitives.AccountId, key string) {
	records := sp.state[namespace]
	if _, exists := records[key]; !exists {
		return
	}
	delete(records, key)
	sp.keyCount--
	if len(records) == 0 {
		delete(sp.state, namespace)
	}
}

func (sp *InMemoryStatePersistence) Read(namespace primitives.AccountId, key string) ([]byte, bool, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	value, found := sp.state[namespace][key]
	return value, found, nil
}

func (sp *InMemoryStatePersistence) ReadMetadata() (primitives.BlockHeight, primitives.TimestampNano, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	return sp.height, sp.timestamp, nil
}

// Dump renders the state with namespaces and keys sorted, keys and values in hex
func (sp *InMemoryStatePersistence) Dump() string {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	out := &strings.Builder{}
	fmt.Fprintf(out, "{height: %v, data: {", sp.height)
	for _, namespace := range sp.sortedNamespaces() {
		records := sp.state[namespace]
		out.WriteString(string(namespace) + ":{")
		for _, key := range sortedKeys(records) {
			fmt.Fprintf(out, "%s:%s,", hex.EncodeToString([]byte(key)), hex.EncodeToString(records[key]))
		}
		out.WriteString("},")
	}
	out.WriteString("}}")
	return out.String()
}

func (sp *InMemoryStatePersistence) sortedNamespaces() []primitives.AccountId {
	namespaces := make([]primitives.AccountId, 0, len(sp.state))
	for namespace := range sp.state {
		namespaces = append(namespaces, namespace)
	}
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i] < namespaces[j] })
	return namespaces
}

func sortedKeys(records adapter.Records) []string {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
