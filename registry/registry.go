// Package registry maps message identifiers and XML namespaces to the typed
// documents that decode and validate them.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/codec"
	"github.com/reoring/isoskema/fednow/keyexchange"
	"github.com/reoring/isoskema/iso20022/admi004"
	"github.com/reoring/isoskema/iso20022/camt013"
)

var (
	// ErrUnknownMessage is returned when no entry matches an identifier,
	// namespace or payload.
	ErrUnknownMessage = errors.New("registry: unknown message")
	// ErrDuplicate is returned when an identifier or namespace is registered
	// twice.
	ErrDuplicate = errors.New("registry: duplicate registration")
)

// Entry describes one message type.
type Entry struct {
	ID     string
	Format codec.Format
	// Namespace identifies XML documents.
	Namespace string
	// Members identifies JSON bodies: a payload matches when its top-level
	// object has one of these member names.
	Members []string
	// New returns a pointer to an empty document to decode into.
	New func() iso.Validator
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[string]int
	byNS    map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byID: map[string]int{}, byNS: map[string]int{}}
}

// Register adds e. Identifiers and namespaces must be unique.
func (r *Registry) Register(e Entry) error {
	if e.ID == "" || e.New == nil {
		return fmt.Errorf("registry: entry needs an ID and a constructor")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; ok {
		return fmt.Errorf("%w: id %q", ErrDuplicate, e.ID)
	}
	if e.Namespace != "" {
		if _, ok := r.byNS[e.Namespace]; ok {
			return fmt.Errorf("%w: namespace %q", ErrDuplicate, e.Namespace)
		}
	}
	r.entries = append(r.entries, e)
	r.byID[e.ID] = len(r.entries) - 1
	if e.Namespace != "" {
		r.byNS[e.Namespace] = len(r.entries) - 1
	}
	return nil
}

// Lookup returns the entry registered under id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// ByNamespace returns the XML entry declaring ns.
func (r *Registry) ByNamespace(ns string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byNS[ns]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns the entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.entries...)
}

// Detect identifies the message type of data. XML documents are matched on
// their root namespace; JSON bodies on their top-level member names, in
// registration order.
func (r *Registry) Detect(data []byte) (Entry, error) {
	env, err := codec.Sniff(data)
	if err != nil {
		return Entry{}, err
	}
	if env.Format == codec.FormatXML {
		if e, ok := r.ByNamespace(env.Namespace); ok {
			return e, nil
		}
		return Entry{}, fmt.Errorf("%w: namespace %q", ErrUnknownMessage, env.Namespace)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Entry{}, fmt.Errorf("detect json: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Format != codec.FormatJSON {
			continue
		}
		for _, m := range e.Members {
			if _, ok := top[m]; ok {
				return e, nil
			}
		}
	}
	return Entry{}, fmt.Errorf("%w: json body", ErrUnknownMessage)
}

// Decode decodes data as message id, or as the detected message when id is
// empty. The result is ready for iso.Validate.
func (r *Registry) Decode(data []byte, id string) (iso.Validator, Entry, error) {
	var (
		e   Entry
		err error
	)
	if id == "" {
		e, err = r.Detect(data)
		if err != nil {
			return nil, Entry{}, err
		}
	} else {
		var ok bool
		if e, ok = r.Lookup(id); !ok {
			return nil, Entry{}, fmt.Errorf("%w: %q", ErrUnknownMessage, id)
		}
	}
	doc := e.New()
	if err := codec.Decode(e.Format, data, doc); err != nil {
		return nil, e, fmt.Errorf("%s: %w", e.ID, err)
	}
	return doc, e, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry of every message type this module ships.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
		for _, e := range builtins() {
			if err := defaultReg.Register(e); err != nil {
				panic(err)
			}
		}
	})
	return defaultReg
}

func builtins() []Entry {
	return []Entry{
		{
			ID:        admi004.MessageID,
			Format:    codec.FormatXML,
			Namespace: admi004.Namespace,
			New:       func() iso.Validator { return &admi004.Document{} },
		},
		{
			ID:        camt013.MessageID,
			Format:    codec.FormatXML,
			Namespace: camt013.Namespace,
			New:       func() iso.Validator { return &camt013.Document{} },
		},
		{
			ID:      keyexchange.MessageID,
			Format:  codec.FormatJSON,
			Members: []string{"KeyAddition", "KeyRevocation"},
			New:     func() iso.Validator { return &keyexchange.FedNowMessageSignatureKeyExchange{} },
		},
		{
			ID:      keyexchange.OperationResponseID,
			Format:  codec.FormatJSON,
			Members: []string{"Status"},
			New:     func() iso.Validator { return &keyexchange.FedNowCustomerMessageSignatureKeyOperationResponse{} },
		},
		{
			ID:      keyexchange.PublicKeysID,
			Format:  codec.FormatJSON,
			Members: []string{"PublicKeys"},
			New:     func() iso.Validator { return &keyexchange.FedNowPublicKeyResponses{} },
		},
	}
}
